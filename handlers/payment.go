package handlers

import (
	"net/http"

	"frontdesk/database/repository"
	"frontdesk/models"
	"frontdesk/services/device"
	"frontdesk/services/payment"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler charges a booking through the payment processor.
type PaymentHandler struct {
	Directory device.Directory
	Processor payment.Processor
	Bookings  repository.BookingRepository
	Logger    *zap.Logger
}

func NewPaymentHandler(
	directory device.Directory,
	processor payment.Processor,
	bookings repository.BookingRepository,
	logger *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		Directory: directory,
		Processor: processor,
		Bookings:  bookings,
		Logger:    logger,
	}
}

// ProcessPayment handles POST /api/v1/payments/process.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.BookingID == "" || req.Amount <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing payment details", "")
		return
	}
	if req.SerialNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "serial_number is required", "")
		return
	}

	auth := h.Directory.Authorize(ctx, req.SerialNumber)
	if !auth.Authorized {
		utils.JSONError(c, http.StatusForbidden, auth.Reason, "")
		return
	}

	b, err := h.Bookings.FindByCode(ctx, req.BookingID, auth.Device.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Payment Processing Failed", err.Error())
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}

	res, err := h.Processor.Charge(ctx, req, auth.Device.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Payment Processing Failed", err.Error())
		return
	}

	if err := h.Bookings.MarkPaid(ctx, b.ID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Payment Processing Failed", err.Error())
		return
	}

	h.Logger.Info("payment approved",
		zap.String("booking", req.BookingID),
		zap.String("transaction", res.TransactionID))

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"transaction_id": res.TransactionID,
		"message":        "Payment Approved",
		"amount_paid":    res.AmountPaid,
	})
}
