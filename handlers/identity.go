package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"frontdesk/database/repository"
	"frontdesk/services/device"
	"frontdesk/services/intelligence"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityHandler verifies a guest's ID card against their booking record.
// Images are held in memory only; nothing sensitive touches the disk.
type IdentityHandler struct {
	Directory device.Directory
	Extractor intelligence.Extractor
	Bookings  repository.BookingRepository
	Logger    *zap.Logger
}

func NewIdentityHandler(
	directory device.Directory,
	extractor intelligence.Extractor,
	bookings repository.BookingRepository,
	logger *zap.Logger,
) *IdentityHandler {
	return &IdentityHandler{
		Directory: directory,
		Extractor: extractor,
		Bookings:  bookings,
		Logger:    logger,
	}
}

// ScanIdentity handles POST /api/v1/identity/scan.
func (h *IdentityHandler) ScanIdentity(c *gin.Context) {
	ctx := c.Request.Context()

	serial := c.PostForm("serial_number")
	if serial == "" {
		utils.JSONError(c, http.StatusBadRequest, "serial_number is required", "")
		return
	}
	auth := h.Directory.Authorize(ctx, serial)
	if !auth.Authorized {
		utils.JSONError(c, http.StatusForbidden, auth.Reason, "")
		return
	}

	bookingID := c.PostForm("booking_id")
	if bookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing booking_id", "")
		return
	}

	file, header, err := c.Request.FormFile("id_card_image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "No ID image uploaded", err.Error())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Identity Verification Failed", err.Error())
		return
	}
	format := strings.TrimPrefix(header.Header.Get("Content-Type"), "image/")

	doc, err := h.Extractor.ExtractIdentity(ctx, image, format)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Identity Verification Failed", err.Error())
		return
	}

	b, err := h.Bookings.FindByCode(ctx, bookingID, auth.Device.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Identity Verification Failed", err.Error())
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}

	guestName := strings.ToLower(strings.TrimSpace(b.GuestName))
	idName := strings.ToLower(strings.TrimSpace(doc.FullName))

	// Fuzzy match: either name containing the other is accepted, so middle
	// names and honorifics on the document don't block a legitimate guest.
	if idName == "" || !(strings.Contains(guestName, idName) || strings.Contains(idName, guestName)) {
		h.Logger.Warn("identity mismatch",
			zap.String("booking", bookingID),
			zap.String("guest", b.GuestName),
			zap.String("document", doc.FullName))
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":   "failed",
			"verified": false,
			"message":  fmt.Sprintf("Name Mismatch: Booking says '%s', ID says '%s'", b.GuestName, doc.FullName),
		})
		return
	}

	if err := h.Bookings.MarkIdentityVerified(ctx, b.ID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Identity Verification Failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"verified": true,
		"message":  "Identity Verified Successfully",
		"data": gin.H{
			"name":       doc.FullName,
			"doc_number": doc.DocumentNumber,
		},
	})
}
