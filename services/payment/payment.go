package payment

import (
	"context"
	"fmt"
	"math"

	"frontdesk/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Processor charges a guest for a booking and reports the transaction.
type Processor interface {
	Charge(ctx context.Context, req models.PaymentRequest, hotelID string) (*models.PaymentResult, error)
}

// StripeProcessor implements Processor over Stripe payment intents. The API
// key is set process-wide in main, mirroring the stripe-go convention.
type StripeProcessor struct {
	Logger *zap.Logger
}

func NewStripeProcessor(logger *zap.Logger) *StripeProcessor {
	return &StripeProcessor{Logger: logger}
}

// cents converts a dollar amount to Stripe's integer cents. Rounding, not
// truncation: float arithmetic leaves $19.99 as 1998.9999... hundredths.
func cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (p *StripeProcessor) Charge(ctx context.Context, req models.PaymentRequest, hotelID string) (*models.PaymentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(cents(req.Amount)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.AddMetadata("booking_code", req.BookingID)
	params.AddMetadata("hotel_id", hotelID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("payment intent creation failed: %w", err)
	}

	p.Logger.Info("payment intent created",
		zap.String("intent", pi.ID),
		zap.String("booking", req.BookingID),
		zap.Float64("amount", req.Amount))

	return &models.PaymentResult{
		TransactionID: pi.ID,
		AmountPaid:    req.Amount,
	}, nil
}
