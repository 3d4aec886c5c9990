package models

// PaymentRequest is the kiosk's payment submission for a booking.
type PaymentRequest struct {
	SerialNumber  string  `json:"serial_number"`
	BookingID     string  `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// PaymentResult is what the payment processor reports back.
type PaymentResult struct {
	TransactionID string  `json:"transaction_id"`
	AmountPaid    float64 `json:"amount_paid"`
}
