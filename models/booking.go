package models

import "time"

// BookingStatus tracks a booking through its one-directional lifecycle.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents a guest reservation record. The human-enterable Code is
// unique only within a hotel; (code, hotel_id) identify at most one booking.
// Records are never physically deleted, cancellation is a status change.
type Booking struct {
	ID               uint          `gorm:"primaryKey" json:"-"`
	Code             string        `gorm:"size:8;uniqueIndex:idx_bookings_code_hotel" json:"booking_id"`
	HotelID          string        `gorm:"size:64;uniqueIndex:idx_bookings_code_hotel" json:"hotel_id"`
	GuestName        string        `gorm:"size:128" json:"guest_name"`
	RoomNumber       string        `gorm:"size:8" json:"room_number"`
	CheckInDate      string        `gorm:"size:10" json:"check_in_date"` // "YYYY-MM-DD"
	Status           BookingStatus `gorm:"size:16" json:"status"`
	PaymentStatus    string        `gorm:"size:16;default:unpaid" json:"payment_status"`
	IdentityVerified bool          `json:"identity_verified"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
