package concierge

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/models"
	"frontdesk/services/booking"

	"go.uber.org/zap"
)

// Dispatcher turns a classified intent into at most one booking operation and
// exactly one reply string.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent *models.Intent, hotelID string) (string, error)
}

// DefaultDispatcher implements Dispatcher. Lookup misses become conversational
// replies; only genuine storage faults (or an unrecognized action) return an
// error.
type DefaultDispatcher struct {
	Bookings booking.BookingService
	Logger   *zap.Logger
}

func NewDefaultDispatcher(bookings booking.BookingService, logger *zap.Logger) *DefaultDispatcher {
	return &DefaultDispatcher{Bookings: bookings, Logger: logger}
}

func (d *DefaultDispatcher) Dispatch(ctx context.Context, intent *models.Intent, hotelID string) (string, error) {
	switch intent.Action {
	case models.ActionCheckIn:
		return d.checkIn(ctx, intent.Data, hotelID)
	case models.ActionCreateBooking:
		return d.createBooking(ctx, intent.Data, hotelID)
	case models.ActionCancelBooking:
		return d.cancelBooking(ctx, intent.Data, hotelID)
	case models.ActionChat:
		if intent.Response == "" {
			return "I didn't capture that.", nil
		}
		return intent.Response, nil
	default:
		return "", fmt.Errorf("concierge: unrecognized intent action %q", intent.Action)
	}
}

func (d *DefaultDispatcher) checkIn(ctx context.Context, data models.IntentData, hotelID string) (string, error) {
	if data.BookingID == "" {
		return "I need your booking ID.", nil
	}

	res, err := d.Bookings.CheckIn(ctx, data.BookingID, hotelID)
	if errors.Is(err, booking.ErrBookingNotFound) {
		return fmt.Sprintf("I couldn't find booking %s.", data.BookingID), nil
	}
	if err != nil {
		return "", err
	}

	b := res.Booking
	if res.AlreadyCheckedIn {
		return fmt.Sprintf("Welcome back, %s! You are already checked in. Room %s.", b.GuestName, b.RoomNumber), nil
	}
	return fmt.Sprintf("Welcome back, %s! You are checked in. Room %s.", b.GuestName, b.RoomNumber), nil
}

func (d *DefaultDispatcher) createBooking(ctx context.Context, data models.IntentData, hotelID string) (string, error) {
	if data.Name == "" {
		return "I need a name to make the booking.", nil
	}

	b, err := d.Bookings.Create(ctx, data.Name, data.Date, hotelID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Booking confirmed for %s. ID %s. Room %s.", b.GuestName, b.Code, b.RoomNumber), nil
}

func (d *DefaultDispatcher) cancelBooking(ctx context.Context, data models.IntentData, hotelID string) (string, error) {
	if data.BookingID == "" {
		return "Please provide the booking ID.", nil
	}

	err := d.Bookings.Cancel(ctx, data.BookingID, hotelID)
	if errors.Is(err, booking.ErrBookingNotFound) {
		return fmt.Sprintf("I couldn't find active booking %s.", data.BookingID), nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Booking %s has been cancelled.", data.BookingID), nil
}
