package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"frontdesk/database/repository"
	"frontdesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	codeMin = 1000
	codeMax = 9999

	roomMin = 100
	roomMax = 499

	// createAttempts bounds the retry loop when a generated booking code
	// collides with an existing one for the same hotel.
	createAttempts = 5
)

// CheckInResult reports the outcome of a check-in lookup.
type CheckInResult struct {
	Booking          *models.Booking
	AlreadyCheckedIn bool
}

// BookingService owns the lifecycle of booking records.
type BookingService interface {
	CheckIn(ctx context.Context, code, hotelID string) (*CheckInResult, error)
	Create(ctx context.Context, guestName, date, hotelID string) (*models.Booking, error)
	Cancel(ctx context.Context, code, hotelID string) error
}

// DefaultBookingService implements BookingService over the booking repository.
type DefaultBookingService struct {
	Repo   repository.BookingRepository
	Logger *zap.Logger
}

func NewDefaultBookingService(repo repository.BookingRepository, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Logger: logger}
}

// CheckIn transitions a confirmed booking to checked_in. A repeated check-in
// is reported as AlreadyCheckedIn without touching the record again.
func (s *DefaultBookingService) CheckIn(ctx context.Context, code, hotelID string) (*CheckInResult, error) {
	b, err := s.Repo.FindByCode(ctx, code, hotelID)
	if err != nil {
		return nil, fmt.Errorf("check-in lookup: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if b.Status == models.BookingCheckedIn {
		return &CheckInResult{Booking: b, AlreadyCheckedIn: true}, nil
	}
	if b.Status != models.BookingConfirmed {
		return nil, ErrBookingNotFound
	}

	if err := s.Repo.UpdateStatus(ctx, b.ID, models.BookingCheckedIn); err != nil {
		return nil, fmt.Errorf("check-in update: %w", err)
	}
	b.Status = models.BookingCheckedIn

	s.Logger.Info("guest checked in",
		zap.String("code", b.Code),
		zap.String("hotel", b.HotelID),
		zap.String("room", b.RoomNumber))
	return &CheckInResult{Booking: b}, nil
}

// Create inserts a confirmed booking with a generated 4-digit code and room
// number. The (code, hotel_id) unique index makes concurrent duplicates a
// storage conflict, which is retried with a fresh code.
func (s *DefaultBookingService) Create(ctx context.Context, guestName, date, hotelID string) (*models.Booking, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		b := &models.Booking{
			Code:        generateCode(),
			HotelID:     hotelID,
			GuestName:   guestName,
			RoomNumber:  generateRoomNumber(),
			CheckInDate: date,
			Status:      models.BookingConfirmed,
		}

		err := s.Repo.Create(ctx, b)
		if err == nil {
			s.Logger.Info("booking created",
				zap.String("code", b.Code),
				zap.String("hotel", b.HotelID),
				zap.String("guest", b.GuestName))
			return b, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create booking: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("create booking: code space exhausted after %d attempts: %w", createAttempts, lastErr)
}

// Cancel sets a booking to cancelled. Cancelling an already-cancelled booking
// succeeds; only a missing record is an error.
func (s *DefaultBookingService) Cancel(ctx context.Context, code, hotelID string) error {
	b, err := s.Repo.FindByCode(ctx, code, hotelID)
	if err != nil {
		return fmt.Errorf("cancel lookup: %w", err)
	}
	if b == nil {
		return ErrBookingNotFound
	}
	if b.Status == models.BookingCancelled {
		return nil
	}

	if err := s.Repo.UpdateStatus(ctx, b.ID, models.BookingCancelled); err != nil {
		return fmt.Errorf("cancel update: %w", err)
	}

	s.Logger.Info("booking cancelled", zap.String("code", code), zap.String("hotel", hotelID))
	return nil
}

func generateCode() string {
	return fmt.Sprintf("%d", codeMin+rand.Intn(codeMax-codeMin+1))
}

func generateRoomNumber() string {
	return fmt.Sprintf("%d", roomMin+rand.Intn(roomMax-roomMin+1))
}
