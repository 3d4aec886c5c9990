package handlers

import (
	"context"

	"frontdesk/models"
	"frontdesk/services/device"

	"gorm.io/gorm"
)

// fakeDirectory returns a canned authorization result.
type fakeDirectory struct {
	result device.AuthResult
	calls  int
}

func (f *fakeDirectory) Authorize(_ context.Context, serial string) device.AuthResult {
	f.calls++
	if serial == "" {
		return device.AuthResult{Reason: "serial number is required"}
	}
	return f.result
}

type fakeTranscriber struct {
	transcript string
	err        error
	calls      int
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ []byte) (string, error) {
	f.calls++
	return f.transcript, f.err
}

type fakeClassifier struct {
	intent *models.Intent
	err    error
}

func (f *fakeClassifier) Classify(_ context.Context, _, _ string) (*models.Intent, error) {
	return f.intent, f.err
}

type fakeSynthesizer struct {
	url   string
	err   error
	calls int
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.url, f.err
}

type fakeExtractor struct {
	doc *models.IdentityDocument
	err error
}

func (f *fakeExtractor) ExtractIdentity(_ context.Context, _ []byte, _ string) (*models.IdentityDocument, error) {
	return f.doc, f.err
}

type fakeProcessor struct {
	result *models.PaymentResult
	err    error
}

func (f *fakeProcessor) Charge(_ context.Context, _ models.PaymentRequest, _ string) (*models.PaymentResult, error) {
	return f.result, f.err
}

// fakeBookingRepo is an in-memory repository.BookingRepository.
type fakeBookingRepo struct {
	bookings []*models.Booking
	nextID   uint
}

func (f *fakeBookingRepo) seed(b models.Booking) *models.Booking {
	f.nextID++
	b.ID = f.nextID
	copied := b
	f.bookings = append(f.bookings, &copied)
	return &copied
}

func (f *fakeBookingRepo) FindByCode(_ context.Context, code, hotelID string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.Code == code && b.HotelID == hotelID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.Code == b.Code && existing.HotelID == b.HotelID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	b.ID = f.nextID
	copied := *b
	f.bookings = append(f.bookings, &copied)
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uint, status models.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) MarkIdentityVerified(_ context.Context, id uint) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.IdentityVerified = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) MarkPaid(_ context.Context, id uint) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.PaymentStatus = "paid"
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func onlineKiosk() device.AuthResult {
	return device.AuthResult{
		Authorized: true,
		Device: &models.Device{
			SerialNumber: "ATC-SN-2026-001",
			HotelID:      "hotel-1",
			Status:       models.DeviceOnline,
			Config:       map[string]string{"hotel_name": "Grand Hotel"},
		},
	}
}
