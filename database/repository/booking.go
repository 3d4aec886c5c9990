package repository

import (
	"context"
	"errors"

	"frontdesk/models"

	"gorm.io/gorm"
)

// BookingRepository provides access to booking records, always scoped by hotel.
type BookingRepository interface {
	// FindByCode returns (nil, nil) when no booking matches.
	FindByCode(ctx context.Context, code, hotelID string) (*models.Booking, error)
	Create(ctx context.Context, b *models.Booking) error
	UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error
	MarkIdentityVerified(ctx context.Context, id uint) error
	MarkPaid(ctx context.Context, id uint) error
}

type GormBookingRepo struct {
	db *gorm.DB
}

func NewGormBookingRepo(db *gorm.DB) *GormBookingRepo {
	return &GormBookingRepo{db: db}
}

func (r *GormBookingRepo) FindByCode(ctx context.Context, code, hotelID string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("code = ? AND hotel_id = ?", code, hotelID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *GormBookingRepo) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormBookingRepo) MarkIdentityVerified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("identity_verified", true).Error
}

func (r *GormBookingRepo) MarkPaid(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("payment_status", "paid").Error
}
