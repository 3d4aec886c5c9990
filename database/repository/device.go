package repository

import (
	"context"
	"errors"
	"time"

	"frontdesk/models"

	"gorm.io/gorm"
)

// DeviceRepository provides access to provisioned kiosk devices.
type DeviceRepository interface {
	// FindBySerial returns (nil, nil) when no device carries the serial.
	FindBySerial(ctx context.Context, serial string) (*models.Device, error)
	StampHeartbeat(ctx context.Context, serial string, at time.Time) error
}

type GormDeviceRepo struct {
	db *gorm.DB
}

func NewGormDeviceRepo(db *gorm.DB) *GormDeviceRepo {
	return &GormDeviceRepo{db: db}
}

func (r *GormDeviceRepo) FindBySerial(ctx context.Context, serial string) (*models.Device, error) {
	var d models.Device
	err := r.db.WithContext(ctx).Where("serial_number = ?", serial).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDeviceRepo) StampHeartbeat(ctx context.Context, serial string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Device{}).
		Where("serial_number = ?", serial).
		Update("last_heartbeat", at).Error
}
