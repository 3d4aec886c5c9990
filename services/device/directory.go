package device

import (
	"context"
	"time"

	"frontdesk/database/repository"
	"frontdesk/models"

	"go.uber.org/zap"
)

// AuthResult is the outcome of authorizing a kiosk serial number.
// Device is populated only when Authorized is true.
type AuthResult struct {
	Authorized bool
	Device     *models.Device
	Reason     string
}

// Directory authorizes kiosk terminals by serial number.
type Directory interface {
	Authorize(ctx context.Context, serial string) AuthResult
}

// DefaultDirectory implements Directory over the device repository.
// It fails closed: any storage error denies authorization rather than
// propagating to the caller.
type DefaultDirectory struct {
	Repo   repository.DeviceRepository
	Logger *zap.Logger
}

func NewDefaultDirectory(repo repository.DeviceRepository, logger *zap.Logger) *DefaultDirectory {
	return &DefaultDirectory{Repo: repo, Logger: logger}
}

func (d *DefaultDirectory) Authorize(ctx context.Context, serial string) AuthResult {
	if serial == "" {
		return AuthResult{Reason: "serial number is required"}
	}

	dev, err := d.Repo.FindBySerial(ctx, serial)
	if err != nil {
		d.Logger.Error("device lookup failed", zap.String("serial", serial), zap.Error(err))
		return AuthResult{Reason: "device verification unavailable"}
	}
	if dev == nil {
		d.Logger.Warn("unknown device", zap.String("serial", serial))
		return AuthResult{Reason: "Device Unauthorized"}
	}
	if dev.Status == models.DeviceOffline {
		return AuthResult{Reason: "Device is Offline"}
	}

	// The heartbeat is a liveness stamp; a failed write does not revoke an
	// otherwise valid authorization.
	if err := d.Repo.StampHeartbeat(ctx, serial, time.Now()); err != nil {
		d.Logger.Warn("heartbeat stamp failed", zap.String("serial", serial), zap.Error(err))
	}

	return AuthResult{Authorized: true, Device: dev}
}
