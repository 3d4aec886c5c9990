package models

import "time"

// DeviceStatus is the provisioning state of a kiosk terminal.
type DeviceStatus string

const (
	DeviceOnline  DeviceStatus = "online"
	DeviceOffline DeviceStatus = "offline"
)

// Device is a physical kiosk terminal, identified by its serial number and
// scoped to a single hotel. Devices are provisioned out-of-band; the only
// mutation this service performs is the heartbeat stamp on authorization.
type Device struct {
	ID            uint              `gorm:"primaryKey" json:"-"`
	SerialNumber  string            `gorm:"uniqueIndex;size:64" json:"serial_number"`
	HotelID       string            `gorm:"size:64;index" json:"hotel_id"`
	Status        DeviceStatus      `gorm:"size:16" json:"status"`
	Config        map[string]string `gorm:"serializer:json" json:"config"`
	LastHeartbeat time.Time         `json:"last_heartbeat"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// HotelName returns the display name configured for the device's hotel.
func (d *Device) HotelName() string {
	if d == nil || d.Config == nil {
		return ""
	}
	return d.Config["hotel_name"]
}
