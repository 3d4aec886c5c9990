package models

import "time"

// RoomStatus is the occupancy state of a physical room.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomOccupied  RoomStatus = "occupied"
)

// Room is a physical hotel room, listed on the kiosk's room-selection screen.
type Room struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	HotelID    string     `gorm:"size:64;index" json:"hotel_id"`
	RoomNumber string     `gorm:"size:8" json:"room_number"`
	RoomType   string     `gorm:"size:32" json:"type"`
	Price      float64    `json:"price"`
	Status     RoomStatus `gorm:"size:16" json:"status"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
}
