package repository

import (
	"context"

	"frontdesk/models"

	"gorm.io/gorm"
)

// RoomRepository lists physical rooms for the kiosk's selection screen.
type RoomRepository interface {
	Available(ctx context.Context, hotelID string) ([]models.Room, error)
}

type GormRoomRepo struct {
	db *gorm.DB
}

func NewGormRoomRepo(db *gorm.DB) *GormRoomRepo {
	return &GormRoomRepo{db: db}
}

func (r *GormRoomRepo) Available(ctx context.Context, hotelID string) ([]models.Room, error) {
	var rooms []models.Room
	q := r.db.WithContext(ctx).Where("status = ?", models.RoomAvailable)
	if hotelID != "" {
		q = q.Where("hotel_id = ?", hotelID)
	}
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
