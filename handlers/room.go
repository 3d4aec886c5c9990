package handlers

import (
	"net/http"

	"frontdesk/database/repository"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler lists rooms for the kiosk's selection screen.
type RoomHandler struct {
	Rooms  repository.RoomRepository
	Logger *zap.Logger
}

func NewRoomHandler(rooms repository.RoomRepository, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Logger: logger}
}

// GetAvailableRooms handles GET /api/v1/rooms/available.
func (h *RoomHandler) GetAvailableRooms(c *gin.Context) {
	rooms, err := h.Rooms.Available(c.Request.Context(), c.Query("hotel_id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not fetch rooms", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rooms,
	})
}
