package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects the kiosk endpoints for route registration.
type HandlerBundle struct {
	ProcessVoice      gin.HandlerFunc
	ScanIdentity      gin.HandlerFunc
	ProcessPayment    gin.HandlerFunc
	GetAvailableRooms gin.HandlerFunc
}
