package routes

import (
	"net/http"
	"time"

	"frontdesk/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVoiceRoutes registers the voice session endpoint.
func RegisterVoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/voice")
	{
		api.POST("", hb.ProcessVoice)
	}
}

// RegisterIdentityRoutes registers identity verification endpoints.
func RegisterIdentityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/identity")
	{
		api.POST("/scan", hb.ScanIdentity)
	}
}

// RegisterRoomRoutes registers room availability endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/rooms")
	{
		api.GET("/available", hb.GetAvailableRooms)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/payments")
	{
		api.POST("/process", hb.ProcessPayment)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// audioDir is served under /audio for synthesized reply playback.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, audioDir string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/audio", audioDir)

	RegisterVoiceRoutes(r, hb)
	RegisterIdentityRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
