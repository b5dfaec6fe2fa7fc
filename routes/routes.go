package routes

import (
	"net/http"
	"time"

	"skillbridge/handlers"
	"skillbridge/middleware"
	"skillbridge/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm SkillBridge",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterMentorRoutes registers the public mentor directory.
func RegisterMentorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mentors")
	{
		api.GET("", hb.SearchMentorsHandler)
		api.GET("/:id", hb.GetMentorHandler)
		api.GET("/:id/slots", hb.GetMentorSlotsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequesterHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterMentorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
}
