package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-rooms-api/auth"
	"hotel-rooms-api/controllers"
	"hotel-rooms-api/middleware"
	"hotel-rooms-api/models"
	"hotel-rooms-api/utils"
)

// Handlers bundles everything the router wires together.
type Handlers struct {
	RoomTypes *controllers.RoomTypeController
	Rooms     *controllers.RoomController
	Auth      *controllers.AuthController
	Health    *controllers.HealthController

	Credentials auth.CredentialStore
	Hasher      *auth.Hasher
}

func ParseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(h Handlers, origins []string, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logger(log))

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "Not found")
	})

	r.GET("/", h.Health.Welcome)
	r.GET("/health", h.Health.Health)

	authenticated := middleware.RequireCredentials(auth.NewPipeline(
		auth.Validate(),
		auth.Authenticate(h.Credentials, h.Hasher),
	), log)
	adminOnly := middleware.RequireCredentials(auth.NewPipeline(
		auth.Validate(),
		auth.Authenticate(h.Credentials, h.Hasher),
		auth.Authorize(h.Credentials, models.RoleAdmin),
	), log)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/token", authenticated, h.Auth.IssueToken)

		roomTypes := v1.Group("/room-types")
		{
			roomTypes.GET("", h.RoomTypes.GetRoomTypes)
			roomTypes.POST("", adminOnly, h.RoomTypes.CreateRoomType)
		}

		rooms := v1.Group("/rooms")
		{
			rooms.GET("", h.Rooms.GetRooms)
			rooms.POST("", h.Rooms.CreateRoom)
			rooms.GET("/:id", h.Rooms.GetRoomByID)
			rooms.PATCH("/:id", h.Rooms.UpdateRoom)
			rooms.DELETE("/:id", h.Rooms.DeleteRoom)
		}
	}

	return r
}
