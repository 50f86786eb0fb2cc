package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"camping-fun/server/config"
	"camping-fun/server/internal/api/handler"
	"camping-fun/server/internal/api/middleware"
	"camping-fun/server/pkg/response"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Setup builds the gin engine. limiter may be nil, which disables rate
// limiting.
func Setup(cfg *config.Config, h *handler.Handler, db Pinger, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	r.Use(middleware.RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, response.ErrorBody{Error: "method not allowed"})
	})

	// ── liveness ──
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "")
	})
	r.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			_ = c.Error(err)
			response.ServiceUnavailable(c, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── campers ──
	campers := r.Group("/campers")
	{
		campers.GET("", h.Camper.ListCampers)
		campers.POST("", h.Camper.CreateCamper)
		campers.GET("/:id", h.Camper.GetCamper)
		campers.PATCH("/:id", h.Camper.UpdateCamper)
	}

	// ── activities ──
	activities := r.Group("/activities")
	{
		activities.GET("", h.Activity.ListActivities)
		activities.GET("/:id", h.Activity.GetActivity)
		activities.DELETE("/:id", h.Activity.DeleteActivity)
	}

	// ── signups ──
	r.POST("/signups", h.Signup.CreateSignup)

	// ── export ──
	r.GET("/export/signups", h.Export.ExportSignups)

	return r
}
