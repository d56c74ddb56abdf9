// Package server provides HTTP server setup and configuration.
package server

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeting-service/internal/config"
	"github.com/sebasr/greeting-service/internal/handlers"
	"github.com/sebasr/greeting-service/internal/middleware"
)

const healthPath = "/health"

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config *config.Config

	// LogOutput receives request logs. Defaults to stdout.
	LogOutput io.Writer
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	cfg := deps.Config

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	// gin.Default() includes colored logging, so the middleware chain is built explicitly
	router := gin.New()

	// Gin trusts every proxy by default, which would let clients pick their
	// rate limit key through X-Forwarded-For
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Printf("Invalid trusted proxies %v, trusting none: %v", cfg.Server.TrustedProxies, err)
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(gin.Recovery())

	// Request IDs must be assigned before the logger reads them
	router.Use(middleware.RequestID())
	router.Use(middleware.NewRequestLogger(logOutput(deps), healthPath))

	// Add CORS middleware for web client support
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", "Accept-Encoding", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.NewRateLimitMiddleware(cfg.RateLimit.Limit, cfg.RateLimit.Period))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	router.GET(healthPath, handlers.NewHealthHandler(cfg.Server.Version))

	// Greeting resource
	router.GET("/", handlers.HelloHandler)
	greet := router.Group("/greet")
	{
		greet.GET("", handlers.QueryGreetingHandler)
		greet.POST("", handlers.BodyGreetingHandler)
		greet.GET("/:name", handlers.PathGreetingHandler)
	}

	return router
}

func logOutput(deps *Dependencies) io.Writer {
	switch {
	case !deps.Config.Log.Requests:
		return io.Discard
	case deps.LogOutput != nil:
		return deps.LogOutput
	default:
		return os.Stdout
	}
}
