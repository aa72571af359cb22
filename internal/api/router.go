package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/degrees/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Path        PathService
	People      PeopleService
	Movies      MovieService
	Dataset     DatasetService
	Pinger      Pinger // nil for CSV datasets
	CORSOrigins []string
	Version     string
	RateLimit   float64 // requests per second per IP; 0 disables limiting
	RateBurst   int
}

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())

	// cors.New panics on an empty origin list.
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			MaxAge:           1 * time.Hour,
			AllowCredentials: false,
		}))
	}

	if deps.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(ctx, deps.RateLimit, max(deps.RateBurst, 1)).Handler())
	}

	r.Use(middleware.Prometheus())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Dataset, deps.Pinger, log, deps.Version)
	stats := NewStatsHandler(deps.Dataset, log)
	people := NewPeopleHandler(deps.People, log)
	movies := NewMovieHandler(deps.Movies, log)
	path := NewPathHandler(deps.Path, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)
	api.GET("/stats", stats.GetStats)

	api.GET("/people", people.Search)
	api.GET("/people/:id", people.Get)
	api.GET("/people/:id/neighbors", people.Neighbors)

	api.GET("/movies/:id", movies.Get)

	api.GET("/path", path.ByName)
	api.GET("/path/:from/:to", path.ByID)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}
