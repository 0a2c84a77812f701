package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/ecotips/internal/adapters/http/dto"
	"github.com/jsamuelsen/ecotips/internal/adapters/http/handlers"
	"github.com/jsamuelsen/ecotips/internal/adapters/http/middleware"
	"github.com/jsamuelsen/ecotips/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger for request-scoped logging.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// HealthHandler serves /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// TipHandler serves the catalog API.
	TipHandler *handlers.TipHandler

	// Timeout is the deadline applied to API requests. Zero disables it.
	Timeout time.Duration

	// LegacyRoutes also mounts the API under /api, next to /api/v1.
	LegacyRoutes bool
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware runs in this order:
//  1. Recovery
//  2. Logger, seeding the request-scoped logger
//  3. Request ID
//  4. Correlation ID
//  5. Tracing span and HTTP metrics
//  6. Request logging (skips /-/)
//  7. Timeout, API groups only
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine.Use(
		middleware.Recovery(),
		middleware.Logger(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	engine.NoRoute(notFound)
	engine.NoMethod(methodNotAllowed)
	engine.HandleMethodNotAllowed = true

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	prefixes := []string{"/api/v1"}
	if cfg.LegacyRoutes {
		prefixes = append(prefixes, "/api")
	}

	for _, prefix := range prefixes {
		api := engine.Group(prefix)
		if cfg.Timeout > 0 {
			api.Use(middleware.Timeout(cfg.Timeout))
		}

		if cfg.TipHandler != nil {
			cfg.TipHandler.RegisterTipRoutes(api)
		}
	}
}

func notFound(c *gin.Context) {
	dto.Abort(c, dto.ErrorCodeNotFound, "route "+c.Request.URL.Path+" not found")
}

func methodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		"method "+c.Request.Method+" not allowed",
	).WithTraceID(dto.GetTraceID(c)))
}
