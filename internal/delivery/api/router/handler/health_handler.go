package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"examadda/config"
	"examadda/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Config *config.Config
	DB     Pinger `optional:"true"`
}

// HealthHandler serves the service banner and the liveness probe.
type HealthHandler struct {
	serviceName string
	basePath    string
	db          Pinger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		serviceName: params.Config.Env.ServiceName,
		basePath:    params.Config.HTTP.BasePath,
		db:          params.DB,
	}
}

// Banner describes the running service.
type Banner struct {
	Service   string    `json:"service"`
	BasePath  string    `json:"basePath"`
	Timestamp time.Time `json:"timestamp"`
	Routes    []string  `json:"routes"`
}

// Root handles GET / with the service name and the registered routes.
func (h *HealthHandler) Root(c echo.Context) error {
	var routes []string
	for _, r := range c.Echo().Routes() {
		routes = append(routes, r.Method+" "+r.Path)
	}
	sort.Strings(routes)

	return response.Success(c, http.StatusOK, Banner{
		Service:   h.serviceName,
		BasePath:  h.basePath,
		Timestamp: time.Now().UTC(),
		Routes:    routes,
	}, "API is running")
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unreachable", nil)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
