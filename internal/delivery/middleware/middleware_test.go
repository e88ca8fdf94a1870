package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"examadda/config"
	deliverycontext "examadda/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id is reused", incoming: "client-req-42", keep: true},
		{name: "missing id is generated", incoming: ""},
		{name: "id with spaces is replaced", incoming: "bad id"},
		{name: "oversized id is replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)

			var fromCtx string
			e.GET("/", func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, fromCtx)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newEcho := func(buf *bytes.Buffer) *echo.Echo {
		cfg := &config.Config{}
		logger := slog.New(slog.NewJSONHandler(buf, nil))

		e := echo.New()
		e.Use(NewRequestIDMiddleware(logger).Process)
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/items/:id", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "missing")
		})

		return e
	}

	t.Run("error status is logged as warning with route", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEcho(&buf)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "/items/:id", entry["route"])
		assert.Equal(t, float64(http.StatusNotFound), entry["status"])
		assert.NotEmpty(t, entry["request_id"])
	})

	t.Run("probe is not logged", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEcho(&buf)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, buf.Len())
	})
}
