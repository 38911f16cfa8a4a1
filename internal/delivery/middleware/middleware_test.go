package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, debug bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	UseCommon(e, slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	e.GET(HealthPath, func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/v1/orders/:id", func(c echo.Context) error {
		// Stand-in for Authenticate.
		ctx := deliverycontext.WithPrincipal(c.Request().Context(),
			deliverycontext.Principal{UserID: 7, Roles: []string{"ROLE_USER"}}, nil)
		c.SetRequest(c.Request().WithContext(ctx))

		return c.JSON(http.StatusOK, map[string]string{
			"request_id": deliverycontext.GetRequestIDFromContext(ctx),
		})
	})
	e.GET("/api/v1/fail", func(c echo.Context) error {
		return c.NoContent(http.StatusBadGateway)
	})

	return e, &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		lines = append(lines, entry)
	}

	return lines
}

func TestRequestScope(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "checkout-123", wantSame: true},
		{name: "missing id generated", header: ""},
		{name: "unsafe id replaced", header: "x\" level=ERROR"},
		{name: "oversized id replaced", header: strings.Repeat("a", deliverycontext.MaxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEcho(t, false)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/5", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Contains(t, rec.Body.String(), `"request_id":"`+got+`"`)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Equal(t, got, deliverycontext.SanitizeRequestID(got))
			}
		})
	}
}

func TestAccessLog_VerboseCarriesPrincipal(t *testing.T) {
	e, buf := newTestEcho(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/5?view=full", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-5")
	e.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	entry := lines[0]
	assert.Equal(t, "HTTP request", entry["msg"])
	assert.Equal(t, "req-5", entry["request_id"])
	assert.EqualValues(t, 7, entry["user_id"])
	assert.Equal(t, "ROLE_USER", entry["role"])
	assert.Equal(t, "/api/v1/orders/:id", entry["route"])
	assert.Equal(t, "view=full", entry["query"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}

func TestAccessLog_QuietModeLogsOnlyServerFailures(t *testing.T) {
	e, buf := newTestEcho(t, false)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/orders/5", nil))
	assert.Empty(t, logLines(t, buf))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/fail", nil))
	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.EqualValues(t, http.StatusBadGateway, lines[0]["status"])
}

func TestAccessLog_SkipsHealth(t *testing.T) {
	e, buf := newTestEcho(t, true)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, HealthPath, nil))

	assert.Empty(t, logLines(t, buf))
}

func TestAccessLog_UnknownRouteReportsEchoStatus(t *testing.T) {
	e, buf := newTestEcho(t, true)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.EqualValues(t, http.StatusNotFound, lines[0]["status"])
	assert.Equal(t, "WARN", lines[0]["level"])
}
