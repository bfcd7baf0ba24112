package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLogger_LogsRequest(t *testing.T) {
	buf := captureLogs(t)
	e := echo.New()
	e.Use(Logger())
	e.GET("/api/v1/articles", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	serve(e, "/api/v1/articles?category=science")

	assert.Contains(t, buf.String(), `"msg":"REQUEST"`)
	assert.Contains(t, buf.String(), `"uri":"/api/v1/articles?category=science"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestLogger_LogsHandlerError(t *testing.T) {
	buf := captureLogs(t)
	e := echo.New()
	e.Use(Logger())
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream down")
	})

	rec := serve(e, "/boom")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, buf.String(), `"msg":"REQUEST_ERROR"`)
	assert.Contains(t, buf.String(), "upstream down")
}

func TestLogger_WithSkipper(t *testing.T) {
	buf := captureLogs(t)
	e := echo.New()
	e.Use(Logger(WithSkipper(func(c echo.Context) bool { return c.Path() == "/health" })))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	serve(e, "/health")

	assert.Empty(t, buf.String())
}
