package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"docdash/internal/dashboard"
	"docdash/internal/logger"
	"docdash/internal/session"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		// Check if it's readable in handler (from response body)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace unusable request id", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("x", 129)} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)

			resp, _ := app.Test(req)

			rid := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, bad, rid)
			assert.Len(t, rid, 36)
		}
	})

	t.Run("should attach request id to user context", func(t *testing.T) {
		app := fiber.New()
		app.Use(RequestID())
		app.Get("/ctx", func(c *fiber.Ctx) error {
			return c.SendString(logger.RequestID(c.UserContext()))
		})

		req := httptest.NewRequest("GET", "/ctx", nil)
		req.Header.Set(RequestIDHeader, "rid-42")
		resp, _ := app.Test(req)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, "rid-42", buf.String())
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	// Logger usually depends on RequestID for request_id field
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	// Verify log output
	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	app := fiber.New()
	app.Use(Logger(zap.New(core)))

	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "nope")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	_, _ = app.Test(httptest.NewRequest("GET", "/missing", nil))
	_, _ = app.Test(httptest.NewRequest("GET", "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(404), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(500), entries[1].ContextMap()["status"])
}

func TestLogger_TraceID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	var traceID string
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		ctx, span := tp.Tracer("test").Start(c.UserContext(), "request")
		defer span.End()
		traceID = span.SpanContext().TraceID().String()
		c.SetUserContext(ctx)
		return c.Next()
	})
	app.Use(Logger(zap.New(core)))
	app.Get("/traced", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	_, _ = app.Test(httptest.NewRequest("GET", "/traced", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, traceID, entries[0].ContextMap()["trace_id"])
}

func TestSession(t *testing.T) {
	store := session.NewStore(time.Minute, func() *dashboard.Controller {
		return dashboard.NewController(nil, nil, nil, dashboard.Options{}, zap.NewNop())
	}, zap.NewNop())

	app := fiber.New()
	app.Use(Session(store))
	app.Get("/test", func(c *fiber.Ctx) error {
		if Controller(c) == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(c.Locals(SessionIDLocalKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	sid := resp.Header.Get(session.Header)
	assert.NotEmpty(t, sid)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(session.Header, sid)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, sid, resp.Header.Get(session.Header))
	assert.Equal(t, 1, store.Len())
}
