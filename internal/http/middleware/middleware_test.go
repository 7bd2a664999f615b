package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"filecms/internal/session"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("generates new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("preserves existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))
	})
}

func TestWithRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	app := fiber.New()
	app.Use(RequestID())
	app.Use(WithRequestLogging(log))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/test", fields["path"])
	assert.Equal(t, int64(fiber.StatusAccepted), fields["status"])
	assert.Contains(t, fields, "latency")
}

func TestRequireSignedIn(t *testing.T) {
	sessions := session.NewManager()

	app := fiber.New()
	app.Post("/signin", func(c *fiber.Ctx) error {
		if err := sessions.SignIn(c, "alice"); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/protected", RequireSignedIn(sessions), func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})
	app.Get("/flash", func(c *fiber.Ctx) error {
		errMsg, _ := sessions.Flash(c)
		return c.SendString(errMsg)
	})

	t.Run("anonymous is redirected with flash, handler never runs", func(t *testing.T) {
		jar := map[string]string{}
		resp := doReq(t, app, http.MethodPost, "/protected", jar)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		body := new(bytes.Buffer)
		body.ReadFrom(resp.Body)
		assert.NotContains(t, body.String(), "reached")

		resp = doReq(t, app, http.MethodGet, "/flash", jar)
		body.Reset()
		body.ReadFrom(resp.Body)
		assert.Equal(t, "You must be signed in to do that.", body.String())
	})

	t.Run("signed-in passes through", func(t *testing.T) {
		jar := map[string]string{}
		doReq(t, app, http.MethodPost, "/signin", jar)

		resp := doReq(t, app, http.MethodPost, "/protected", jar)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := new(bytes.Buffer)
		body.ReadFrom(resp.Body)
		assert.Equal(t, "reached", body.String())
	})
}

func doReq(t *testing.T, app *fiber.App, method, target string, jar map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range jar {
		req.AddCookie(&http.Cookie{Name: k, Value: v})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	for _, ck := range resp.Cookies() {
		jar[ck.Name] = ck.Value
	}
	return resp
}
