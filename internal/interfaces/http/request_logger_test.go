package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

func TestRequestLogger_NivelPorStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("falla") })

	want := map[string]struct {
		status int
		level  string
	}{
		"/ok":      {http.StatusOK, "info"},
		"/missing": {http.StatusNotFound, "warn"},
		"/boom":    {http.StatusInternalServerError, "error"},
	}
	for path, w := range want {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, w.status, resp.StatusCode, path)
	}

	seen := map[string]string{}
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var entry struct {
			Level  string `json:"level"`
			Path   string `json:"path"`
			Status int    `json:"status"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		seen[entry.Path] = entry.Level
		assert.Equal(t, want[entry.Path].status, entry.Status, entry.Path)
	}
	for path, w := range want {
		assert.Equal(t, w.level, seen[path], path)
	}
}
