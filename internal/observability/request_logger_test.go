package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestLoggerBoundsRouteKeys(t *testing.T) {
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/tickets/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for _, path := range []string{"/tickets/1", "/tickets/2", "/scan/a", "/scan/b", "/.env"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	counts := map[string]int64{}
	for _, r := range metrics.Snapshot().Requests {
		counts[r.Path] += r.Count
	}
	assert.Equal(t, map[string]int64{"/tickets/:id": 2, UnmatchedRoute: 3}, counts)
}
