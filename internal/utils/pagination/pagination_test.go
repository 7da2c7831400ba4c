package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Pagination
	}{
		{"defaults", "", Pagination{Page: 1, Limit: 10, Offset: 0}},
		{"second page", "?page=2&limit=20", Pagination{Page: 2, Limit: 20, Offset: 20}},
		{"garbage", "?page=x&limit=-3", Pagination{Page: 1, Limit: 10, Offset: 0}},
		{"limit capped", "?limit=500", Pagination{Page: 1, Limit: MaxLimit, Offset: 0}},
		{"page capped", "?page=922337203685477580&limit=20", Pagination{Page: MaxPage, Limit: 20, Offset: (MaxPage - 1) * 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Pagination
			app.Get("/", func(c *fiber.Ctx) error {
				got = ParseFromRequest(c)
				return c.SendStatus(fiber.StatusNoContent)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponse_TotalPages(t *testing.T) {
	out := Response(Pagination{Page: 1, Limit: 10, Total: 21}, []int{})
	meta := out["meta"].(fiber.Map)
	assert.Equal(t, int64(3), meta["total_pages"])
	assert.Equal(t, int64(21), meta["total_items"])
}
