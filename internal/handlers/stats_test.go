package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "storeadmin/internal/errors"
	"storeadmin/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func statsApp(svc *MockStatsService) *fiber.App {
	app := fiber.New()
	app.Get("/api/admin/stats", NewStatsHandler(svc, time.Second).GetStats)
	return app
}

func TestStatsHandler_GetStats(t *testing.T) {
	tests := []struct {
		name       string
		summary    *models.StatsSummary
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "full summary",
			summary:    &models.StatsSummary{TotalOrders: models.Computed(int64(2))},
			wantStatus: fiber.StatusOK,
			wantMsg:    "Dashboard statistics retrieved successfully",
		},
		{
			name: "partial summary",
			summary: &models.StatsSummary{
				TotalOrders:  models.Computed(int64(2)),
				TotalRevenue: models.Unavailable[decimal.Decimal](errors.New("timeout")),
				Partial:      true,
			},
			wantStatus: fiber.StatusOK,
			wantMsg:    "Dashboard statistics partially retrieved",
		},
		{
			name:       "nothing available",
			summary:    &models.StatsSummary{Partial: true},
			err:        apperrors.ErrStatsUnavailable,
			wantStatus: fiber.StatusServiceUnavailable,
			wantMsg:    "Statistics are unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockStatsService)
			svc.On("Summary", mock.Anything).Return(tt.summary, tt.err)

			resp, err := statsApp(svc).Test(httptest.NewRequest("GET", "/api/admin/stats", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			env := decode(t, resp.Body)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.NotEmpty(t, env.Data)
			svc.AssertExpectations(t)
		})
	}
}
