package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name           string
		expectedStatus string
	}{
		{
			name:           "health check returns OK",
			expectedStatus: "OK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(nil, "", slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &struct{}{})

			// Assert
			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
		})
	}
}

func TestHandler_readiness(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		code    int
	}{
		{name: "store reachable", code: http.StatusOK},
		{name: "store down", pingErr: errors.New("connection refused"), code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := new(MockPinger)
			pinger.On("Ping", mock.Anything).Return(tt.pingErr)

			_, api := humatest.New(t)
			NewHandler(pinger, "postgres", slog.Default(), huma.Middlewares{}).SetupRoutes(api)

			resp := api.Get("/api/v1/health/ready")

			assert.Equal(t, tt.code, resp.Code)
			if tt.pingErr == nil {
				var got Response
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
				assert.Equal(t, Response{Status: "OK", Store: "postgres"}, got)
			}
			pinger.AssertExpectations(t)
		})
	}
}

func TestNewHandler(t *testing.T) {
	// Arrange
	log := slog.Default()
	middleware := huma.Middlewares{}

	// Act
	handler := NewHandler(nil, "cloudkit", log, middleware)

	// Assert
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
	assert.Equal(t, "cloudkit", handler.storeName)
}
