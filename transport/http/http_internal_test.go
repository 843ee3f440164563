package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"concierge/config"
	"concierge/shared/constant"
	"concierge/transport/http/router"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name         string
		state        ServerState
		expectedCode int
		expectedBody string
	}{
		{
			name:         "ready",
			state:        ServerStateReady,
			expectedCode: http.StatusOK,
			expectedBody: constant.ResponseHealthy,
		},
		{
			name:         "grace period",
			state:        ServerStateInGracePeriod,
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: constant.ResponseErrorPrepareShutdown,
		},
		{
			name:         "cleanup period",
			state:        ServerStateInCleanupPeriod,
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: constant.ResponseErrorPrepareShutdown,
		},
		{
			name:         "not started",
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: constant.ResponseErrorUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(&config.Config{}, router.Router{}, nil)
			h.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			h.health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
