package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"concierge/shared/failure"
	"concierge/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found keeps its message",
			err:      failure.NotFound("room not found"),
			wantCode: http.StatusNotFound,
			wantBody: "room not found",
		},
		{
			name:     "bad request keeps its message",
			err:      failure.BadRequestFromString("guestPhone is required"),
			wantCode: http.StatusBadRequest,
			wantBody: "guestPhone is required",
		},
		{
			name:     "plain error is hidden",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
		{
			name:     "internal failure is hidden",
			err:      failure.InternalError(errors.New("dial tcp 10.0.0.1:5432")),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantBody, *body.Error)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "r1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"r1"}}`, rec.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}
