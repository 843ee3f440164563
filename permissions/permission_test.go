package permissions_test

import (
	"net/http"
	"testing"

	"concierge/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{
			name:   "guest portal is public",
			path:   "/v1/guest/{hotelId}/{roomToken}",
			method: http.MethodGet,
			skip:   true,
		},
		{
			name:   "guest submission is public",
			path:   "/v1/guest/{hotelId}/{roomToken}/request",
			method: http.MethodPost,
			skip:   true,
		},
		{
			name:   "websocket upgrade authenticates on join",
			path:   "/v1/ws",
			method: http.MethodGet,
			skip:   true,
		},
		{
			name:   "trailing slash is ignored",
			path:   "/v1/hotels/{hotelId}/",
			method: http.MethodPut,
			roles:  []string{"admin"},
		},
		{
			name:   "staff may update requests",
			path:   "/v1/hotels/{hotelId}/requests/{requestId}",
			method: http.MethodPut,
			roles:  []string{"admin", "staff"},
		},
		{
			name:   "room writes are admin only",
			path:   "/v1/hotels/{hotelId}/rooms",
			method: http.MethodPost,
			roles:  []string{"admin"},
		},
		{
			name:   "unknown route",
			path:   "/v1/unknown",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)
			assert.ElementsMatch(t, tt.roles, permission.Permissions)
		})
	}
}
