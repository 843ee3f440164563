package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name         string
		publicDomain string
		apiEndpoint  string
		url          string
		want         string
	}{
		{
			name:         "public domain",
			publicDomain: "https://cdn.example.com",
			url:          "https://cdn.example.com/qr/room-1.png",
			want:         "qr/room-1.png",
		},
		{
			name:         "public domain with trailing slash",
			publicDomain: "https://cdn.example.com/",
			url:          "https://cdn.example.com/qr/room-1.png",
			want:         "qr/room-1.png",
		},
		{
			name:        "api endpoint path style",
			apiEndpoint: "https://s3.example.com",
			url:         "https://s3.example.com/bucket/qr/room-1.png",
			want:        "qr/room-1.png",
		},
		{
			name:         "data url is not an object",
			publicDomain: "https://cdn.example.com",
			url:          "data:image/png;base64,AAAA",
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := objectKeyFromURL(tt.publicDomain, tt.apiEndpoint, "bucket", tt.url)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/qr/a.png", publicURL("https://cdn.example.com/", "qr/a.png"))
}
