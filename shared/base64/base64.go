package base64

import (
	stdBase64 "encoding/base64"
	"strings"
)

const (
	dataURLPrefix = "data:"
	dataURLMarker = ";base64,"
)

// EncodeDataURL renders raw bytes as a data URL, e.g. data:image/png;base64,....
func EncodeDataURL(contentType string, data []byte) string {
	return dataURLPrefix + contentType + dataURLMarker + stdBase64.StdEncoding.EncodeToString(data)
}

// IsDataURL reports whether the value is an inline base64 data URL rather than a remote link.
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, dataURLPrefix) && strings.Contains(value, dataURLMarker)
}

func GetContentType(file string) string {
	start := len(dataURLPrefix)
	end := strings.Index(file, dataURLMarker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
