package qrcode

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	ContentType = "image/png"
)

var ErrEmptyContent = errors.New("qr content cannot be empty")

// PNG renders content as a square PNG of the given pixel size.
func PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	if size <= 0 {
		size = DefaultSize
	}

	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	return png, nil
}
