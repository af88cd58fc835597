package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// PNG encodes data as a QR code image.
func PNG(data string, size int) ([]byte, error) {
	if data == "" {
		return nil, fmt.Errorf("qrcode: empty content")
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}
