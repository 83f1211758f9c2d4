package qr

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// PNGRenderer encodes the code locally and returns it as a data URI.
type PNGRenderer struct {
	Size  int
	Level qrcode.RecoveryLevel
}

func NewPNGRenderer(size int) *PNGRenderer {
	if size <= 0 {
		size = 256
	}
	return &PNGRenderer{Size: size, Level: qrcode.Medium}
}

func (r *PNGRenderer) Render(_ context.Context, content string) (string, error) {
	if content == "" {
		return "", fmt.Errorf("qr: empty content")
	}
	png, err := qrcode.Encode(content, r.Level, r.Size)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
