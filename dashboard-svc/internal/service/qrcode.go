package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID int) ([]byte, error)
}

// DefaultQRGenerator encodes a share link to the restaurant detail page.
// Size is the PNG edge in pixels; zero means 256.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(restaurantID int) ([]byte, error) {
	link := fmt.Sprintf("%s/restaurant/%d?variant=detail", strings.TrimRight(g.BaseURL, "/"), restaurantID)
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(link, qrcode.Medium, size)
}
