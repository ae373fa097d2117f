package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the order's receipt page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g *DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	data := fmt.Sprintf("%s/api/orders/%d", g.BaseURL, orderID)
	return qrcode.Encode(data, qrcode.Medium, 256)
}

var _ QRGenerator = (*DefaultQRGenerator)(nil)
