package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"swaad-sutra/internal/domain"
)

type QRGenerator interface {
	Generate(order *domain.Order) ([]byte, error)
}

// SlipQRGenerator encodes the collection slip the customer shows at the
// door: order id, who it is for and the amount due.
type SlipQRGenerator struct{}

func (g SlipQRGenerator) Generate(order *domain.Order) ([]byte, error) {
	slip := fmt.Sprintf("Swaad Sutra order #%d\n%s, flat %s\nTotal: ₹%d",
		order.ID, order.CustomerName, order.FlatNumber, order.TotalAmount)
	if order.CollectDate != "" {
		slip += fmt.Sprintf("\nCollect: %s %s", order.CollectDate, order.CollectTime)
	}
	return qrcode.Encode(slip, qrcode.Medium, 256)
}
