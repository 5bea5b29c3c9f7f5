package notifier

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"swaad-sutra/internal/domain"
)

// WhatsAppDeepLink renders a wa.me link the operator opens to send the
// message. The real chat API is an external collaborator; this transport
// only produces the link and logs it.
type WhatsAppDeepLink struct {
	BaseURL string
}

func NewWhatsAppDeepLink() *WhatsAppDeepLink {
	return &WhatsAppDeepLink{BaseURL: "https://wa.me"}
}

func (t *WhatsAppDeepLink) Send(ctx context.Context, intent domain.NotificationIntent) error {
	if intent.Address == "" {
		return fmt.Errorf("notification intent for order %d has no address", intent.OrderID)
	}
	link := fmt.Sprintf("%s/%s?text=%s", t.BaseURL, digitsOnly(intent.Address), url.QueryEscape(intent.Body))
	log.Printf("[%s] order %d -> %s: %s", intent.Channel, intent.OrderID, intent.Status, link)
	return nil
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
