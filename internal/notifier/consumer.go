package notifier

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"swaad-sutra/internal/domain"
	"swaad-sutra/internal/service"
)

type MarkerCache interface {
	SentMarkerKey(orderID int64, status domain.Status) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

// Transport delivers a decided notification. The consumer never builds
// message content itself; that is the dispatch policy's job.
type Transport interface {
	Send(ctx context.Context, intent domain.NotificationIntent) error
}

type Consumer struct {
	Reader    *kafka.Reader
	Cache     MarkerCache
	Transport Transport
}

func NewConsumer(reader *kafka.Reader, cache MarkerCache, transport Transport) *Consumer {
	return &Consumer{
		Reader:    reader,
		Cache:     cache,
		Transport: transport,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order notifier consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.StatusChangedMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == domain.StatusChangedType {
			c.Process(ctx, msg)
		}
	}
}

// Process runs the dispatch policy over one status-change event and hands
// any resulting intent to the transport, at most once per (order, status).
func (c *Consumer) Process(ctx context.Context, msg domain.StatusChangedMessage) {
	if msg.Type != domain.StatusChangedType || msg.OldStatus == msg.NewStatus {
		return
	}

	// The policy expects the pre-transition snapshot so a replayed no-op
	// never produces an intent.
	snapshot := msg.Order
	snapshot.Status = msg.OldStatus

	intent := service.Decide(&snapshot, msg.NewStatus)
	if intent == nil {
		log.Printf("No notification for order %d -> %s", msg.Order.ID, msg.NewStatus)
		return
	}

	var key string
	if c.Cache != nil {
		key = c.Cache.SentMarkerKey(intent.OrderID, intent.Status)
		if sent, _ := c.Cache.Exists(ctx, key); sent {
			log.Printf("Notification for order %d -> %s already sent, skipping", intent.OrderID, intent.Status)
			return
		}
	}

	if err := c.Transport.Send(ctx, *intent); err != nil {
		log.Printf("Error sending notification for order %d: %v", intent.OrderID, err)
		return
	}

	if c.Cache != nil {
		if err := c.Cache.SetMarker(ctx, key); err != nil {
			log.Printf("Warning: failed to set sent marker: %v", err)
		}
	}
	log.Printf("Notified %s for order %d -> %s", intent.Address, intent.OrderID, intent.Status)
}
