package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"swaad-sutra/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishStatusChange keys by order id so all events for one order land in
// the same partition, in order.
func (p *KafkaPublisher) PublishStatusChange(ctx context.Context, msg domain.StatusChangedMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.Order.ID, 10)),
		Value: payload,
	})
}
