package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	EventUpdateProduct  = "update_product"
	EventOrderDelivered = "order_delivered"

	maxPublishAttempts = 3
)

type MessageWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}

type KafkaEventPublisher struct {
	writer  MessageWriter
	backoff time.Duration
}

type nopEventPublisher struct{}

func (nopEventPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	return nil
}

// CreateEventPublisher wraps a kafka producer. Without a producer events
// are dropped.
func CreateEventPublisher(producer *kafka.Conn) EventPublisher {
	if producer == nil {
		return nopEventPublisher{}
	}

	return &KafkaEventPublisher{writer: producer, backoff: time.Second}
}

// Publish writes the event, retrying up to three times with a linearly
// growing pause between attempts.
func (p *KafkaEventPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) (err error) {
	jsonMsg, err := json.Marshal(dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", eventType, err)
	}

	msg := kafka.Message{Value: jsonMsg}
	if key != "" {
		msg.Key = []byte(key)
	}

	for i := 0; i < maxPublishAttempts; i++ {
		_, err = p.writer.WriteMessages(msg)
		if err == nil {
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", eventType).Int("attempt", i+1).Msg("")

		if i < maxPublishAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.backoff * time.Duration(i+1)):
			}
		}
	}

	return fmt.Errorf("publishing %s event after %d attempts: %w", eventType, maxPublishAttempts, err)
}
