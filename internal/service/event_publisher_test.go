package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaEventPublisherRetries(t *testing.T) {
	writer := &fakeWriter{failures: 2}
	publisher := &KafkaEventPublisher{writer: writer}

	err := publisher.Publish(context.Background(), EventUpdateProduct, "p1", dto.ProductChangedEvent{ProductID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, 3, writer.calls)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("p1"), writer.messages[0].Key)

	var msg struct {
		EventType string                  `json:"event_type"`
		Data      dto.ProductChangedEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &msg))
	assert.Equal(t, EventUpdateProduct, msg.EventType)
	assert.Equal(t, "p1", msg.Data.ProductID)
}

func TestKafkaEventPublisherGivesUp(t *testing.T) {
	writer := &fakeWriter{failures: 5}
	publisher := &KafkaEventPublisher{writer: writer}

	err := publisher.Publish(context.Background(), EventOrderDelivered, "", map[string]string{"order_id": "o1"})
	assert.Error(t, err)
	assert.Equal(t, 3, writer.calls)
}

func TestCreateEventPublisherWithoutProducer(t *testing.T) {
	publisher := CreateEventPublisher(nil)
	assert.NoError(t, publisher.Publish(context.Background(), EventUpdateProduct, "p1", nil))
}
