package kafka

import (
	"context"
	"fmt"

	"github.com/alimikegami/point-of-sales/store-admin/config"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaProducer dials the partition leader of the configured topic.
// It returns a nil connection when no broker is configured.
func CreateKafkaProducer(ctx context.Context, config *config.Config) (*kafka.Conn, error) {
	if !config.KafkaConfig.Enabled() {
		return nil, nil
	}

	conn, err := kafka.DialLeader(ctx, "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, fmt.Errorf("dialing kafka leader: %w", err)
	}

	return conn, nil
}
