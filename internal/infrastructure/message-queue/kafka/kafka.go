package kafka

import (
	"context"

	"github.com/benho/store-management/config"
	"github.com/segmentio/kafka-go"
)

func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	return kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
}

// Publisher adapts a kafka connection to the service's EventPublisher.
type Publisher struct {
	conn *kafka.Conn
}

func CreateNewPublisher(conn *kafka.Conn) *Publisher {
	return &Publisher{conn: conn}
}

func (p *Publisher) Publish(msg []byte) error {
	_, err := p.conn.WriteMessages(kafka.Message{Value: msg})
	return err
}
