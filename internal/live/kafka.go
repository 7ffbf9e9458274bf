package live

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaSource consumes activation events from the shop's event topic, for
// deployments where the push gateway is not exposed and the console reads
// the event bus directly.
type KafkaSource struct {
	reader *kafka.Reader
	log    *zap.Logger
}

// NewKafkaSource creates a consumer-group reader on the event topic.
func NewKafkaSource(brokers []string, topic, groupID string, log *zap.Logger) *KafkaSource {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})
	return &KafkaSource{reader: reader, log: log}
}

// Subscribe reads messages and forwards product-activation payloads to
// handler until the context is cancelled or the source is closed. Read
// errors are logged and consumption continues.
func (s *KafkaSource) Subscribe(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := s.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				// Reader was closed.
				return nil
			}
			s.log.Warn("kafka read failed", zap.Error(err))
			continue
		}

		var env Envelope
		if err := json.Unmarshal(msg.Value, &env); err != nil {
			s.log.Warn("undecodable event message", zap.Error(err))
			continue
		}
		if env.Event != EventProductActivated {
			continue
		}
		if err := handler(ctx, env.Data); err != nil {
			s.log.Warn("event handler failed", zap.Error(err))
		}
	}
}

func (s *KafkaSource) Close() error {
	return s.reader.Close()
}
