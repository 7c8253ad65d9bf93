package publisher

import (
	"context"
	"strconv"

	"github.com/fekuna/omnipos-storefront-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// messageWriter is the part of broker.KafkaProducer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// HandoffPublisher writes hand-off events keyed by product id, so events for
// one product stay ordered within a partition.
type HandoffPublisher struct {
	writer messageWriter
	logger logger.ZapLogger
}

func NewHandoffPublisher(writer messageWriter, log logger.ZapLogger) *HandoffPublisher {
	return &HandoffPublisher{
		writer: writer,
		logger: log,
	}
}

func (p *HandoffPublisher) Publish(ctx context.Context, event *dto.HandoffEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal hand-off event")
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.Payload.ProductID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "write hand-off event")
	}

	p.logger.Debug("hand-off event published",
		zap.String("event_id", event.EventID),
		zap.Int64("product_id", event.Payload.ProductID),
	)
	return nil
}

// NopPublisher drops events; it is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event *dto.HandoffEvent) error {
	return nil
}
