package consumer

import (
	"context"

	"job-portal/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// EventHandler processes one decoded notification event.
type EventHandler interface {
	Handle(ctx context.Context, eventType string, payload []byte) error
}

// ConsumeNotifications drains the notifications topic until ctx is done.
// Every message is committed once handled, including handler failures:
// notifications are fire and forget.
func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	handler EventHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notifications")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		eventType, err := events.PeekType(msg.Value)
		if err != nil {
			log.Error("decode notification event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			commit(ctx, reader, msg, log)
			continue
		}

		if err := handler.Handle(ctx, eventType, msg.Value); err != nil {
			log.Error("handle notification event failed",
				zap.String("event_type", eventType),
				zap.String("request_id", header(msg, "request_id")),
				zap.Error(err),
			)
		} else {
			log.Info("notification event handled",
				zap.String("event_type", eventType),
				zap.String("request_id", header(msg, "request_id")),
			)
		}

		commit(ctx, reader, msg, log)
	}
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit notification message failed", zap.Error(err))
	}
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
