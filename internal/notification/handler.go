package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"job-portal/internal/events"

	"go.uber.org/zap"
)

// Handler turns notification events into emails.
type Handler struct {
	mailer Mailer
	logger *zap.Logger
}

func NewHandler(mailer Mailer, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("notification.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.handler")
	}
	return &Handler{mailer: mailer, logger: l}
}

// Handle renders and sends the email for eventType. Unknown event types are ignored.
func (h *Handler) Handle(ctx context.Context, eventType string, payload []byte) error {
	var (
		msg Message
		err error
	)

	switch eventType {
	case events.UserRegisteredType:
		var event events.UserRegisteredEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode %s: %w", eventType, err)
		}
		msg, err = RenderWelcome(event.Email, event.Name, event.Role)
	case events.ApplicationSubmittedType:
		var event events.ApplicationSubmittedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode %s: %w", eventType, err)
		}
		msg, err = RenderApplicationSubmitted(event.RecruiterEmail, event.JobTitle, event.ApplicantName)
	default:
		h.logger.Warn("unknown notification event type, skipping", zap.String("event_type", eventType))
		return nil
	}
	if err != nil {
		return err
	}

	if msg.To == "" {
		h.logger.Warn("notification has no recipient, skipping", zap.String("event_type", eventType))
		return nil
	}

	if err := h.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send %s email to %s: %w", eventType, msg.To, err)
	}

	h.logger.Info("notification email sent",
		zap.String("event_type", eventType),
		zap.String("to", msg.To),
	)
	return nil
}
