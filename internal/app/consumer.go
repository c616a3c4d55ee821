package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"job-portal/internal/config"
	"job-portal/internal/events"
	"job-portal/internal/messaging/kafka/consumer"
	"job-portal/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewMailer picks SMTP delivery when a host is configured and falls back to
// logging the rendered message.
func NewMailer(cfg *config.Config, logger *zap.Logger) notification.Mailer {
	if cfg.Mail.Host == "" {
		logger.Warn("SMTP_HOST not set, emails will be logged only")
		return notification.NewLogMailer(logger)
	}
	return notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
}

// RunConsumer turns notification events into emails until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	handler := notification.NewHandler(NewMailer(cfg, logger), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.NotificationsTopic,
		GroupID:        "job-portal-notifications",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeNotifications(ctx, reader, handler, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
