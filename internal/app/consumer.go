package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-fichaje/internal/audit"
	"go-fichaje/internal/config"
	"go-fichaje/internal/events"
	"go-fichaje/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer stores every fichaje lifecycle event in the audit trail.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	in, err := Connect(cfg, logger, false)
	if err != nil {
		return err
	}
	defer in.Close()

	auditService := audit.NewService(audit.NewRepository(in.GormDB), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          events.FichajeLifecycleTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		consumer.ConsumeFichajeLifecycle(ctx, reader, auditService, logger)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
