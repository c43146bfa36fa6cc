package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go-fichaje/internal/attendance"
	"go-fichaje/internal/config"
	"go-fichaje/internal/messaging/kafka"
	"go-fichaje/internal/messaging/kafka/producer"
	"go-fichaje/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes the outbox to Kafka and runs the periodic global sweep
// of forgotten records.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	in, err := Connect(cfg, logger, false)
	if err != nil {
		return err
	}
	defer in.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(&cfg.Kafka, cfg.Database.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(in.DB)
	attendanceService := attendance.NewServiceWithOutbox(
		in.DB,
		attendance.NewRepository(in.GormDB),
		outboxRepo,
		attendance.OptionsFromConfig(cfg.Attendance),
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Kafka.OutboxPoll)
	}()
	go func() {
		defer wg.Done()
		attendance.RunSweepLoop(ctx, attendanceService, cfg.Attendance.SweepInterval, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("worker shutting down")
	cancel()
	wg.Wait()

	return nil
}
