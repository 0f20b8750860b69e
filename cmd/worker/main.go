package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecomstack/inventory-service/cmd/config"
	"github.com/ecomstack/inventory-service/thirdparty/rabbitmq"
	"github.com/ecomstack/inventory-service/utils/logger"
	"go.uber.org/zap"
)

// Worker consumes movement-completed events and triggers the low-stock check
// on the affected warehouses through the internal API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting movement worker", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("Shutdown signal received")
		cancel()
	}()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("consumer failed to start", zap.Error(err))
	}

	logger.Info("Worker consuming movement events")
	<-ctx.Done()
	logger.Info("Worker stopped")
}
