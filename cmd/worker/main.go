package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"photoscript/app"
	"photoscript/config"
	"photoscript/db"
	"photoscript/eventbus"
	"photoscript/logger"
)

// QA 검증 작업 소비자. Kafka 토픽을 구독해 작업을 실행하며,
// 실패한 이벤트는 재시도 없이 DLQ 로 이동한다.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("mongo init failed: %v", err)
		os.Exit(1)
	}

	if cfg.Kafka.Brokers == "" {
		logger.Log.Error("worker requires kafka brokers; the api consumes jobs in-process without them")
		os.Exit(1)
	}

	container := app.Build()
	defer container.Bus.Close()

	logger.Log.Info("starting qa worker...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := container.Bus.Subscribe(ctx, cfg.Kafka.GroupID, eventbus.TopicQAJobs,
			container.QAJobs.HandleEvent); err != nil && err != context.Canceled {
			logger.Log.Errorf("qa job consumer error: %v", err)
		}
	}()

	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down qa worker...")
	cancel()
	logger.Log.Info("qa worker stopped")
}
