package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"photoscript/api/router"
	"photoscript/app"
	"photoscript/config"
	"photoscript/db"
	_ "photoscript/docs" // swag will generate this package
	"photoscript/eventbus"
	"photoscript/logger"
)

// @title           PhotoScript API
// @version         1.0
// @description     Script segmentation, asset matching and QA versioning API
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	container := app.Build()
	defer container.Bus.Close()

	r := router.New(container)

	// In-process bus has no separate worker; consume QA jobs here.
	if cfg.Kafka.Brokers == "" {
		go func() {
			if err := container.Bus.Subscribe(context.Background(), cfg.Kafka.GroupID,
				eventbus.TopicQAJobs, container.QAJobs.HandleEvent); err != nil {
				logger.Log.Errorf("qa job consumer stopped: %v", err)
			}
		}()
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}).Handler(r)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	logger.Log.Infof("api listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
