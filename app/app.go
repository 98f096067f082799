// Package app wires repositories, pipeline components and services from the
// loaded configuration. Both the API server and the worker build the same
// container.
package app

import (
	"time"

	"photoscript/config"
	"photoscript/db"
	"photoscript/eventbus"
	"photoscript/keywords"
	"photoscript/logger"
	"photoscript/providers"
	"photoscript/ranker"
	"photoscript/repositories"
	"photoscript/retriever"
	"photoscript/services"
)

type Container struct {
	Projects   *services.ProjectService
	Segments   *services.SegmentService
	Assets     *services.AssetService
	QAVersions *services.QAVersionService
	QAJobs     *services.QAJobService
	TextGen    *services.TextGenService

	Bus     eventbus.EventBus
	LogSink *logger.RingSink
}

// Build assembles the service container. db.Init must have run already.
func Build() *Container {
	cfg := config.GetConfig()
	database := db.Database()

	projectRepo := repositories.NewProjectRepository(database)
	segmentRepo := repositories.NewSegmentRepository(database)
	assetRepo := repositories.NewAssetRepository(database)
	linkRepo := repositories.NewSegmentAssetRepository(database)
	versionRepo := repositories.NewQAVersionRepository(database)
	jobRepo := repositories.NewQAJobRepository(database)

	assetSvc := services.NewAssetService(assetRepo, linkRepo, segmentRepo)
	segmentSvc := services.NewSegmentService(segmentRepo, linkRepo, projectRepo)

	extractor, fallback := buildExtractors(cfg)
	ret := retriever.New(buildProviders(cfg), retriever.Options{
		MaxCandidates: cfg.Retriever.MaxCandidates,
		Timeout:       time.Duration(cfg.Retriever.ProviderTimeoutSeconds) * time.Second,
		VideoPriority: cfg.Retriever.VideoPriority,
	})
	rank := ranker.New(ret.Providers(), nil)

	projectSvc := services.NewProjectService(services.ProjectServiceDeps{
		Projects:         projectRepo,
		Segments:         segmentRepo,
		Links:            linkRepo,
		Versions:         versionRepo,
		Jobs:             jobRepo,
		AssetSvc:         assetSvc,
		Extractor:        extractor,
		Fallback:         fallback,
		Retriever:        ret,
		Ranker:           rank,
		MaxSegmentLength: cfg.Segmenter.MaxSegmentLength,
		MaxKeywords:      cfg.Keywords.MaxKeywords,
	})

	qaSvc := services.NewQAService(config.GeminiAPIKey(), cfg.Gemini.Model, cfg.QA.GuidelineFile)
	versionSvc := services.NewQAVersionService(versionRepo, projectRepo)
	bus := buildBus(cfg)
	jobSvc := services.NewQAJobService(jobRepo, projectRepo, segmentRepo, qaSvc, versionSvc, bus)

	textGenSvc := services.NewTextGenService(segmentRepo, config.GeminiAPIKey(), cfg.Gemini.Model,
		cfg.Webpage.UseHeadless, cfg.Webpage.ChromePath)

	sink := logger.NewRingSink(512)
	sink.Attach()

	return &Container{
		Projects:   projectSvc,
		Segments:   segmentSvc,
		Assets:     assetSvc,
		QAVersions: versionSvc,
		QAJobs:     jobSvc,
		TextGen:    textGenSvc,
		Bus:        bus,
		LogSink:    sink,
	}
}

// buildExtractors returns the configured keyword strategy plus the lexical
// fallback. Both are memoized so a strategy stays deterministic per text.
func buildExtractors(cfg config.AppConfig) (keywords.Extractor, keywords.Extractor) {
	lexical := keywords.NewCached(keywords.NewLexical())
	if cfg.Keywords.Strategy == "gemini" && config.GeminiAPIKey() != "" {
		return keywords.NewCached(keywords.NewGemini(config.GeminiAPIKey(), cfg.Gemini.Model)), lexical
	}
	return lexical, nil
}

func buildProviders(cfg config.AppConfig) []providers.Provider {
	var ps []providers.Provider
	for _, name := range cfg.Retriever.Providers {
		switch name {
		case "pexels":
			ps = append(ps, providers.NewPexels(config.PexelsAPIKey()))
		case "pixabay":
			ps = append(ps, providers.NewPixabay(config.PixabayAPIKey()))
		default:
			logger.Log.Warnf("unknown provider %q in config, skipping", name)
		}
	}
	return ps
}

// buildBus selects Kafka when brokers are configured, in-process otherwise.
func buildBus(cfg config.AppConfig) eventbus.EventBus {
	if cfg.Kafka.Brokers == "" {
		logger.Log.Info("kafka brokers not configured, using in-process event bus")
		return eventbus.NewInProcEventBus()
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
	if err != nil {
		logger.Log.Errorf("kafka init failed, falling back to in-process bus: %v", err)
		return eventbus.NewInProcEventBus()
	}
	for _, topic := range eventbus.AllTopics {
		if err := eventbus.EnsureTopics(cfg.Kafka.Brokers, topic, 3); err != nil {
			logger.Log.Warnf("topic ensure failed for %s: %v", topic.Base(), err)
		}
	}
	return bus
}
