package main

import (
	"os"

	"tourism-dashboard/config"
	"tourism-dashboard/server"
	"tourism-dashboard/services"
	"tourism-dashboard/storage"
	"tourism-dashboard/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Debug)

	logger.Info("=== Tourism Sentiment Dashboard starting ===")
	logger.Info("Config — source: %s | top-N: %d | top words: %d | addr: %s",
		cfg.ReviewSource, cfg.TopN, cfg.TopWords, cfg.HTTPAddr)

	source, err := openSource(cfg, logger)
	if err != nil {
		logger.Error("Failed to open review source: %v", err)
		os.Exit(1)
	}

	raw, err := source.Load()
	_ = source.Close()
	if err != nil {
		logger.Error("Data load failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d raw review rows", len(raw))

	cleaner := services.NewCleaner(logger)
	reviews := cleaner.Clean(raw)
	if len(reviews) == 0 {
		logger.Warn("Dataset is empty — dashboard will render empty views")
	}

	insights := services.NewInsightService(logger, cfg.TopN, cfg.TopWords)
	report := insights.Generate(reviews, services.AllFilter(reviews))
	insights.Print(report)

	srv, err := server.New(logger, reviews, insights)
	if err != nil {
		logger.Error("Failed to build server: %v", err)
		os.Exit(1)
	}
	if err := srv.ListenAndServe(cfg.HTTPAddr); err != nil {
		logger.Error("HTTP server stopped: %v", err)
		os.Exit(1)
	}
}

func openSource(cfg *config.Config, logger *utils.Logger) (storage.ReviewSource, error) {
	if cfg.ReviewSource == "postgres" {
		return storage.NewPostgresReader(cfg.DSN(), logger)
	}
	return storage.NewCSVReader(cfg.CSVPath, logger), nil
}
