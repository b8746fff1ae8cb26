package main

import (
	"github.com/sirupsen/logrus"

	"product-approval-ai/backend/internal/ai"
	"product-approval-ai/backend/internal/api"
	"product-approval-ai/backend/internal/config"
)

func main() {
	cfg := config.Load()

	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	server, err := api.NewServer(api.Config{
		AIConfig: ai.Config{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.OpenAIModel,
			BaseURL:     cfg.OpenAIBaseURL,
			Temperature: cfg.OpenAITemperature,
			MaxTokens:   cfg.OpenAIMaxTokens,
			Timeout:     cfg.OpenAITimeout,
			Structured:  cfg.StructuredOutput,
		},
		UseMockAI:        cfg.UseMockAI,
		MaxContentLength: cfg.MaxContentLength,
		ReviewTermsPath:  cfg.ReviewTermsPath,
		AllowedOrigins:   cfg.AllowedOrigins,
	})
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router := server.Router()

	logrus.WithFields(logrus.Fields{
		"model":     cfg.OpenAIModel,
		"mock_mode": cfg.UseMockAI,
		"debug":     cfg.Debug,
	}).Infof("starting product approval backend on :%s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
