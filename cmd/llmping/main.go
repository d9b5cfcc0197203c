package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/spendtrack/statement-extractor/internal/common"
	"github.com/spendtrack/statement-extractor/internal/llm/openai"
)

// llmping sends a trivial chat message to confirm the API key and endpoint
// are usable before any real extraction.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.ValidateForLLM(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(2)
	}

	client := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	reply, err := client.Ping(ctx)
	if err != nil {
		logger.Error("ping", "error", err)
		os.Exit(1)
	}
	fmt.Println(reply)
}
