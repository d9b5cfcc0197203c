package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spendtrack/statement-extractor/internal/extract"
)

// parsetext runs the heuristic extractor over a saved OCR dump. Handy for
// checking what the line scanner makes of a statement without pointing a
// camera at anything.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage: parsetext <text-file>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	extractor := extract.NewHeuristicExtractor(logger)
	txns, err := extractor.Extract(context.Background(), string(raw))
	if err != nil {
		logger.Error("extract", "error", err)
		os.Exit(1)
	}

	for _, t := range txns {
		fmt.Printf("%-12s %-40s %12s\n", t.Date, t.Description, t.Amount.StringFixed(2))
	}
	fmt.Printf("%d transaction(s)\n", len(txns))
}
