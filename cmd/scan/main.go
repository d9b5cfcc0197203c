package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/spendtrack/statement-extractor/internal/common"
	"github.com/spendtrack/statement-extractor/internal/coordinator"
	"github.com/spendtrack/statement-extractor/internal/export"
	"github.com/spendtrack/statement-extractor/internal/extract"
	"github.com/spendtrack/statement-extractor/internal/ledger"
	"github.com/spendtrack/statement-extractor/internal/llm/openai"
	"github.com/spendtrack/statement-extractor/internal/ocr"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	strategy := flag.String("strategy", "heuristic", "extraction strategy: heuristic or llm")
	out := flag.String("o", "", "optional path to write the result as an XLSX workbook")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage: scan [-strategy heuristic|llm] [-o out.xlsx] <image-path>")
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	recognizer := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	var extractor extract.TransactionExtractor
	switch *strategy {
	case "heuristic":
		extractor = extract.NewHeuristicExtractor(logger)
	case "llm":
		if err := cfg.ValidateForLLM(); err != nil {
			logger.Error("config", "error", err)
			os.Exit(2)
		}
		extractor = openai.NewClient(openai.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		}, logger)
	default:
		logger.Error("unknown strategy", "strategy", *strategy)
		os.Exit(2)
	}

	store := ledger.New(logger)
	coord := coordinator.New(recognizer, extractor, store, logger)

	unsubscribe := coord.Subscribe(func(st coordinator.Status) {
		if st.Reason != "" {
			logger.Info("status", "state", st.State.String(), "reason", st.Reason)
		} else {
			logger.Info("status", "state", st.State.String())
		}
	})
	defer unsubscribe()

	if err := coord.Submit(context.Background(), imagePath); err != nil {
		logger.Error("submit", "error", err)
		os.Exit(1)
	}
	coord.Wait()

	snapshot := store.Snapshot()
	for _, t := range snapshot {
		fmt.Printf("%-12s %-40s %12s\n", t.Date, t.Description, t.Amount.StringFixed(2))
	}
	fmt.Printf("%d transaction(s)\n", len(snapshot))

	if *out != "" {
		svc := export.NewService(logger)
		b, err := svc.TransactionsXLSX(snapshot)
		if err != nil {
			logger.Error("export", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, b, 0o644); err != nil {
			logger.Error("write workbook", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "path", *out, "bytes", len(b))
	}
}
