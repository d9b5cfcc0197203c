package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spendtrack/statement-extractor/internal/common"
)

// TextRecognizer converts an image reference into one block of recognized
// text. The extraction pipeline treats the output as opaque input; it does
// not care how recognition happened.
type TextRecognizer interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string

	PSM int // e.g., 6 is good for uniform block of text
}

// Extractor shells out to tesseract for recognition.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// WithRunner swaps the command runner; tests use this to stub tesseract.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Recognize runs tesseract on the image and returns its stdout as the raw
// statement text. Any exec failure is surfaced as an OCR failure.
func (e *Extractor) Recognize(ctx context.Context, imagePath string) (string, error) {
	start := time.Now()
	args := []string{imagePath, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}

	stdout, stderr, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		e.logger.Error("ocr.recognize_failed",
			"path", imagePath,
			"error", err,
			"stderr", truncate(string(stderr), 2<<10),
		)
		return "", fmt.Errorf("%w: tesseract: %v", common.ErrOCRFailure, err)
	}

	text := strings.TrimRight(string(stdout), "\n")
	e.logger.Info("ocr.recognize_ok",
		"path", imagePath,
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
