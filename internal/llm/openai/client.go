package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/statement-extractor/internal/common"
	"github.com/spendtrack/statement-extractor/internal/ledger"
	"github.com/spendtrack/statement-extractor/internal/llm"
)

// Extract implements extract.TransactionExtractor by delegating
// interpretation of the raw OCR text to a chat-completion call. A single
// attempt: transport or schema trouble is surfaced as a typed failure, never
// retried and never partially decoded.
func (c *Client) Extract(ctx context.Context, rawText string) ([]ledger.Transaction, error) {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)
	}
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(rawText),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"messages":    llm.BuildMessages(rawText),
		"temperature": 0,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, c.authHeaders(), c.logger)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	content, err := replyContent(raw)
	if err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	txns, err := llm.DecodeTransactions([]byte(content))
	if err != nil {
		c.logger.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"transactions", len(txns),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return txns, nil
}

// Ping sends a trivial chat message and returns the assistant's reply.
// Useful to confirm key and endpoint before pointing a camera at anything.
func (c *Client) Ping(ctx context.Context) (string, error) {
	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []llm.Message{
			{Role: "system", Content: "You are a helpful assistant."},
			{Role: "user", Content: "Hello!"},
		},
		"temperature": 0.7,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, c.authHeaders(), c.logger)
	if err != nil {
		return "", err
	}
	return replyContent(raw)
}

// replyContent pulls choices[0].message.content out of the completion
// envelope. An unreadable envelope counts as a schema failure.
func replyContent(raw []byte) (string, error) {
	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("%w: decode completion envelope: %v", common.ErrSchemaFailure, err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in completion", common.ErrSchemaFailure)
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
}
