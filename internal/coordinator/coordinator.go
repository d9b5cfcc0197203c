package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/statement-extractor/internal/common"
	"github.com/spendtrack/statement-extractor/internal/extract"
	"github.com/spendtrack/statement-extractor/internal/ledger"
	"github.com/spendtrack/statement-extractor/internal/ocr"
)

// Coordinator owns the processing state machine for statement extraction.
// One submission runs at a time: a Submit while another is processing is
// rejected outright rather than queued, matching a UI that disables its
// trigger while the spinner shows.
//
// On success the extractor's transactions are appended to the ledger in the
// order produced, as one atomic append. On failure the ledger is untouched
// and the typed reason is published through the status stream. Either way
// the state settles back to Idle.
type Coordinator struct {
	recognizer ocr.TextRecognizer
	extractor  extract.TransactionExtractor
	store      *ledger.Ledger
	logger     *slog.Logger

	mu        sync.Mutex
	inFlight  bool
	observers map[int]func(Status)
	nextObsID int

	wg sync.WaitGroup
}

// New wires a coordinator with its collaborators. The extractor is the
// strategy chosen by configuration; the coordinator never picks one itself.
func New(recognizer ocr.TextRecognizer, extractor extract.TransactionExtractor, store *ledger.Ledger, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		recognizer: recognizer,
		extractor:  extractor,
		store:      store,
		logger:     logger,
		observers:  make(map[int]func(Status)),
	}
}

// Submit starts one extraction attempt for the image and returns
// immediately. It fails fast with ErrExtractionInFlight while a previous
// attempt is still processing.
func (c *Coordinator) Submit(ctx context.Context, imagePath string) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		c.logger.Warn("coordinator.submit_rejected", "path", imagePath)
		return common.ErrExtractionInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	c.publish(Status{State: StateProcessing})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx, imagePath)
	}()
	return nil
}

// Wait blocks until every submitted attempt has settled. CLIs and tests use
// it; UI callers just watch the status stream.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Subscribe registers fn for every status transition and returns an
// unsubscribe function. The stream delivers each attempt's result exactly
// once (as a Succeeded or Failed status) before settling back to Idle.
func (c *Coordinator) Subscribe(fn func(Status)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextObsID
	c.nextObsID++
	c.observers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

func (c *Coordinator) run(ctx context.Context, imagePath string) {
	rid := uuid.New().String()
	ctx = common.WithRequestID(ctx, rid)
	start := time.Now()

	c.logger.Info("coordinator.extract.start", "req_id", rid, "path", imagePath)

	text, err := c.recognizer.Recognize(ctx, imagePath)
	if err != nil {
		c.settle(Status{State: StateFailed, Reason: common.FailureReason(err)}, rid, start, err)
		return
	}

	txns, err := c.extractor.Extract(ctx, text)
	if err != nil {
		c.settle(Status{State: StateFailed, Reason: common.FailureReason(err)}, rid, start, err)
		return
	}

	// All-at-once: a successful attempt lands every transaction in one
	// append; a failed one never touches the ledger.
	c.store.Append(txns)
	c.logger.Info("coordinator.extract.ok",
		"req_id", rid,
		"transactions", len(txns),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	c.settle(Status{State: StateSucceeded}, rid, start, nil)
}

// settle publishes the terminal status and the follow-up Idle status, then
// releases the in-flight slot. The slot is held until both statuses are out
// so a Submit issued from inside an observer callback is still rejected:
// otherwise its Processing status would land between this attempt's terminal
// and Idle signals and the stream would end on Idle while the new attempt
// runs.
func (c *Coordinator) settle(terminal Status, rid string, start time.Time, err error) {
	if err != nil {
		c.logger.Error("coordinator.extract.failed",
			"req_id", rid,
			"reason", terminal.Reason,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
	c.publish(terminal)
	c.publish(Status{State: StateIdle})
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}

func (c *Coordinator) publish(st Status) {
	c.mu.Lock()
	obs := make([]func(Status), 0, len(c.observers))
	for _, fn := range c.observers {
		obs = append(obs, fn)
	}
	c.mu.Unlock()
	for _, fn := range obs {
		fn(st)
	}
}
