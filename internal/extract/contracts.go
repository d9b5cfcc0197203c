package extract

import (
	"context"

	"github.com/spendtrack/statement-extractor/internal/ledger"
)

// TransactionExtractor is the single contract both parsing strategies
// satisfy: raw statement text in, candidate transactions (or a typed
// failure) out. A nil error with an empty slice is a legitimate result -
// a statement with nothing recognizable is not an error.
type TransactionExtractor interface {
	Extract(ctx context.Context, rawText string) ([]ledger.Transaction, error)
}
