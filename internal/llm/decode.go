package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/statement-extractor/constants"
	"github.com/spendtrack/statement-extractor/internal/common"
	"github.com/spendtrack/statement-extractor/internal/ledger"
)

// DecodeTransactions turns the model's reply content into ledger
// transactions. Decoding is all-or-nothing: one malformed element fails the
// whole array, and no partial list is ever returned. ISO dates are
// reformatted to the canonical "D/M/YYYY" so both extraction strategies feed
// the ledger the same representation.
func DecodeTransactions(content []byte) ([]ledger.Transaction, error) {
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return nil, common.WrapError(common.ErrSchemaFailure, "empty reply content")
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return nil, fmt.Errorf("%w: unmarshal reply: %v", common.ErrSchemaFailure, err)
	}
	if err := transactionArraySchema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: reply does not match schema: %v", common.ErrSchemaFailure, err)
	}

	var wire []WireTransaction
	if err := json.Unmarshal([]byte(trimmed), &wire); err != nil {
		return nil, fmt.Errorf("%w: unmarshal array: %v", common.ErrSchemaFailure, err)
	}

	txns := make([]ledger.Transaction, 0, len(wire))
	for i, w := range wire {
		t, err := time.Parse(constants.ISODateLayout, w.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: bad date %q", common.ErrSchemaFailure, i, w.Date)
		}
		txns = append(txns, ledger.NewTransaction(
			constants.FormatCanonicalDate(t),
			w.Description,
			decimal.NewFromFloat(w.Amount),
		))
	}
	return txns, nil
}
