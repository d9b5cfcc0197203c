package llm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack/statement-extractor/internal/common"
)

func TestDecodeTransactions(t *testing.T) {
	content := `[{"date":"2025-05-22","description":"Coffee Shop","amount":-4.5}]`

	txns, err := DecodeTransactions([]byte(content))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	// canonical date matches the heuristic extractor's format
	assert.Equal(t, "22/5/2025", txns[0].Date)
	assert.Equal(t, "Coffee Shop", txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("-4.5")))
}

func TestDecodeTransactionsRoundTrip(t *testing.T) {
	content := `[
		{"date":"2025-05-22","description":"Coffee Shop","amount":-4.5},
		{"date":"2025-05-23","description":"Salary","amount":2500},
		{"date":"2025-06-01","description":"Refund","amount":12.34}
	]`

	txns, err := DecodeTransactions([]byte(content))
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "23/5/2025", txns[1].Date)
	assert.Equal(t, "1/6/2025", txns[2].Date)
}

func TestDecodeTransactionsEmptyArray(t *testing.T) {
	txns, err := DecodeTransactions([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestDecodeTransactionsIgnoresExtraFields(t *testing.T) {
	content := `[{"date":"2025-05-22","description":"Coffee Shop","amount":-4.5,"currency":"GBP","confidence":0.9}]`

	txns, err := DecodeTransactions([]byte(content))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Coffee Shop", txns[0].Description)
}

func TestDecodeTransactionsAllOrNothing(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"one element missing amount", `[{"date":"2025-05-22","description":"ok","amount":-4.5},{"date":"2025-05-23","description":"broken"}]`},
		{"mistyped amount", `[{"date":"2025-05-22","description":"ok","amount":"-4.50"}]`},
		{"mistyped date", `[{"date":20250522,"description":"ok","amount":-4.5}]`},
		{"non-iso date", `[{"date":"22/05/2025","description":"ok","amount":-4.5}]`},
		{"impossible calendar date", `[{"date":"2025-13-40","description":"ok","amount":-4.5}]`},
		{"object instead of array", `{"date":"2025-05-22","description":"ok","amount":-4.5}`},
		{"malformed json", `[{"date":"2025-05-22",`},
		{"markdown fenced reply", "```json\n[]\n```"},
		{"empty content", ``},
		{"commentary around array", `Here you go: [] hope that helps`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, err := DecodeTransactions([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrSchemaFailure)
			assert.Nil(t, txns, "no partial list on failure")
		})
	}
}
