package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction is one accepted statement entry. Date uses the canonical
// "D/M/YYYY" rendering, Amount is signed: negative for debits, positive for
// credits. Values are never mutated after construction; the ledger replaces
// entries rather than editing them.
type Transaction struct {
	Date        string
	Description string
	Amount      decimal.Decimal
}

// NewTransaction builds a transaction from already-normalized parts.
func NewTransaction(date, description string, amount decimal.Decimal) Transaction {
	return Transaction{Date: date, Description: description, Amount: amount}
}

// Equals reports structural equality across all three fields. Amounts compare
// by numeric value, so 4.5 and 4.50 are the same transaction amount.
func (t Transaction) Equals(other Transaction) bool {
	return t.Date == other.Date &&
		t.Description == other.Description &&
		t.Amount.Equal(other.Amount)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %q %s", t.Date, t.Description, t.Amount.StringFixed(2))
}
