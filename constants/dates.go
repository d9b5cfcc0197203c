package constants

import "time"

// CanonicalDateLayout is the ledger's date representation: day and month
// without zero padding, four-digit year (e.g. "22/5/2025"). Both extraction
// strategies normalize to this layout so downstream display logic never has
// to care which strategy produced a transaction.
const CanonicalDateLayout = "2/1/2006"

// LongDateLayout matches statement date headers such as "Thursday 22 May 2025".
const LongDateLayout = "Monday 2 January 2006"

// ISODateLayout is the date format the remote model is instructed to emit.
const ISODateLayout = "2006-01-02"

// FormatCanonicalDate renders a time as the canonical ledger date string.
func FormatCanonicalDate(t time.Time) string {
	return t.Format(CanonicalDateLayout)
}
