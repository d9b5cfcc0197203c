package llm

// WireTransaction is the shape the model is locked to: one element of the
// bare JSON array it must return. Unknown extra fields on an element are
// ignored; a missing or mistyped field fails the whole decode.
type WireTransaction struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // signed; negative = debit
}
