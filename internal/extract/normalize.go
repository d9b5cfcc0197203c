package extract

import (
	"strings"

	"github.com/spendtrack/statement-extractor/constants"
)

// NormalizeLines splits raw OCR text into trimmed lines and truncates the
// sequence at the first line starting with a UI-chrome keyword. Statement
// screenshots usually carry bottom navigation labels after the transaction
// list; cutting there keeps chrome text from ever matching as an amount or
// description. Empty input yields an empty sequence.
func NormalizeLines(raw string) []string {
	if raw == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if constants.IsChromeLine(trimmed) {
			break
		}
		lines = append(lines, trimmed)
	}
	return lines
}
