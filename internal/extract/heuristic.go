package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/statement-extractor/constants"
	"github.com/spendtrack/statement-extractor/internal/ledger"
)

// Statement screenshots group transactions under long-form date headers
// ("Thursday 22 May 2025") with each entry as a description line followed by
// a signed amount line. The two patterns below drive the whole scan.
var (
	// weekday name, day number, month name, 4-digit year
	dateHeaderRe = regexp.MustCompile(
		`(?i)\b(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s+` +
			`(\d{1,2})\s+` +
			`(January|February|March|April|May|June|July|August|September|October|November|December)\s+` +
			`(\d{4})\b`)

	// explicit sign, optional currency glyph, exactly two fraction digits,
	// thousands separators allowed, optional trailing 3-letter currency code
	amountRe = regexp.MustCompile(
		`([+-])\s*[£$€]?\s*((?:\d{1,3}(?:,\d{3})+|\d+)\.\d{2})\b(?:\s*[A-Z]{3})?`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// HeuristicExtractor is the fully local, regex-driven parsing strategy.
// It never fails: lines it cannot confidently parse are silently skipped.
type HeuristicExtractor struct {
	logger *slog.Logger
}

func NewHeuristicExtractor(logger *slog.Logger) *HeuristicExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &HeuristicExtractor{logger: logger}
}

// Extract normalizes the raw text and scans it. The returned sequence follows
// the order of amount lines in the source text. Always returns a nil error;
// zero matches is an empty success.
func (e *HeuristicExtractor) Extract(_ context.Context, rawText string) ([]ledger.Transaction, error) {
	lines := NormalizeLines(rawText)
	txns := ParseLines(lines)
	e.logger.Info("heuristic.extract", "lines", len(lines), "transactions", len(txns))
	return txns, nil
}

// ParseLines is the pure scanning core: same lines in, same transactions out.
//
// A date header's date applies to every amount below it until the next
// header. Each amount resolves its description to the nearest preceding line
// that is at least 3 characters, contains a letter, and is neither a header
// nor an amount line. An amount with no resolvable date or description emits
// nothing.
func ParseLines(lines []string) []ledger.Transaction {
	headers := make([]struct {
		index int
		date  string
	}, 0, 4)
	for i, line := range lines {
		if date, ok := parseDateHeader(line); ok {
			headers = append(headers, struct {
				index int
				date  string
			}{i, date})
		}
	}

	dateForLine := func(i int) (string, bool) {
		for h := len(headers) - 1; h >= 0; h-- {
			if headers[h].index < i {
				return headers[h].date, true
			}
		}
		return "", false
	}

	var txns []ledger.Transaction
	for i, line := range lines {
		amount, ok := parseAmount(line)
		if !ok {
			continue
		}
		date, ok := dateForLine(i)
		if !ok {
			continue
		}
		desc, ok := descriptionBefore(lines, i)
		if !ok {
			continue
		}
		txns = append(txns, ledger.NewTransaction(date, desc, amount))
	}
	return txns
}

// parseDateHeader matches the long-form header and re-renders it to the
// canonical "D/M/YYYY" string.
func parseDateHeader(line string) (string, bool) {
	m := dateHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return "", false
	}
	month, ok := monthsByName[strings.ToLower(m[3])]
	if !ok {
		return "", false
	}
	year, err := strconv.Atoi(m[4])
	if err != nil {
		return "", false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// reject impossible day numbers that rolled over into the next month
	if t.Day() != day || t.Month() != month {
		return "", false
	}
	return constants.FormatCanonicalDate(t), true
}

// parseAmount extracts the signed magnitude from an amount line. The
// captured sign decides debit(-)/credit(+); thousands separators are
// stripped before parsing.
func parseAmount(line string) (decimal.Decimal, bool) {
	m := amountRe.FindStringSubmatch(line)
	if m == nil {
		return decimal.Decimal{}, false
	}
	magnitude, err := decimal.NewFromString(strings.ReplaceAll(m[2], ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	if m[1] == "-" {
		magnitude = magnitude.Neg()
	}
	return magnitude, true
}

// descriptionBefore walks backwards from index i and returns the first
// eligible description line. No eligible line before index 0 means the
// candidate is discarded.
func descriptionBefore(lines []string, i int) (string, bool) {
	for j := i - 1; j >= 0; j-- {
		line := lines[j]
		// minimum length is in runes, not bytes, or two accented
		// characters would slip through
		if utf8.RuneCountInString(line) < 3 || !containsLetter(line) {
			continue
		}
		if dateHeaderRe.MatchString(line) || amountRe.MatchString(line) {
			continue
		}
		return line, true
	}
	return "", false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
