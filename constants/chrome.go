package constants

import "strings"

// ChromeKeywords are banking-app navigation and footer labels that show up in
// statement screenshots after the transaction list. Line scanning stops at the
// first line that starts with one of these.
var ChromeKeywords = []string{
	"Accounts",
	"Transfer & pay",
	"Cards",
	"More",
	"Move Money",
	"Support",
}

// IsChromeLine reports whether the line begins with a known UI-chrome keyword.
func IsChromeLine(line string) bool {
	for _, kw := range ChromeKeywords {
		if strings.HasPrefix(line, kw) {
			return true
		}
	}
	return false
}
