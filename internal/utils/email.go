package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

var emailFolder = cases.Fold()

// NormalizeEmail trims and case-folds an e-mail so lookups ignore
// surrounding whitespace and letter case.
func NormalizeEmail(email string) string {
	return emailFolder.String(strings.TrimSpace(email))
}

// SameEmail compares two e-mails after normalization.
func SameEmail(a, b string) bool {
	na := NormalizeEmail(a)
	return na != "" && na == NormalizeEmail(b)
}
