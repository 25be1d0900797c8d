package extract

import "strings"

// Normalize collapses all whitespace runs in store-extracted text down to
// single spaces and trims the result.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
