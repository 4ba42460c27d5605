package instruction

import (
	"strings"
	"unicode"
)

// Tokenize normalizes an instruction's whitespace and splits it into ordered
// tokens. Separators are the BOM and every Unicode whitespace rune except
// next line (U+0085); empty tokens are discarded.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

func isSeparator(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}
