package date

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// match is a byte range of the document text.
type match struct {
	start, end int
}

// findAll returns the leftmost non-overlapping matches of re in text.
//
// When notAfterDigit is set, a match starting right after an ASCII digit is
// discarded and the search resumes one character later, which gives the
// same result as a (?<![0-9]) lookbehind. A match followed by a digit is
// discarded and the search resumes after it.
func findAll(re *regexp.Regexp, text string, notAfterDigit bool) []match {
	var out []match

	for pos := 0; pos <= len(text); {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if end == start || (notAfterDigit && start > 0 && isASCIIDigit(text[start-1])) {
			pos = start + runeSize(text, start)
			continue
		}
		pos = end

		if next, _ := utf8.DecodeRuneInString(text[end:]); end < len(text) && unicode.IsDigit(next) {
			continue
		}
		out = append(out, match{start: start, end: end})
	}

	return out
}

func isASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// runeSize returns the byte size of the rune at i, or 1 at the end of text.
func runeSize(text string, i int) int {
	if i >= len(text) {
		return 1
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return size
}
