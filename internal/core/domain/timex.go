package domain

import (
	"fmt"
	"strings"
)

const timex3Prefix = "TIMEX3 "

// TIMEX3 types emitted by the recognizers.
const (
	Timex3Date     = "DATE"
	Timex3Duration = "DURATION"
)

// FormatTIMEX3 renders a TIMEX3 descriptor, e.g. TIMEX3 type="DATE" value="1999-10-03T00:00:00".
func FormatTIMEX3(typ, value string) string {
	return fmt.Sprintf(`TIMEX3 type="%s" value="%s"`, typ, value)
}

// ParseTIMEX3 splits a TIMEX3 descriptor into its attributes.
func ParseTIMEX3(s string) (map[string]string, error) {
	if !strings.HasPrefix(s, timex3Prefix) {
		return nil, fmt.Errorf("%w: not a TIMEX3 value: %q", ErrInvalidInput, s)
	}

	attrs := make(map[string]string)
	body := strings.ReplaceAll(s[len(timex3Prefix):], `"`, "")
	for _, field := range strings.Fields(body) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("%w: malformed TIMEX3 attribute %q", ErrInvalidInput, field)
		}
		attrs[key] = value
	}
	return attrs, nil
}
