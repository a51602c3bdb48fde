package date

import (
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/custodia-labs/timexy/internal/languages"
)

// isoLayout renders dates the way TIMEX3 values expect them.
const isoLayout = "%Y-%m-%dT%H:%M:%S"

var monthPlaceholders = strings.NewReplacer("%b", "%m", "%B", "%m")

// ReplaceMonthName substitutes the first month name found in text with its
// month number and rewrites the template's %b and %B to %m. The search is
// case-insensitive and tries longer variants first, so "January" is never
// cut down to "Jan" + "uary". Templates without a month name placeholder
// are returned unchanged. The returned text is lower-cased.
func ReplaceMonthName(table *languages.Table, text, template string) (string, string) {
	if !languages.HasMonthName(template) {
		return text, template
	}

	lower := table.Lower(text)
	for _, m := range table.MonthNamesByLength() {
		name := table.Lower(m.Name)
		if strings.Contains(lower, name) {
			return strings.ReplaceAll(lower, name, strconv.Itoa(m.Index)), monthPlaceholders.Replace(template)
		}
	}
	return text, template
}

// Parse converts matched text to a date using a strptime template.
// Runs of whitespace in text are treated as a single space.
func Parse(table *languages.Table, text, template string) (time.Time, error) {
	text, template = ReplaceMonthName(table, text, template)
	text = strings.Join(strings.Fields(text), " ")
	return strftime.Parse(template, text)
}

// ISO formats a date as an ISO-8601 datetime without fractional seconds.
func ISO(t time.Time) string {
	return strftime.Format(isoLayout, t)
}

// Timestamp formats a date as Unix seconds with one decimal place. Dates
// carry no zone and are read as UTC.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10) + ".0"
}
