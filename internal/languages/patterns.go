package languages

// Capture groups shared by the date rules of every language.
const (
	day      = `([0-2]?\d|30|31)`
	monthNum = `(1[0-2]|0?\d)`
	year4    = `([12]\d{3})`
	year2    = `(\d{2})`
)

// monthName wraps a month alternation in a capture group.
func monthName(alternation string) string {
	return "(" + alternation + ")"
}

// numericRule builds a rule made of digits and separators only.
func numericRule(pattern, template string, notAfterDigit bool, fixtures ...Fixture) Rule {
	return Rule{
		Pattern:       pattern,
		Template:      template,
		NotAfterDigit: notAfterDigit,
		Fixtures:      fixtures,
	}
}

// nameRule builds a rule that contains a written month.
func nameRule(pattern, template string, fixtures ...Fixture) Rule {
	return Rule{
		Pattern:  pattern,
		Template: template,
		Fixtures: fixtures,
	}
}

func fx(text string, start, end int) Fixture {
	return Fixture{Text: text, Start: start, End: end}
}
