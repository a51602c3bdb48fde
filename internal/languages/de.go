package languages

import (
	"golang.org/x/text/language"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

func german() *Table {
	t := &Table{
		ID:  "de",
		Tag: language.German,
		Units: []UnitWords{
			{Unit: domain.UnitYear, Words: []string{"Jahr", "Jahre", "Jahren"}},
			{Unit: domain.UnitMonth, Words: []string{"Monat", "Monate", "Monaten"}},
			{Unit: domain.UnitWeek, Words: []string{"Wochen", "Wochen"}},
			{Unit: domain.UnitDay, Words: []string{"Tag", "Tage", "Tagen"}},
		},
		NumberWords: []string{
			"null", "ein", "zwei", "drei", "vier", "fünf", "sechs", "sieben",
			"acht", "neun", "zehn", "elf", "zwölf", "dreizehn", "vierzehn",
			"fünfzehn", "sechszehn", "siebzehn", "achtzehn", "neunzehn", "zwanzig",
		},
		Months: [][]string{
			{"Januar", "Jan"},
			{"Februar", "Feb"},
			{"März", "Mär"},
			{"April", "Apr"},
			{"Mai"},
			{"Juni", "Jun"},
			{"Juli", "Jul"},
			{"August", "Aug"},
			{"September", "Sep", "Sept"},
			{"Oktober", "Okt"},
			{"November", "Nov"},
			{"Dezember", "Dez"},
		},
	}
	m := monthName(t.MonthNamePattern())

	t.Rules = []Rule{
		numericRule(day+`\.`+monthNum+`\.`+year4, "%d.%m.%Y", true,
			fx("Heute ist 03.10.1999", 10, 20)),
		numericRule(day+`\.`+monthNum+`\.`+year2, "%d.%m.%y", true,
			fx("Heute ist 03.10.99", 10, 18)),
		numericRule(day+`/`+monthNum+`/`+year4, "%d/%m/%Y", true,
			fx("Heute ist 03/10/1999", 10, 20)),
		numericRule(day+`/`+monthNum+`/`+year2, "%d/%m/%y", true,
			fx("Heute ist 03/10/99", 10, 18)),
		numericRule(day+`-`+monthNum+`-`+year2, "%d-%m-%y", true,
			fx("Heute ist 03-10-99", 10, 18)),
		numericRule(day+`-`+monthNum+`-`+year4, "%d-%m-%Y", true,
			fx("Heute ist 03-10-1999", 10, 20)),
		nameRule(day+`\.\s+`+m+`\s+`+year4, "%d. %b %Y",
			fx("Heute ist 03. Januar 1999", 10, 25),
			fx("Heute ist 03. Jan 1999", 10, 22)),
		nameRule(day+`\.\s+`+m+`\s+`+year2, "%d. %B %y",
			fx("Heute ist 03. Januar 99", 10, 23),
			fx("Heute ist 03. Jan 99", 10, 20)),
		nameRule(m+`\s+`+year4, "%B %Y",
			fx("Heute ist Januar 1999", 10, 21),
			fx("Heute ist Jan 1999", 10, 18)),
		nameRule(m+`\s+`+year2, "%B %y",
			fx("Heute ist Januar 99", 10, 19),
			fx("Heute ist Jan 99", 10, 16)),
	}
	return t
}
