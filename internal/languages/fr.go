package languages

import (
	"golang.org/x/text/language"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

func french() *Table {
	t := &Table{
		ID:  "fr",
		Tag: language.French,
		Units: []UnitWords{
			{Unit: domain.UnitYear, Words: []string{"an", "ans", "années"}},
			{Unit: domain.UnitMonth, Words: []string{"mois"}},
			{Unit: domain.UnitWeek, Words: []string{"semaine", "semaines"}},
			{Unit: domain.UnitDay, Words: []string{"jour", "jours"}},
		},
		NumberWords: []string{
			"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept",
			"huit", "neuf", "dix", "onze", "douze", "treize", "quatorze",
			"quinze", "seize", "dix-sept", "dix-huit", "dix-neuf", "vingt",
		},
		Months: [][]string{
			{"janvier", "jan"},
			{"février", "fév"},
			{"mars", "mar"},
			{"avril", "avr"},
			{"mai"},
			{"juin"},
			{"juillet"},
			{"août"},
			{"septembre", "sep", "sept"},
			{"octobre", "oct"},
			{"novembre", "nov"},
			{"décembre", "déc"},
		},
	}
	m := monthName(t.MonthNamePattern())

	t.Rules = []Rule{
		numericRule(day+`\.`+monthNum+`\.`+year4, "%d.%m.%Y", true,
			fx("Nous sommes le 03.10.1990", 15, 25)),
		numericRule(day+`\.`+monthNum+`\.`+year2, "%d.%m.%y", true,
			fx("Nous sommes le 03.10.99", 15, 23)),
		numericRule(day+`/`+monthNum+`/`+year4, "%d/%m/%Y", true,
			fx("Nous sommes le 03/10/1999", 15, 25)),
		numericRule(day+`/`+monthNum+`/`+year2, "%d/%m/%y", true,
			fx("Nous sommes le 03/10/99", 15, 23)),
		numericRule(day+`-`+monthNum+`-`+year2, "%d-%m-%y", true,
			fx("Nous sommes le 03-10-99", 15, 23)),
		numericRule(day+`-`+monthNum+`-`+year4, "%d-%m-%Y", true,
			fx("Nous sommes le 03-10-1999", 15, 25)),
		nameRule(day+`\s+`+m+`\s+`+year4, "%d %b %Y",
			fx("Nous sommes le 03 janvier 1999", 15, 30),
			fx("Nous sommes le 03 jan 1999", 15, 26),
			fx("Nous sommes le 10 mai 2021 semaines", 15, 26)),
		nameRule(day+`\s+`+m+`\s+`+year2, "%d %B %y",
			fx("Nous sommes le 03 janvier 99", 15, 28),
			fx("Nous sommes le 03 jan 99", 15, 24)),
		nameRule(m+`\s+`+year4, "%B %Y",
			fx("Nous sommes en janvier 1999", 15, 27),
			fx("Nous sommes en jan 1999", 15, 23)),
		nameRule(m+`\s+`+year2, "%B %y",
			fx("Nous sommes en janvier 99", 15, 25),
			fx("Nous sommes en jan 99", 15, 21)),
	}
	return t
}
