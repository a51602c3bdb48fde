package languages

import (
	"golang.org/x/text/language"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

func english() *Table {
	t := &Table{
		ID:  "en",
		Tag: language.English,
		Units: []UnitWords{
			{Unit: domain.UnitYear, Words: []string{"year", "years"}},
			{Unit: domain.UnitMonth, Words: []string{"month", "months"}},
			{Unit: domain.UnitWeek, Words: []string{"week", "weeks"}},
			{Unit: domain.UnitDay, Words: []string{"day", "days"}},
		},
		NumberWords: []string{
			"zero", "one", "two", "three", "four", "five", "six", "seven",
			"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
			"fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
		},
		Months: [][]string{
			{"January", "Jan"},
			{"February", "Feb"},
			{"March", "Mar"},
			{"April", "Apr"},
			{"May"},
			{"June", "Jun"},
			{"July", "Jul"},
			{"August", "Aug"},
			{"September", "Sep"},
			{"October", "Oct"},
			{"November", "Nov"},
			{"December", "Dec"},
		},
	}
	m := monthName(t.MonthNamePattern())

	t.Rules = []Rule{
		numericRule(day+`\.`+monthNum+`\.`+year4, "%d.%m.%Y", true,
			fx("Today is 03.10.1999", 9, 19)),
		numericRule(day+`\.`+monthNum+`\.`+year2, "%d.%m.%y", true,
			fx("Today is 03.10.99", 9, 17),
			fx("Today is 3.10.99", 9, 16)),
		numericRule(day+`/`+monthNum+`/`+year4, "%d/%m/%Y", false,
			fx("Today is 03/10/1999", 9, 19),
			fx("Today is 3/10/1999", 9, 18)),
		numericRule(day+`/`+monthNum+`/`+year2, "%d/%m/%y", true,
			fx("Today is 03/10/99", 9, 17),
			fx("Today is 3/10/99", 9, 16)),
		nameRule(day+`/`+m+`/`+year2, "%d/%b/%y",
			fx("Today is 03/Feb/99", 9, 18),
			fx("Today is 3/Feb/99", 9, 17)),
		nameRule(day+`/`+m+`/`+year4, "%d/%b/%Y",
			fx("Today is 03/Feb/1999", 9, 20),
			fx("Today is 3/Feb/1999", 9, 19)),
		numericRule(year4+`/`+monthNum+`/`+day, "%Y/%m/%d", true,
			fx("Today is 1999/10/03", 9, 19),
			fx("Today is 1999/10/3", 9, 18)),
		numericRule(day+`-`+monthNum+`-`+year4, "%d-%m-%Y", true,
			fx("Today is 03-10-1999", 9, 19),
			fx("Today is 3-10-1999", 9, 18)),
		numericRule(day+`-`+monthNum+`-`+year2, "%d-%m-%y", true,
			fx("Today is 03-10-99", 9, 17),
			fx("Today is 3-10-99", 9, 16)),
		nameRule(day+`-`+m+`-`+year2, "%d-%b-%y",
			fx("Today is 03-Feb-99", 9, 18),
			fx("Today is 3-Feb-99", 9, 17),
			fx("Today is 3-FEB-99", 9, 17)),
		nameRule(day+`-`+m+`-`+year4, "%d-%b-%Y",
			fx("Today is 03-Feb-1999", 9, 20),
			fx("Today is 3-Feb-1999", 9, 19),
			fx("Today is 3-FEB-1999", 9, 19)),
		nameRule(year4+`-`+m+`-`+day, "%Y-%b-%d",
			fx("Today is 2018-Jun-04", 9, 20),
			fx("Today is 2018-JUN-04", 9, 20),
			fx("Today is 2018-Jun-4", 9, 19)),
		numericRule(year4+`-`+monthNum+`-`+day, "%Y-%m-%d", true,
			fx("Today is 1999-10-03", 9, 19),
			fx("Today is 1999-10-3", 9, 18)),
		nameRule(day+`\.\s+`+m+`\s+`+year4, "%d. %B %Y",
			fx("Today is 03. January 1999", 9, 25),
			fx("Today is 3. January 1999", 9, 24),
			fx("Today is 3. JANUARY 1999", 9, 24),
			fx("Today is 03. Jan 1999", 9, 21),
			fx("Today is 3. Jan 1999", 9, 20),
			fx("Today is 3. JAN 1999", 9, 20)),
		nameRule(day+`\.\s+`+m+`\s+`+year2, "%d. %B %y",
			fx("Today is 03. January 99", 9, 23),
			fx("Today is 3. January 99", 9, 22),
			fx("Today is 3. JANUARY 99", 9, 22),
			fx("Today is 03. Jan 99", 9, 19),
			fx("Today is 3. Jan 99", 9, 18),
			fx("Today is 3. JAN 99", 9, 18)),
		nameRule(day+`\s+`+m+`\s+`+year4, "%d %b %Y",
			fx("Today is 03 Jan 1999", 9, 20),
			fx("Today is 3 Jan 1999", 9, 19),
			fx("Today is 3 JAN 1999", 9, 19),
			fx("Today is 03 January 1999", 9, 24),
			fx("Today is 3 January 1999", 9, 23),
			fx("Today is 3 JANUARY 1999", 9, 23)),
		nameRule(day+`\s+`+m+`\s+`+year2, "%d %b %y",
			fx("Today is 03 Jan 99", 9, 18),
			fx("Today is 3 Jan 99", 9, 17),
			fx("Today is 3 JAN 99", 9, 17),
			fx("Today is 03 January 99", 9, 22),
			fx("Today is 3 January 99", 9, 21),
			fx("Today is 3 JANUARY 99", 9, 21)),
		nameRule(m+`\s+`+year4, "%B %Y",
			fx("Today is January 1999", 9, 21),
			fx("Today is JANUARY 1999", 9, 21),
			fx("Today is Jan 1999", 9, 17),
			fx("Today is JAN 1999", 9, 17)),
		nameRule(m+`\s+`+year2, "%B %y",
			fx("Today is January 99", 9, 19),
			fx("Today is JANUARY 99", 9, 19),
			fx("Today is Jan 99", 9, 15),
			fx("Today is JAN 99", 9, 15)),
		nameRule(m+`\s`+day+`,\s+`+year4, "%b %d, %Y",
			fx("Today is Jan 03, 1999", 9, 21),
			fx("Today is JAN 03, 1999", 9, 21),
			fx("Today is January 03, 1999", 9, 25),
			fx("Today is JANUARY 03, 1999", 9, 25)),
		nameRule(m+`\s`+day+`\s+`+year4, "%b %d %Y",
			fx("Today is Jan 03 1999", 9, 20),
			fx("Today is JAN 03 1999", 9, 20),
			fx("Today is January 03 1999", 9, 24),
			fx("Today is JANUARY 03 1999", 9, 24)),
	}
	return t
}
