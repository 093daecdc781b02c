package actions

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var datePhraseRe = regexp.MustCompile(
	`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` +
		`|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}` +
		`|` +
		`today|tomorrow|yesterday` +
		`|` +
		`in\s+\d{1,3}\s+(?:days?|weeks?)` +
		`|` +
		`(?:next|last|this)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
		`)\b`,
)

var monthDayYearRe = regexp.MustCompile(`^([a-z]+) (\d{1,2}) (\d{4})$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// resolveDatePhrase finds the first date phrase in text and resolves it to a
// calendar day in loc. Relative phrases are anchored on ref.
func resolveDatePhrase(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := datePhraseRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	phrase := strings.Join(strings.Fields(strings.ToLower(m[1])), " ")
	if day, ok := resolveRelativePhrase(phrase, startOfDay(ref.In(loc))); ok {
		return day, true
	}

	phrase = monthDayYearRe.ReplaceAllString(phrase, "$1 $2, $3")
	t, err := dateparse.ParseIn(phrase, loc)
	if err != nil {
		return time.Time{}, false
	}
	return startOfDay(t), true
}

func resolveRelativePhrase(phrase string, today time.Time) (time.Time, bool) {
	switch phrase {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	}

	fields := strings.Fields(phrase)
	if len(fields) == 3 && fields[0] == "in" {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return time.Time{}, false
		}
		if strings.HasPrefix(fields[2], "week") {
			n *= 7
		}
		return today.AddDate(0, 0, n), true
	}

	if len(fields) == 2 {
		wd, ok := weekdays[fields[1]]
		if !ok {
			return time.Time{}, false
		}
		switch fields[0] {
		case "next":
			return today.AddDate(0, 0, daysUntil(today.Weekday(), wd, true)), true
		case "this":
			return today.AddDate(0, 0, daysUntil(today.Weekday(), wd, false)), true
		case "last":
			return today.AddDate(0, 0, -daysUntil(wd, today.Weekday(), true)), true
		}
	}

	return time.Time{}, false
}

// daysUntil counts the days from one weekday to the next occurrence of another.
// When strict is set, the same weekday is a full week away.
func daysUntil(from, to time.Weekday, strict bool) int {
	delta := (int(to) - int(from) + 7) % 7
	if delta == 0 && strict {
		return 7
	}
	return delta
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
