package actions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDatePhrase(t *testing.T) {
	ref := time.Date(2026, 1, 27, 23, 30, 0, 0, time.UTC) // Tuesday
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	tests := map[string]struct {
		text     string
		loc      *time.Location
		expected string
		found    bool
	}{
		"today":                  {text: "what about today?", loc: time.UTC, expected: "2026-01-27", found: true},
		"tomorrow":               {text: "remind me Tomorrow", loc: time.UTC, expected: "2026-01-28", found: true},
		"yesterday":              {text: "yesterday it rained", loc: time.UTC, expected: "2026-01-26", found: true},
		"tomorrow-in-paris":      {text: "tomorrow", loc: paris, expected: "2026-01-29", found: true},
		"in-days":                {text: "in 3 days", loc: time.UTC, expected: "2026-01-30", found: true},
		"in-one-week":            {text: "in 1 week", loc: time.UTC, expected: "2026-02-03", found: true},
		"next-friday":            {text: "next friday", loc: time.UTC, expected: "2026-01-30", found: true},
		"next-same-weekday":      {text: "next tuesday", loc: time.UTC, expected: "2026-02-03", found: true},
		"this-same-weekday":      {text: "this tuesday", loc: time.UTC, expected: "2026-01-27", found: true},
		"this-thursday":          {text: "this thursday", loc: time.UTC, expected: "2026-01-29", found: true},
		"last-friday":            {text: "last friday", loc: time.UTC, expected: "2026-01-23", found: true},
		"last-same-weekday":      {text: "last  tuesday", loc: time.UTC, expected: "2026-01-20", found: true},
		"iso-date":               {text: "due on 2026-02-15", loc: time.UTC, expected: "2026-02-15", found: true},
		"month-name":             {text: "jan 5 2026", loc: time.UTC, expected: "2026-01-05", found: true},
		"month-name-with-comma":  {text: "February 14, 2026", loc: time.UTC, expected: "2026-02-14", found: true},
		"first-phrase-wins":      {text: "tomorrow or 2026-03-01", loc: time.UTC, expected: "2026-01-28", found: true},
		"no-date":                {text: "whenever you like", loc: time.UTC},
		"weekday-without-prefix": {text: "friday", loc: time.UTC},
		"word-boundary":          {text: "todayish", loc: time.UTC},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := resolveDatePhrase(tt.text, ref, tt.loc)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, got.Format(time.DateOnly))
				assert.Equal(t, tt.loc, got.Location())
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	tests := map[string]struct {
		from, to time.Weekday
		strict   bool
		expected int
	}{
		"forward":             {from: time.Tuesday, to: time.Friday, expected: 3},
		"wraps-around":        {from: time.Friday, to: time.Monday, expected: 3},
		"same-day-strict":     {from: time.Sunday, to: time.Sunday, strict: true, expected: 7},
		"same-day-not-strict": {from: time.Sunday, to: time.Sunday, expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, daysUntil(tt.from, tt.to, tt.strict))
		})
	}
}
