// Package schedule decides whether a class meets on a given calendar day
// from the free-text weekly schedule staff type into the class form.
package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Locale supplies the weekday vocabulary used for matching. DayNames is
// indexed by time.Weekday (0 = Sunday). SundayTokens are short forms for
// Sunday that appear in schedule text instead of the full name.
type Locale struct {
	DayNames     [7]string
	SundayTokens []string
}

// Vietnamese is the default locale. Weekdays are numbered 2..7 in Vietnamese
// ("thứ 2" = Monday), which is why the numeric token below is weekday+1.
var Vietnamese = Locale{
	DayNames: [7]string{
		"chủ nhật", "thứ 2", "thứ 3", "thứ 4", "thứ 5", "thứ 6", "thứ 7",
	},
	SundayTokens: []string{"cn"},
}

// Matcher matches free-text schedules against calendar days.
type Matcher struct {
	locale Locale
}

// NewMatcher returns a Matcher for the given locale.
func NewMatcher(locale Locale) *Matcher {
	return &Matcher{locale: locale}
}

// IsScheduledOn reports whether the schedule text includes the weekday of ref.
//
// This is deliberately a tolerant substring matcher, not a validating parser:
// stored schedule strings follow no fixed grammar, so an unrecognized text
// simply does not match. It never returns an error; callers must treat false
// as "not confirmed scheduled", not as a guarantee the class never meets.
func (m *Matcher) IsScheduledOn(schedule string, ref time.Time) bool {
	text := strings.ToLower(strings.TrimSpace(schedule))
	if text == "" {
		return false
	}

	weekday := ref.Weekday()

	// Full localized day name, e.g. "thứ 2".
	if name := m.locale.DayNames[weekday]; name != "" && strings.Contains(text, name) {
		return true
	}

	if weekday == time.Sunday {
		for _, tok := range m.locale.SundayTokens {
			if strings.Contains(text, tok) {
				return true
			}
		}
		return false
	}

	// Numeric day token: Monday is "2", ..., Saturday is "7".
	return strings.Contains(text, strconv.Itoa(int(weekday)+1))
}

var defaultMatcher = NewMatcher(Vietnamese)

// IsScheduledOn matches with the default Vietnamese locale.
func IsScheduledOn(schedule string, ref time.Time) bool {
	return defaultMatcher.IsScheduledOn(schedule, ref)
}
