package schedule

import (
	"testing"
	"time"
)

// 2024-03-04 is a Monday; 2024-03-10 is a Sunday.
var (
	monday   = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
)

func TestIsScheduledOn(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		ref      time.Time
		want     bool
	}{
		{name: "day name match", schedule: "thứ 2, thứ 4, thứ 6", ref: monday, want: true},
		{name: "day name no match", schedule: "thứ 3, thứ 5", ref: monday, want: false},
		{name: "case insensitive", schedule: "THỨ 2, THỨ 4", ref: monday, want: true},
		{name: "extra whitespace", schedule: "  thứ 2 , thứ 4  ", ref: monday, want: true},
		{name: "numeric token", schedule: "2, 4, 6 (18h-19h30)", ref: monday, want: true},
		{name: "numeric token other day", schedule: "3, 5, 7", ref: tuesday, want: true},
		{name: "saturday numeric", schedule: "7", ref: saturday, want: true},
		{name: "sunday full name", schedule: "chủ nhật (9h-11h)", ref: sunday, want: true},
		{name: "sunday abbreviation", schedule: "thứ 7, cn", ref: sunday, want: true},
		{name: "sunday not matched by numeric", schedule: "1", ref: sunday, want: false},
		{name: "empty schedule", schedule: "", ref: monday, want: false},
		{name: "blank schedule", schedule: "   ", ref: monday, want: false},
		{name: "unparseable text", schedule: "lịch chưa xếp", ref: monday, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsScheduledOn(tt.schedule, tt.ref); got != tt.want {
				t.Errorf("IsScheduledOn(%q, %s) = %v, want %v", tt.schedule, tt.ref.Weekday(), got, tt.want)
			}
		})
	}
}

func TestIsScheduledOnCaseEquivalence(t *testing.T) {
	upper := IsScheduledOn("THỨ 2, THỨ 4", monday)
	lower := IsScheduledOn("thứ 2, thứ 4", monday)
	if upper != lower {
		t.Errorf("matching is case-sensitive: upper=%v lower=%v", upper, lower)
	}
}

func TestMatcherCustomLocale(t *testing.T) {
	m := NewMatcher(Locale{
		DayNames:     [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
		SundayTokens: []string{"sun"},
	})
	if !m.IsScheduledOn("Monday, Wednesday", monday) {
		t.Error("expected english monday schedule to match")
	}
	if !m.IsScheduledOn("Sat, Sun", sunday) {
		t.Error("expected sunday token to match")
	}
}
