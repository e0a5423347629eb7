package billing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		cycleType CycleType
		want      time.Time
	}{
		{name: "monthly", start: date(2024, 3, 1), cycleType: Monthly, want: date(2024, 3, 31)},
		{name: "monthly across month boundary", start: date(2024, 1, 20), cycleType: Monthly, want: date(2024, 2, 19)},
		{name: "monthly across year boundary", start: date(2023, 12, 15), cycleType: Monthly, want: date(2024, 1, 14)},
		{name: "session-8 is 19 days", start: date(2024, 3, 1), cycleType: Session8, want: date(2024, 3, 20)},
		{name: "session-10 is 24 days", start: date(2024, 3, 1), cycleType: Session10, want: date(2024, 3, 25)},
		{name: "session-12 parsed generically", start: date(2024, 3, 1), cycleType: "session-12", want: date(2024, 3, 29)},
		{name: "unknown type is identity", start: date(2024, 3, 1), cycleType: "weekly", want: date(2024, 3, 1)},
		{name: "empty type is identity", start: date(2024, 3, 1), cycleType: "", want: date(2024, 3, 1)},
		{name: "malformed session count is identity", start: date(2024, 3, 1), cycleType: "session-x", want: date(2024, 3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEndDate(tt.start, tt.cycleType, 0)
			if !got.Equal(tt.want) {
				t.Errorf("ComputeEndDate(%s, %q) = %s, want %s",
					tt.start.Format("2006-01-02"), tt.cycleType, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestComputeEndDateIsPure(t *testing.T) {
	start := date(2024, 1, 20)
	first := ComputeEndDate(start, Monthly, 0)
	second := ComputeEndDate(start, Monthly, 0)
	if !first.Equal(second) {
		t.Errorf("repeated calls differ: %s vs %s", first, second)
	}
	if !start.Equal(date(2024, 1, 20)) {
		t.Errorf("start date was mutated: %s", start)
	}
}

func TestCycleTypeSessions(t *testing.T) {
	tests := []struct {
		cycleType CycleType
		sessions  int
		known     bool
	}{
		{Monthly, 0, true},
		{Session8, 8, true},
		{Session10, 10, true},
		{"session-16", 16, true},
		{"session-", 0, false},
		{"session-abc", 0, false},
		{"quarterly", 0, false},
	}
	for _, tt := range tests {
		if got := tt.cycleType.Sessions(); got != tt.sessions {
			t.Errorf("%q.Sessions() = %d, want %d", tt.cycleType, got, tt.sessions)
		}
		if got := tt.cycleType.Known(); got != tt.known {
			t.Errorf("%q.Known() = %v, want %v", tt.cycleType, got, tt.known)
		}
	}
}

func TestCycleEndDateAndExpiry(t *testing.T) {
	c := Cycle{StartDate: date(2024, 3, 1), CycleType: Session8}
	if got := c.EndDate(); !got.Equal(date(2024, 3, 20)) {
		t.Errorf("EndDate() = %s, want 2024-03-20", got.Format("2006-01-02"))
	}
	if c.Expired(date(2024, 3, 20)) {
		t.Error("cycle should not be expired on its end date")
	}
	if !c.Expired(date(2024, 3, 21)) {
		t.Error("cycle should be expired the day after its end date")
	}
}
