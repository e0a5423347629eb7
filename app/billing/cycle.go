// Package billing computes payment cycle boundaries for tuition billing.
package billing

import (
	"strconv"
	"strings"
	"time"
)

// CycleType classifies a billing period as time-based (monthly) or
// session-count-based (session-8, session-10, ...).
type CycleType string

const (
	Monthly   CycleType = "monthly"
	Session8  CycleType = "session-8"
	Session10 CycleType = "session-10"

	sessionPrefix = "session-"
	monthlyDays   = 30
)

// SessionBased returns true for session-count cycle types.
func (t CycleType) SessionBased() bool {
	return strings.HasPrefix(string(t), sessionPrefix)
}

// Sessions returns the nominal number of sessions in the cycle, or 0 for
// time-based or unrecognized types.
func (t CycleType) Sessions() int {
	if !t.SessionBased() {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(string(t), sessionPrefix))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Known returns true when the code is a cycle type this package understands.
func (t CycleType) Known() bool {
	return t == Monthly || t.Sessions() > 0
}

// ComputeEndDate returns the end of the billing cycle that starts at start.
//
// Monthly cycles use a fixed 30-day window, not a calendar month. Session
// cycles estimate ceil(sessions*7/3) days, assuming three sessions per week;
// this is a heuristic that does not consult the actual class schedule and
// stands until per-class schedules feed into the calculation.
// An unknown cycle type returns start unchanged so callers never see a
// fabricated extension. The input is never mutated; completedSessions is part
// of the cycle state callers track but does not shift the estimated end.
func ComputeEndDate(start time.Time, cycleType CycleType, completedSessions int) time.Time {
	switch {
	case cycleType == Monthly:
		return start.AddDate(0, 0, monthlyDays)
	case cycleType.SessionBased():
		sessions := cycleType.Sessions()
		if sessions == 0 {
			return start
		}
		days := (sessions*7 + 2) / 3 // ceil(sessions*7/3)
		return start.AddDate(0, 0, days)
	default:
		return start
	}
}

// Cycle is one billing window for a student.
type Cycle struct {
	StartDate         time.Time `json:"start_date"`
	CycleType         CycleType `json:"cycle_type"`
	CompletedSessions int       `json:"completed_sessions"`
}

// EndDate derives the cycle's end from its inputs.
func (c Cycle) EndDate() time.Time {
	return ComputeEndDate(c.StartDate, c.CycleType, c.CompletedSessions)
}

// Expired reports whether the cycle's estimated end has passed at ref.
func (c Cycle) Expired(ref time.Time) bool {
	return c.EndDate().Before(ref)
}
