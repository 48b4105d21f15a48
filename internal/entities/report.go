// Package entities contains core business entities.
package entities

import "time"

// ReportField names a free-text column of a standup report. It is the
// whitelist the question catalog maps indexes onto; persistence must never
// accept a column name from anywhere else.
type ReportField string

const (
	// FieldFeeling holds the mood answer.
	FieldFeeling ReportField = "feeling"
	// FieldYesterday holds the previous-day summary.
	FieldYesterday ReportField = "yesterday"
	// FieldToday holds the current-day plan.
	FieldToday ReportField = "today"
	// FieldBlockers holds reported impediments.
	FieldBlockers ReportField = "blockers"
)

// Report is one member's standup record for a single date.
// At most one report exists per (member, date).
type Report struct {
	ID          int64
	MemberID    string
	ReportDate  time.Time
	Feeling     *string
	Yesterday   *string
	Today       *string
	Blockers    *string
	Skipped     bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Done reports whether the member owes nothing for this report's date:
// either the report is completed or the day was explicitly skipped.
func (r Report) Done() bool {
	return r.Skipped || r.CompletedAt != nil
}

// DateOnly truncates t to a calendar date in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
