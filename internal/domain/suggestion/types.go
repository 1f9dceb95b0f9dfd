package suggestion

import "weekly-menu/internal/pkg/errs"

var (
	ErrInvalidDay    = errs.New("invalid day")
	ErrInvalidStatus = errs.New("invalid moderation status")
)

// Day covers weekdays only; the menu has no weekend slots.
type Day string

const (
	DayMonday    Day = "monday"
	DayTuesday   Day = "tuesday"
	DayWednesday Day = "wednesday"
	DayThursday  Day = "thursday"
	DayFriday    Day = "friday"
)

func NewDay(s string) (Day, error) {
	d := Day(s)
	if !d.IsValid() {
		return "", ErrInvalidDay
	}
	return d, nil
}

func (d Day) String() string {
	return string(d)
}

func (d Day) IsValid() bool {
	switch d {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday:
		return true
	}
	return false
}

// Status is the moderation state of a suggestion that references a newly
// proposed dish. Suggestions for pre-vetted catalog dishes carry no status
// and are treated as implicitly approved. Transitions out of pending are
// performed by an external moderation collaborator, never by this core.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
