package domain

import "time"

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04"
)

// AlertLead is how far ahead of the event the notification fires.
const AlertLead = time.Hour

type DateTimeCheck int

const (
	// DateTimeOK: the event is at least an hour away, a trigger can be armed.
	DateTimeOK DateTimeCheck = iota
	// DateTimeTooSoon: valid future event, but closer than the alert lead.
	DateTimeTooSoon
	// DateTimeInPast: the instant is now or earlier.
	DateTimeInPast
	// DateTimeMalformed: the strings do not parse as YYYY-MM-DD HH:MM.
	DateTimeMalformed
)

// ParseInstant parses a canonical date and time pair in the host timezone.
func ParseInstant(date, tm string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, date+" "+tm, time.Local)
}

// CheckDateTime classifies a user-supplied date/time pair against now.
// The four outcomes are disjoint; callers branch on each.
func CheckDateTime(date, tm string, now time.Time) DateTimeCheck {
	instant, err := ParseInstant(date, tm)
	if err != nil {
		return DateTimeMalformed
	}
	delta := instant.Sub(now)
	switch {
	case delta <= 0:
		return DateTimeInPast
	case delta < AlertLead:
		return DateTimeTooSoon
	default:
		return DateTimeOK
	}
}
