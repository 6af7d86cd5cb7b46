package domain

import "time"

// Interval is a half-open span [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether a and b conflict once buffer is required between them.
// They are clear of each other iff a.End+buffer <= b.Start or a.Start >= b.End+buffer.
// With a zero buffer touching intervals do not conflict.
func Overlaps(a, b Interval, buffer time.Duration) bool {
	if !a.End.Add(buffer).After(b.Start) {
		return false
	}
	if !a.Start.Before(b.End.Add(buffer)) {
		return false
	}
	return true
}
