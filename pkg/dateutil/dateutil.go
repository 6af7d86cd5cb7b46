// Package dateutil holds day arithmetic and "relative to now" predicates used
// by the booking pickers and reservation lists.
//
// Pure helpers take every instant they need as an argument. Predicates that
// depend on the current moment live on Calendar and read its Clock on every
// call; capture Now() once if a computation needs a stable snapshot.
package dateutil

import "time"

// Default business hours.
const (
	BusinessDayStartHour = 9
	BusinessDayEndHour   = 17

	// dayKeyHour is the time of day used when a date is only a day identity key.
	// Noon stays on the same calendar day across DST shifts.
	dayKeyHour = 12

	halfHour = 30 * time.Minute
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// Calendar evaluates day predicates against its clock.
type Calendar struct {
	clock Clock
}

// New creates a Calendar. A nil clock means RealClock.
func New(clock Clock) *Calendar {
	if clock == nil {
		clock = RealClock{}
	}
	return &Calendar{clock: clock}
}

// Now returns the clock's current time.
func (c *Calendar) Now() time.Time {
	return c.clock.Now()
}

// Today returns today at noon.
func (c *Calendar) Today() time.Time {
	return atHour(c.Now(), dayKeyHour)
}

// Tomorrow returns tomorrow at noon.
func (c *Calendar) Tomorrow() time.Time {
	return DayAfter(c.Today())
}

// BeginningOfDay returns today at the start of business hours.
func (c *Calendar) BeginningOfDay() time.Time {
	return atHour(c.Now(), BusinessDayStartHour)
}

// EndOfDay returns today at the end of business hours.
func (c *Calendar) EndOfDay() time.Time {
	return atHour(c.Now(), BusinessDayEndHour)
}

// IsToday reports whether date falls on the current calendar day.
func (c *Calendar) IsToday(date time.Time) bool {
	return IsSameDay(date, c.Now())
}

// IsTomorrow reports whether date falls on the next calendar day.
func (c *Calendar) IsTomorrow(date time.Time) bool {
	return IsSameDay(date, DayAfter(c.Now()))
}

// IsTodayUpcoming reports whether date is later today.
func (c *Calendar) IsTodayUpcoming(date time.Time) bool {
	now := c.Now()
	return IsSameDay(date, now) && date.After(now)
}

// IsInProgress reports whether now lies within [start, end).
func (c *Calendar) IsInProgress(start, end time.Time) bool {
	now := c.Now()
	return !now.Before(start) && now.Before(end)
}

// IsDone reports whether end has already passed.
func (c *Calendar) IsDone(end time.Time) bool {
	return !end.After(c.Now())
}

// IsUpcomingDay reports whether date is today or a later day.
func (c *Calendar) IsUpcomingDay(date time.Time) bool {
	return !date.Before(StartOfDay(c.Now()))
}

// IsUpcomingTime reports whether date is strictly in the future.
func (c *Calendar) IsUpcomingTime(date time.Time) bool {
	return date.After(c.Now())
}

// PastHalfHours lists the half-hour marks of today that are already behind now.
func (c *Calendar) PastHalfHours() []time.Time {
	return PastHalfHours(c.Now())
}

// StartOfDay returns local midnight of date.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// DayBefore returns the same clock time one calendar day earlier.
func DayBefore(date time.Time) time.Time {
	return date.AddDate(0, 0, -1)
}

// DayAfter returns the same clock time one calendar day later.
func DayAfter(date time.Time) time.Time {
	return date.AddDate(0, 0, 1)
}

// IsSameDay reports whether a and b share year, month and day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// PastHalfHours enumerates every :00 and :30 mark from local midnight of
// until up to, but not including, until.
func PastHalfHours(until time.Time) []time.Time {
	marks := make([]time.Time, 0, 48)
	for t := StartOfDay(until); t.Before(until); t = t.Add(halfHour) {
		marks = append(marks, t)
	}
	return marks
}

// LastHalfHour rounds date down to the previous :00 or :30 mark.
func LastHalfHour(date time.Time) time.Time {
	minute := 0
	if date.Minute() >= 30 {
		minute = 30
	}
	return time.Date(date.Year(), date.Month(), date.Day(), date.Hour(), minute, 0, 0, date.Location())
}

func atHour(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}
