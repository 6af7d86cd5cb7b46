package domain

import "time"

// CleaningBuffer mandatory turnaround between two occupancies of the same desk
// when the owning organization has cleaning enabled
const CleaningBuffer = 30 * time.Minute

// MaxReservationDays caps the number of days in one reservation
const MaxReservationDays = 31

// DateFormat YYYY-MM-DD, used for days on the wire
const DateFormat = "2006-01-02"
