package models

import "time"

// Label identifies which reminder in the sequence a record refers to.
type Label string

const (
	LabelInitial Label = "initial"
	Label7Days   Label = "7_days"
	Label24Hours Label = "24_hours"
	Label2Hour   Label = "2_hour"
)

// AllLabels lists every label in dispatch order: the confirmation is
// always attempted before any interval reminder within the same pass.
var AllLabels = []Label{LabelInitial, Label7Days, Label24Hours, Label2Hour}

// IntervalOffsets maps each timed label to how long before the
// appointment start its window opens. The initial confirmation has no
// offset; it is due as soon as the event is seen.
var IntervalOffsets = []struct {
	Label  Label
	Offset time.Duration
}{
	{Label7Days, 7 * 24 * time.Hour},
	{Label24Hours, 24 * time.Hour},
	{Label2Hour, 2 * time.Hour},
}

// SentReminder records that one reminder was dispatched for one event.
// The unique index on (event_id, reminder_label) is the dedup
// invariant: at most one row per label per event, ever. Rows are never
// updated or deleted.
type SentReminder struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	EventID       string    `gorm:"size:255;not null;uniqueIndex:idx_event_label" json:"event_id"`
	ReminderLabel Label     `gorm:"size:50;not null;uniqueIndex:idx_event_label" json:"reminder_label"`
	SentAt        time.Time `gorm:"not null" json:"sent_at"`
}
