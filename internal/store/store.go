// Package store persists which reminders have already been dispatched.
// The backing technology is interchangeable; the contract is a durable
// insert-if-absent fact store keyed by (event, label).
package store

import (
	"time"

	"afspraaksms/internal/models"
)

// Store is the reminder dedup store. RecordSent must behave as
// insert-if-absent: recording an already-recorded pair is a no-op, so
// overlapping scheduling passes cannot create duplicate records.
type Store interface {
	HasSent(eventID string, label models.Label) (bool, error)
	RecordSent(eventID string, label models.Label, sentAt time.Time) error
	Close() error
}
