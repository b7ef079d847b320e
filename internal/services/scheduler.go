package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"afspraaksms/internal/contact"
	"afspraaksms/internal/models"
	"afspraaksms/internal/store"
)

// AppointmentSource lists upcoming appointments, soonest first.
type AppointmentSource interface {
	ListUpcoming(ctx context.Context) ([]models.Appointment, error)
}

// Dispatcher delivers one text message. A nil return means the
// provider confirmed acceptance; anything else means the message must
// not be recorded as sent.
type Dispatcher interface {
	Send(to, message string) error
}

// Scheduler runs reminder passes: it pulls upcoming appointments,
// decides which reminders are due, dispatches them and records each
// successful send so it is never repeated.
type Scheduler struct {
	source     AppointmentSource
	dispatcher Dispatcher
	store      store.Store
	organizer  string
}

// NewScheduler wires a scheduler. Only appointments created by the
// given organizer email are processed; everything else on the calendar
// is ignored.
func NewScheduler(source AppointmentSource, dispatcher Dispatcher, st store.Store, organizer string) *Scheduler {
	return &Scheduler{
		source:     source,
		dispatcher: dispatcher,
		store:      st,
		organizer:  organizer,
	}
}

// DueLabels computes which reminder labels are newly due for an
// appointment starting at start, given the current time and the set of
// labels already sent. Results come back in dispatch order: the
// confirmation first, then the interval reminders nearest-window last.
//
// An appointment that has started gets nothing, ever. The confirmation
// is due whenever the event is still upcoming. A timed label is due
// from its trigger time (start minus offset) until the event starts;
// there is no upper bound below start, so a pass that runs late still
// catches up on missed windows rather than dropping them.
func DueLabels(start, now time.Time, sent map[models.Label]bool) []models.Label {
	if !now.Before(start) {
		return nil
	}

	var due []models.Label
	if !sent[models.LabelInitial] {
		due = append(due, models.LabelInitial)
	}
	for _, interval := range models.IntervalOffsets {
		if sent[interval.Label] {
			continue
		}
		trigger := start.Add(-interval.Offset)
		if !now.Before(trigger) {
			due = append(due, interval.Label)
		}
	}
	return due
}

// RunPass executes one complete scheduling pass over all upcoming
// appointments. A source failure aborts the pass. A dispatch failure
// skips only that label: nothing is recorded, so the label stays
// eligible on the next pass. A store write failure after a confirmed
// send is returned as the pass error but does not undo the send.
func (s *Scheduler) RunPass(ctx context.Context) error {
	now := time.Now().UTC()

	appointments, err := s.source.ListUpcoming(ctx)
	if err != nil {
		return fmt.Errorf("failed to list upcoming appointments: %w", err)
	}

	var passErr error
	for _, appt := range appointments {
		if appt.OrganizerEmail != s.organizer {
			continue
		}

		info := contact.Parse(appt.Description)
		if info.Phone == "" {
			continue
		}

		sent := make(map[models.Label]bool, len(models.AllLabels))
		storeFailed := false
		for _, label := range models.AllLabels {
			has, err := s.store.HasSent(appt.ID, label)
			if err != nil {
				log.Printf("Failed to check sent reminders for event %s: %v", appt.ID, err)
				passErr = err
				storeFailed = true
				break
			}
			sent[label] = has
		}
		if storeFailed {
			continue
		}

		for _, label := range DueLabels(appt.StartTime, now, sent) {
			message := MessageForLabel(label, info.Name, appt.StartTime)

			if err := s.dispatcher.Send(info.Phone, message); err != nil {
				log.Printf("Failed to send %s reminder for event %q: %v", label, appt.Summary, err)
				continue
			}

			if err := s.store.RecordSent(appt.ID, label, time.Now().UTC()); err != nil {
				// The SMS went out but the fact was lost; the next
				// pass may send it again. Better twice than never.
				log.Printf("Failed to record %s reminder for event %s: %v", label, appt.ID, err)
				passErr = err
				continue
			}

			log.Printf("Sent %s reminder to %s for event %q", label, info.Phone, appt.Summary)
		}
	}

	return passErr
}
