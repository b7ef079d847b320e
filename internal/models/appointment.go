package models

import "time"

// Appointment is one upcoming calendar event, as returned by the
// appointment source. The ID is stable per event instance (recurring
// events are expanded into individual instances upstream).
type Appointment struct {
	ID             string    `json:"id"`
	StartTime      time.Time `json:"start_time"`
	OrganizerEmail string    `json:"organizer_email"`
	Summary        string    `json:"summary"`
	Description    string    `json:"description"`
}

// ContactInfo holds the contact fields extracted from an appointment
// description. Phone is empty when no number could be found, which
// means the appointment is skipped. Name carries a leading space so
// message templates can write "Beste{name}," whether or not a name
// was present.
type ContactInfo struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}
