package services

import (
	"fmt"
	"time"

	"afspraaksms/internal/models"
)

// Number customers can text or call to reschedule.
const reschedulePhone = "+32471799114"

func formatDate(t time.Time) string {
	return t.Format("02/01")
}

func formatTime(t time.Time) string {
	return t.Format("15:04")
}

// MessageForLabel renders the fixed Dutch message for a reminder
// label. name is either empty or carries its leading space, so
// "Beste%s," comes out right either way.
func MessageForLabel(label models.Label, name string, start time.Time) string {
	date := formatDate(start)
	hour := formatTime(start)

	switch label {
	case models.LabelInitial:
		return fmt.Sprintf("Beste%s,\nUw afspraak met EnergyLovers op %s om %s is bevestigd.\nHerplannen? Sms/bel %s",
			name, date, hour, reschedulePhone)
	case models.Label7Days:
		return fmt.Sprintf("Beste%s,\nVriendelijke herinnering: afspraak met EnergyLovers op %s om %s.\nHerplannen? Sms/bel %s",
			name, date, hour, reschedulePhone)
	case models.Label24Hours:
		return fmt.Sprintf("Beste%s,\nHerinnering: uw afspraak met EnergyLovers is op %s om %s.\nStuur \"OK\" om te bevestigen.",
			name, date, hour)
	case models.Label2Hour:
		return fmt.Sprintf("Beste%s,\nHerinnering: uw afspraak met EnergyLovers is om %s.\nWe kijken ernaar uit!",
			name, hour)
	}
	return ""
}
