package services

import (
	"strings"
	"testing"
	"time"

	"afspraaksms/internal/models"
)

func TestMessageForLabel(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("initial with name", func(t *testing.T) {
		msg := MessageForLabel(models.LabelInitial, " Jan Peeters", start)
		if !strings.HasPrefix(msg, "Beste Jan Peeters,\n") {
			t.Errorf("unexpected greeting in %q", msg)
		}
		if !strings.Contains(msg, "op 10/03 om 14:00") {
			t.Errorf("date or time missing in %q", msg)
		}
		if !strings.Contains(msg, "is bevestigd") || !strings.Contains(msg, "+32471799114") {
			t.Errorf("confirmation wording missing in %q", msg)
		}
	})

	t.Run("initial without name", func(t *testing.T) {
		msg := MessageForLabel(models.LabelInitial, "", start)
		if !strings.HasPrefix(msg, "Beste,\n") {
			t.Errorf("greeting without name should be \"Beste,\", got %q", msg)
		}
	})

	t.Run("seven days", func(t *testing.T) {
		msg := MessageForLabel(models.Label7Days, "", start)
		if !strings.Contains(msg, "Vriendelijke herinnering") || !strings.Contains(msg, "10/03") {
			t.Errorf("unexpected 7-day message %q", msg)
		}
	})

	t.Run("24 hours asks for OK reply", func(t *testing.T) {
		msg := MessageForLabel(models.Label24Hours, "", start)
		if !strings.Contains(msg, "Stuur \"OK\" om te bevestigen") {
			t.Errorf("confirmation request missing in %q", msg)
		}
	})

	t.Run("2 hour mentions only the time", func(t *testing.T) {
		msg := MessageForLabel(models.Label2Hour, "", start)
		if !strings.Contains(msg, "om 14:00") {
			t.Errorf("time missing in %q", msg)
		}
		if strings.Contains(msg, "10/03") {
			t.Errorf("2-hour message should not carry the date, got %q", msg)
		}
	})
}
