package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"afspraaksms/internal/models"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// One pass never looks at more than this many upcoming events.
const maxUpcomingEvents = 50

// CalendarService wraps the Google Calendar API as an
// AppointmentSource.
type CalendarService struct {
	service    *calendar.Service
	calendarID string
}

// NewCalendarService creates a calendar client on top of an
// authenticated HTTP client.
func NewCalendarService(ctx context.Context, client *http.Client, calendarID string) (*CalendarService, error) {
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &CalendarService{service: service, calendarID: calendarID}, nil
}

// ListUpcoming fetches upcoming events ordered by start time, with
// recurring events expanded into single instances so every appointment
// has its own stable event ID.
func (c *CalendarService) ListUpcoming(ctx context.Context) ([]models.Appointment, error) {
	now := time.Now().UTC()

	result, err := c.service.Events.List(c.calendarID).
		TimeMin(now.Format(time.RFC3339)).
		MaxResults(maxUpcomingEvents).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	appointments := make([]models.Appointment, 0, len(result.Items))
	for _, event := range result.Items {
		start, err := parseEventStart(event.Start)
		if err != nil {
			log.Printf("Skipping event %s: %v", event.Id, err)
			continue
		}

		organizer := ""
		if event.Creator != nil {
			organizer = event.Creator.Email
		}

		appointments = append(appointments, models.Appointment{
			ID:             event.Id,
			StartTime:      start,
			OrganizerEmail: organizer,
			Summary:        event.Summary,
			Description:    event.Description,
		})
	}
	return appointments, nil
}

// parseEventStart handles both timed events (dateTime) and all-day
// events, which only carry a date and are treated as starting at
// midnight.
func parseEventStart(start *calendar.EventDateTime) (time.Time, error) {
	if start == nil {
		return time.Time{}, fmt.Errorf("event has no start")
	}
	if start.DateTime != "" {
		return time.Parse(time.RFC3339, start.DateTime)
	}
	if start.Date != "" {
		return time.Parse("2006-01-02", start.Date)
	}
	return time.Time{}, fmt.Errorf("event start has neither dateTime nor date")
}
