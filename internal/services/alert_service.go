package services

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// AlertService emails the operator when a reminder pass fails. The
// triggering caller never sees pass outcomes, so this is the only
// failure channel besides the logs.
type AlertService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	toEmail   string
}

func NewAlertService() *AlertService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("SENDGRID_ALERT_FROM_EMAIL")
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	toEmail := os.Getenv("SENDGRID_ALERT_TO_EMAIL")

	client := sendgrid.NewSendClient(apiKey)

	return &AlertService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}
}

// Enabled reports whether alerting is configured. Without an API key
// and recipient, failures are only logged.
func (s *AlertService) Enabled() bool {
	return os.Getenv("SENDGRID_API_KEY") != "" && s.toEmail != ""
}

// SendPassFailure notifies the operator that a scheduling pass failed.
func (s *AlertService) SendPassFailure(passErr error) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", s.toEmail)
	subject := "Reminder pass failed"
	plainContent := fmt.Sprintf("The reminder scheduling pass failed: %v", passErr)
	htmlContent := fmt.Sprintf("<p>The reminder scheduling pass failed:</p><p><strong>%v</strong></p>", passErr)

	message := mail.NewSingleEmail(from, subject, to, plainContent, htmlContent)

	response, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send alert email: %d", response.StatusCode)
	}
	return nil
}
