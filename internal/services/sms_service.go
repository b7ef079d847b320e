package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const ringRingEndpoint = "https://api.ringring.be/sms/v1/message"

// SMSService sends text messages through the RingRing SMS API.
type SMSService struct {
	client   *http.Client
	endpoint string
	apiKey   string
	sender   string
}

func NewSMSService() *SMSService {
	return &SMSService{
		client:   &http.Client{Timeout: 30 * time.Second},
		endpoint: ringRingEndpoint,
		apiKey:   os.Getenv("RINGRING_API_KEY"),
		sender:   os.Getenv("RINGRING_SENDER"),
	}
}

type smsRequest struct {
	APIKey  string `json:"apiKey"`
	To      string `json:"to"`
	Message string `json:"message"`
	From    string `json:"from,omitempty"`
}

// Send delivers one message. Only a 200 or 201 response counts as
// accepted; anything else, including transport errors, is returned as
// an error so the caller does not record the reminder as sent.
func (s *SMSService) Send(to, message string) error {
	body, err := json.Marshal(smsRequest{
		APIKey:  s.apiKey,
		To:      to,
		Message: message,
		From:    s.sender,
	})
	if err != nil {
		return fmt.Errorf("failed to encode sms request: %w", err)
	}

	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to call sms api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("sms api returned status %d", resp.StatusCode)
	}
	return nil
}
