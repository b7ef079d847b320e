// Package auth builds the authenticated Google API client handle used
// by the calendar service. There is no hidden global session: the
// client is constructed once at startup and passed to whoever needs
// it. Token refresh happens inside the client's token source, and
// refreshed tokens are written back to the token file.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// NewCalendarClient returns an HTTP client authorized for calendar
// event access. The token file must already contain a token obtained
// through the one-time authorization flow; expiry after that is
// handled transparently.
func NewCalendarClient(ctx context.Context, credentialsFile, tokenFile string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	tokens := NewFileTokenStore(tokenFile)
	token, err := tokens.LoadToken()
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, fmt.Errorf("no stored token at %s; run the authorization flow first", tokenFile)
	}

	source := &savingTokenSource{
		source: oauth2.ReuseTokenSource(token, config.TokenSource(ctx, token)),
		tokens: tokens,
		last:   token,
	}
	return oauth2.NewClient(ctx, source), nil
}

// savingTokenSource persists tokens whenever the wrapped source
// refreshes them, so the next process start picks up where this one
// left off.
type savingTokenSource struct {
	source oauth2.TokenSource
	tokens *FileTokenStore
	last   *oauth2.Token
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.source.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || s.last.AccessToken != token.AccessToken {
		if err := s.tokens.SaveToken(token); err != nil {
			return nil, fmt.Errorf("failed to save refreshed token: %w", err)
		}
		s.last = token
	}
	return token, nil
}
