package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	// DefaultTokenPath is where scripts/gcal-auth writes the OAuth token.
	DefaultTokenPath = "token.json"

	dateLayout = "2006-01-02"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account
// or OAuth Desktop credentials file. tokenPath is only read for the latter.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials.
// Service account keys are used directly. OAuth client credentials need the
// token stored at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	var ts oauth2.TokenSource
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		ts = jwtCfg.TokenSource(ctx)
	} else {
		oauthCfg, oauthErr := OAuthConfig(credentialsJSON)
		if oauthErr != nil {
			return nil, fmt.Errorf("gcalendar: unsupported credentials format: %w", errors.Join(err, oauthErr))
		}
		if tokenPath == "" {
			tokenPath = DefaultTokenPath
		}
		tok, tokErr := LoadToken(tokenPath)
		if tokErr != nil {
			return nil, tokErr
		}
		ts = oauthCfg.TokenSource(ctx, tok)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// UpsertDeadline creates the all-day deadline event, or replaces it when
// ev.EventID is set. Returns the event id.
func (c *Client) UpsertDeadline(ctx context.Context, ev DeadlineEvent) (string, error) {
	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &calendar.EventDateTime{Date: ev.Date.Format(dateLayout)},
		End:         &calendar.EventDateTime{Date: ev.Date.AddDate(0, 0, 1).Format(dateLayout)},
	}

	calendarID := calendarOrPrimary(ev.CalendarID)

	if ev.EventID != "" {
		updated, err := c.service.Events.Update(calendarID, ev.EventID, event).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("gcalendar: update event: %w", err)
		}
		return updated.Id, nil
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gcalendar: insert event: %w", err)
	}
	return created.Id, nil
}

// DeleteEvent removes an event. A missing event is not an error.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.service.Events.Delete(calendarOrPrimary(calendarID), eventID).Context(ctx).Do()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("gcalendar: delete event: %w", err)
	}
	return nil
}

func calendarOrPrimary(calendarID string) string {
	if calendarID == "" {
		return "primary"
	}
	return calendarID
}
