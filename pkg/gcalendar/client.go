package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// ErrMissingToken is returned for desktop-app credentials without a saved token.
// Run cmd/gcal-auth once to create it.
var ErrMissingToken = errors.New("oauth desktop credentials need a saved token")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClient reads the files named in opts and builds a Client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	creds, err := os.ReadFile(opts.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var token []byte
	if opts.TokenPath != "" {
		token, err = os.ReadFile(opts.TokenPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read token file: %w", err)
		}
	}
	return NewClientFromCredentialsJSON(ctx, creds, token)
}

// NewClientFromCredentialsJSON accepts either a service-account key or OAuth
// desktop-app credentials together with a token saved by cmd/gcal-auth.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON, tokenJSON []byte) (*Client, error) {
	jwtConfig, jwtErr := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if jwtErr == nil {
		return newClient(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	oauthConfig, err := OAuthConfig(credentialsJSON)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", jwtErr)
	}
	if len(tokenJSON) == 0 {
		return nil, ErrMissingToken
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenJSON, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// OAuthConfig parses OAuth desktop-app credentials for the calendar scope.
func OAuthConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	return google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
}

// SaveToken writes tok to path, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// CreateEvent inserts a timed event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
