package gcalendar

import "time"

// Options locates the credentials used by NewClient. TokenPath is only read for
// OAuth desktop-app credentials; service-account keys need no token.
type Options struct {
	CredentialsPath string
	TokenPath       string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string // "primary" when empty
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Singapore"
}

// Event is the part of a created Google Calendar event callers care about.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
