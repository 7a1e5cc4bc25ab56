package mailer

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	mailtpl "github.com/oksasatya/go-ddd-blog/pkg/mailer/templates"
)

var ErrMalformedEvent = errors.New("malformed event")

// lifecycleEvent is the subset of a published lifecycle event the mailer reads.
type lifecycleEvent struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
}

// EmailJob is a rendered message ready to send.
type EmailJob struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// JobOptions carries the site details stamped into every mail.
type JobOptions struct {
	AppName     string
	CompanyName string
	SiteURL     string
}

// JobFromEvent decodes body and renders the mail it calls for.
// It returns (nil, nil) for events that send nothing and ErrMalformedEvent for bad payloads.
func JobFromEvent(body []byte, opts JobOptions) (*EmailJob, error) {
	var ev lifecycleEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, errors.Join(ErrMalformedEvent, err)
	}
	if ev.Type != "user.created" {
		return nil, nil
	}
	if strings.TrimSpace(ev.Email) == "" {
		return nil, ErrMalformedEvent
	}

	data := mailtpl.NewWelcomeData(opts.AppName, opts.CompanyName, ev.Name, ev.Email, mailtpl.WithSiteURL(strings.TrimRight(opts.SiteURL, "/")))
	if !ev.OccurredAt.IsZero() {
		mailtpl.WithTime(ev.OccurredAt)(&data)
	}
	subject, text, html, err := mailtpl.Render(mailtpl.Welcome, data)
	if err != nil {
		return nil, err
	}
	return &EmailJob{To: ev.Email, Subject: subject, Text: text, HTML: html}, nil
}
