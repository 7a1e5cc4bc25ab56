package application

import (
	"context"
	"expvar"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
	EventPostCreated = "post.created"
	EventPostUpdated = "post.updated"
	EventPostDeleted = "post.deleted"
)

var (
	eventsPublished = expvar.NewInt("events_published")
	eventsFailed    = expvar.NewInt("events_failed")
)

// Event is the JSON message published on every entity mutation.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	ID         int64     `json:"id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Title      string    `json:"title,omitempty"`
	Slug       string    `json:"slug,omitempty"`
}

// EventPublisher is satisfied by helpers.RabbitPublisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// publish never fails the caller; a broken broker only costs the notification.
func publish(ctx context.Context, pub EventPublisher, logger *logrus.Logger, ev Event) {
	if pub == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC()
	if err := pub.PublishJSON(ctx, ev); err != nil {
		eventsFailed.Add(1)
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{"event": ev.Type, "id": ev.ID}).Warn("publish event failed")
		}
		return
	}
	eventsPublished.Add(1)
}
