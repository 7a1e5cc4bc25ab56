package mailer

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// Outcome tells the consumer what to do with a delivery.
type Outcome int

const (
	Ack Outcome = iota
	Requeue
	Drop
)

func (o Outcome) String() string {
	switch o {
	case Ack:
		return "ack"
	case Requeue:
		return "requeue"
	default:
		return "drop"
	}
}

// Dispatcher turns queued lifecycle events into sent mail.
type Dispatcher struct {
	Sender  Sender
	Options JobOptions
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewDispatcher(sender Sender, opts JobOptions, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{Sender: sender, Options: opts, Logger: logger, Timeout: 15 * time.Second}
}

// Handle processes one message body. Malformed or unrenderable messages are dropped,
// failed sends are requeued.
func (d *Dispatcher) Handle(ctx context.Context, body []byte) Outcome {
	job, err := JobFromEvent(body, d.Options)
	if err != nil {
		level := logrus.ErrorLevel
		if errors.Is(err, ErrMalformedEvent) {
			level = logrus.WarnLevel
		}
		d.Logger.WithError(err).Log(level, "dropping message")
		return Drop
	}
	if job == nil {
		return Ack
	}

	c, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()
	if err := d.Sender.Send(c, job.To, job.Subject, job.Text, job.HTML); err != nil {
		d.Logger.WithError(err).WithField("to", job.To).Warn("send failed, requeueing")
		return Requeue
	}
	d.Logger.WithField("to", job.To).Info("welcome mail sent")
	return Ack
}
