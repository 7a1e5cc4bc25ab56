package mailer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	err  error
	sent []string
	subj []string
}

func (f *fakeSender) Send(_ context.Context, to, subject, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	f.subj = append(f.subj, subject)
	return nil
}

func newDispatcher(s Sender) *Dispatcher {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewDispatcher(s, JobOptions{AppName: "blog", CompanyName: "Flasker", SiteURL: "http://blog.test/"}, logger)
}

func TestHandle_UserCreatedSendsWelcome(t *testing.T) {
	s := &fakeSender{}
	d := newDispatcher(s)

	out := d.Handle(context.Background(), []byte(`{"type":"user.created","id":1,"name":"Alice","email":"a@x.io","occurred_at":"2024-05-02T10:00:00Z"}`))
	assert.Equal(t, Ack, out)
	require.Equal(t, []string{"a@x.io"}, s.sent)
	assert.Equal(t, "Welcome to Flasker, Alice", s.subj[0])
}

func TestHandle_OtherEventsAreAcked(t *testing.T) {
	s := &fakeSender{}
	out := newDispatcher(s).Handle(context.Background(), []byte(`{"type":"post.created","id":3,"title":"Hi"}`))
	assert.Equal(t, Ack, out)
	assert.Empty(t, s.sent)
}

func TestHandle_MalformedIsDropped(t *testing.T) {
	d := newDispatcher(&fakeSender{})
	assert.Equal(t, Drop, d.Handle(context.Background(), []byte(`not json`)))
	assert.Equal(t, Drop, d.Handle(context.Background(), []byte(`{"type":"user.created","name":"NoMail"}`)))
}

func TestHandle_SendFailureRequeues(t *testing.T) {
	d := newDispatcher(&fakeSender{err: errors.New("mailgun down")})
	out := d.Handle(context.Background(), []byte(`{"type":"user.created","name":"Alice","email":"a@x.io"}`))
	assert.Equal(t, Requeue, out)
	assert.Equal(t, "requeue", out.String())
}

func TestJobFromEvent_TrimsSiteURL(t *testing.T) {
	job, err := JobFromEvent([]byte(`{"type":"user.created","name":"Alice","email":"a@x.io"}`), JobOptions{SiteURL: "http://blog.test/"})
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Contains(t, job.Text, "http://blog.test/add_post")
	assert.NotContains(t, job.Text, "test//add_post")
}
