package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"beautycabin/pkg/logger"
	"beautycabin/pkg/middleware"
	"beautycabin/pkg/model"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   int
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed++
	return nil
}

func headerMap(msg kafka.Message) map[string]string {
	out := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		out[h.Key] = string(h.Value)
	}
	return out
}

func TestMessageBuilder_Defaults(t *testing.T) {
	msg := NewMessage().WithKey("k").WithValue(map[string]string{"a": "b"}).Build()

	assert.Equal(t, "k", msg.Key)
	assert.JSONEq(t, `{"a":"b"}`, string(msg.Value))
	assert.NotEmpty(t, msg.GetEventID())
	assert.NotEmpty(t, msg.Headers[HeaderTimestamp])
	assert.Empty(t, msg.GetCorrelationID())
}

func TestMessageBuilder_UnencodableValue(t *testing.T) {
	msg := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	assert.Empty(t, msg.Value)
}

func TestNewProducer_Validation(t *testing.T) {
	_, err := NewProducer(ProducerConfig{Topic: "t"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewProducer(ProducerConfig{Brokers: []string{"localhost:9092"}}, logger.Nop())
	assert.Error(t, err)

	p, err := NewProducer(ProducerConfig{Brokers: []string{"localhost:9092"}, Topic: "appointments.events"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "appointments.events", p.Topic())
	require.NoError(t, p.Close())
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "appointments.events")

	var seen []string
	p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
		seen = append(seen, msg.Key)
		return next(ctx, msg)
	})
	p.Use(LoggingMiddleware(logger.Nop()))

	err := p.Publish(context.Background(), NewMessage().WithKey("a1").WithValue("x").WithEventType("t").Build())
	require.NoError(t, err)

	require.Len(t, w.messages, 1)
	assert.Equal(t, "a1", string(w.messages[0].Key))
	assert.Equal(t, "t", headerMap(w.messages[0])[HeaderEventType])
	assert.Equal(t, []string{"a1"}, seen)
}

func TestProducer_PublishRejections(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "topic")
	ctx := context.Background()

	assert.ErrorIs(t, p.Publish(ctx, NewMessage().WithValue("x").Build()), ErrEmptyKey)
	assert.ErrorIs(t, p.Publish(ctx, NewMessage().WithKey("k").Build()), ErrEmptyValue)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, w.closed)
	assert.ErrorIs(t, p.Publish(ctx, NewMessage().WithKey("k").WithValue("x").Build()), ErrProducerClosed)
	assert.Empty(t, w.messages)
}

func TestProducer_WriteError(t *testing.T) {
	cause := errors.New("leader not available")
	p := newProducer(&fakeWriter{err: cause}, "topic")

	err := p.Publish(context.Background(), NewMessage().WithKey("k").WithValue("x").Build())
	assert.ErrorIs(t, err, cause)
}

func TestAppointmentEventPublisher(t *testing.T) {
	w := &fakeWriter{}
	pub := &AppointmentEventPublisher{producer: newProducer(w, "appointments.events"), source: "appointments"}

	occurred := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	event := model.AppointmentEvent{
		Type:          model.EventAppointmentConfirmed,
		AppointmentID: "65f1c0ffee0000000000abcd",
		Appointment:   &model.Appointment{ID: "65f1c0ffee0000000000abcd", Status: model.StatusConfirmed},
		OccurredAt:    occurred,
	}
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")

	require.NoError(t, pub.PublishAppointmentEvent(ctx, event))
	require.Len(t, w.messages, 1)

	got := w.messages[0]
	headers := headerMap(got)
	assert.Equal(t, "65f1c0ffee0000000000abcd", string(got.Key))
	assert.Equal(t, model.EventAppointmentConfirmed, headers[HeaderEventType])
	assert.Equal(t, "appointments", headers[HeaderSource])
	assert.Equal(t, "req-1", headers[HeaderCorrelationID])
	assert.NotEmpty(t, headers[HeaderEventID])
	assert.Equal(t, occurred, got.Time)

	var decoded model.AppointmentEvent
	require.NoError(t, (&Message{Value: got.Value}).DecodeValue(&decoded))
	assert.Equal(t, event.AppointmentID, decoded.AppointmentID)
	assert.Equal(t, model.StatusConfirmed, decoded.Appointment.Status)
}
