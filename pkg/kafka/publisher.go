package kafka

import (
	"context"

	"beautycabin/pkg/middleware"
	"beautycabin/pkg/model"
)

type publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// AppointmentEventPublisher turns appointment lifecycle events into Kafka
// messages keyed by appointment id, so events for one appointment stay ordered.
type AppointmentEventPublisher struct {
	producer publisher
	source   string
}

func NewAppointmentEventPublisher(producer *Producer, source string) *AppointmentEventPublisher {
	return &AppointmentEventPublisher{
		producer: producer,
		source:   source,
	}
}

func (p *AppointmentEventPublisher) PublishAppointmentEvent(ctx context.Context, event model.AppointmentEvent) error {
	msg := NewMessage().
		WithKey(event.AppointmentID).
		WithValue(event).
		WithEventID("").
		WithEventType(event.Type).
		WithSource(p.source).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithTimestamp(event.OccurredAt).
		Build()

	return p.producer.Publish(ctx, msg)
}
