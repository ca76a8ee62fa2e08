package model

import "time"

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
)

// Appointment is a booking request. The JSON id key is "_id" because the
// admin client addresses appointments by it.
type Appointment struct {
	ID        string    `json:"_id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone" bson:"phone"`
	Service   string    `json:"service" bson:"service"`
	Date      string    `json:"date" bson:"date"`
	Time      string    `json:"time" bson:"time"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// AppointmentCreate is the booking form payload. Status and timestamps are
// assigned by the service, never taken from the client.
type AppointmentCreate struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Service string `json:"service" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
}

const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentConfirmed = "appointment.confirmed"
	EventAppointmentDeleted   = "appointment.deleted"
)

// AppointmentEvent describes a lifecycle change. Appointment is nil for deletions.
type AppointmentEvent struct {
	Type          string       `json:"type"`
	AppointmentID string       `json:"appointmentId"`
	Appointment   *Appointment `json:"appointment,omitempty"`
	OccurredAt    time.Time    `json:"occurredAt"`
}
