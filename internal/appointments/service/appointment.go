package service

import (
	"context"
	"errors"
	"time"

	appointmentserrors "beautycabin/internal/appointments/errors"
	"beautycabin/internal/appointments/repository"
	"beautycabin/internal/appointments/validator"
	"beautycabin/pkg/config"
	apperrors "beautycabin/pkg/errors"
	"beautycabin/pkg/model"
	"beautycabin/pkg/sanitizer"
)

const resourceName = "Appointment"

type AppointmentService interface {
	Create(ctx context.Context, input *model.AppointmentCreate) (*model.Appointment, error)
	List(ctx context.Context, search string) ([]*model.Appointment, error)
	Confirm(ctx context.Context, id string) (*model.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// EventPublisher receives lifecycle events after the store write succeeded.
type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event model.AppointmentEvent) error
}

type nopPublisher struct{}

func (nopPublisher) PublishAppointmentEvent(context.Context, model.AppointmentEvent) error {
	return nil
}

type appointmentService struct {
	repo      repository.AppointmentRepository
	validator *validator.AppointmentValidator
	events    EventPublisher
	cfg       *config.Config
	now       func() time.Time
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	validator *validator.AppointmentValidator,
	events EventPublisher,
	cfg *config.Config,
) AppointmentService {
	if events == nil {
		events = nopPublisher{}
	}
	return &appointmentService{
		repo:      repo,
		validator: validator,
		events:    events,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *appointmentService) Create(ctx context.Context, input *model.AppointmentCreate) (*model.Appointment, error) {
	if input != nil {
		s.sanitize(input)
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		Name:      input.Name,
		Phone:     input.Phone,
		Service:   input.Service,
		Date:      input.Date,
		Time:      input.Time,
		Status:    model.StatusPending,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		s.cfg.Log.Error("Failed to create appointment", "error", err)
		return nil, apperrors.StoreUnavailable("create appointment", err)
	}

	s.cfg.Log.Info("Appointment created successfully",
		"id", appointment.ID,
		"service", appointment.Service,
		"date", appointment.Date,
		"time", appointment.Time,
	)
	s.publish(ctx, model.EventAppointmentCreated, appointment.ID, appointment)
	return appointment, nil
}

func (s *appointmentService) List(ctx context.Context, search string) ([]*model.Appointment, error) {
	filter := repository.Filter{Search: sanitizer.SanitizeSearchTerm(search)}

	appointments, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list appointments", "error", err)
		return nil, apperrors.StoreUnavailable("list appointments", err)
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}

	s.cfg.Log.Debug("Appointment list completed",
		"search_set", filter.Search != "",
		"count", len(appointments),
	)
	return appointments, nil
}

// Confirm moves an appointment to Confirmed. Confirming twice is not an
// error; there is no path back to Pending.
func (s *appointmentService) Confirm(ctx context.Context, id string) (*model.Appointment, error) {
	appointment, err := s.repo.SetStatus(ctx, id, model.StatusConfirmed)
	if err != nil {
		return nil, s.translateLookupError(err, id, "confirm appointment")
	}

	s.cfg.Log.Info("Appointment confirmed successfully", "id", id)
	s.publish(ctx, model.EventAppointmentConfirmed, appointment.ID, appointment)
	return appointment, nil
}

func (s *appointmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translateLookupError(err, id, "delete appointment")
	}

	s.cfg.Log.Info("Appointment deleted successfully", "id", id)
	s.publish(ctx, model.EventAppointmentDeleted, id, nil)
	return nil
}

// --- Helpers ---

func (s *appointmentService) sanitize(a *model.AppointmentCreate) {
	a.Name = sanitizer.SanitizeText(a.Name)
	a.Phone = sanitizer.SanitizeText(a.Phone)
	a.Service = sanitizer.SanitizeText(a.Service)
	a.Date = sanitizer.SanitizeText(a.Date)
	a.Time = sanitizer.SanitizeText(a.Time)
}

func (s *appointmentService) validate(input *model.AppointmentCreate) error {
	err := s.validator.Validate(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		s.cfg.Log.Warn("Appointment validation failed", "error", err)
		return apperrors.Validation("Appointment validation failed", map[string]any{
			"missing": verrs.Missing(),
		})
	}
	return apperrors.Internal("Failed to validate appointment", err)
}

// translateLookupError maps repository errors for id-addressed operations.
// A malformed id cannot exist, so it is reported as not found.
func (s *appointmentService) translateLookupError(err error, id, operation string) error {
	if errors.Is(err, appointmentserrors.ErrNotFound) || errors.Is(err, appointmentserrors.ErrInvalidID) {
		s.cfg.Log.Warn("Appointment not found", "id", id, "operation", operation)
		return apperrors.NotFoundWithID(resourceName, id)
	}
	s.cfg.Log.Error("Failed to "+operation, "id", id, "error", err)
	return apperrors.StoreUnavailable(operation, err)
}

func (s *appointmentService) publish(ctx context.Context, eventType, id string, appointment *model.Appointment) {
	event := model.AppointmentEvent{
		Type:          eventType,
		AppointmentID: id,
		Appointment:   appointment,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.events.PublishAppointmentEvent(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish appointment event",
			"event_type", eventType,
			"id", id,
			"error", err,
		)
	}
}
