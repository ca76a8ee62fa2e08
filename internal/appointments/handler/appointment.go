package handler

import (
	"net/http"

	"beautycabin/internal/appointments/service"
	httputil "beautycabin/pkg/http"
	"beautycabin/pkg/logger"
	"beautycabin/pkg/middleware"
	"beautycabin/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const searchParam = "q"

type AppointmentHandler struct {
	service service.AppointmentService
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewAppointmentHandler(service service.AppointmentService, auth *middleware.Authenticator, log *logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.AppointmentCreate
	if err := httputil.DecodeJSON(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	appointment, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, appointment); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	appointments, err := h.service.List(r.Context(), r.URL.Query().Get(searchParam))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, appointments); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	appointment, err := h.service.Confirm(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Confirm", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, appointment); err != nil {
		h.log.Error("failed to write success response", "handler", "Confirm", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

// RegisterRoutes mounts the appointment routes. Booking stays public; the
// admin operations require a bearer token.
func (h *AppointmentHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/appointments", h.Create)
	router.GET("/appointments", h.auth.Require(h.GetAll))
	router.PATCH("/appointments/:id/confirm", h.auth.Require(h.Confirm))
	router.DELETE("/appointments/:id", h.auth.Require(h.Delete))
}
