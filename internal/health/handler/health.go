package handler

import (
	"context"
	"net/http"
	"time"

	httputil "beautycabin/pkg/http"
	"beautycabin/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type StatusResponse struct {
	Status string `json:"status"`
}

type LivenessResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type ReadinessResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthHandler struct {
	store Pinger
	log   *logger.Logger
}

func NewHealthHandler(store Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		store: store,
		log:   log,
	}
}

// Root answers without touching the store.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, StatusResponse{Status: "Backend running"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Root", "operation", "WriteSuccess", "error", err)
	}
}

// DBCheck only reports that the process is serving; it does not ping the store.
func (h *HealthHandler) DBCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, LivenessResponse{OK: true, Message: "Backend is live"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "DBCheck", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Error("Database health check failed",
			"error", err,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, ReadinessResponse{
			Status:   "unavailable",
			Database: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, ReadinessResponse{
		Status:   "ready",
		Database: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.GET("/db-check", h.DBCheck)
	router.GET("/ready", h.Ready)
}
