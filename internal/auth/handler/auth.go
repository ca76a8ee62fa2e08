package handler

import (
	"net/http"

	"beautycabin/internal/auth/service"
	httputil "beautycabin/pkg/http"
	"beautycabin/pkg/logger"
	"beautycabin/pkg/middleware"
	"beautycabin/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AuthHandler struct {
	service service.AuthService
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewAuthHandler(service service.AuthService, auth *middleware.Authenticator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Login", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Login", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.Logout(r.Context(), httputil.BearerToken(r)); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Logout", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/auth/login", h.Login)
	router.POST("/auth/logout", h.auth.Require(h.Logout))
}
