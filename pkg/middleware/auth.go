package middleware

import (
	"context"
	"net/http"

	apperrors "beautycabin/pkg/errors"
	httputil "beautycabin/pkg/http"
	"beautycabin/pkg/logger"
	"beautycabin/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const AdminIdentityKey contextKey = "admin_identity"

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*model.AdminIdentity, error)
}

// Authenticator guards individual routes with a bearer token check.
type Authenticator struct {
	verifier TokenVerifier
	log      *logger.Logger
}

func NewAuthenticator(verifier TokenVerifier, log *logger.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		log:      log,
	}
}

// Require runs next only when the request carries a valid bearer token. The
// verified identity is available to next through AdminFromContext.
func (a *Authenticator) Require(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := httputil.BearerToken(r)
		if token == "" {
			a.reject(w, r, apperrors.Unauthorized("Missing bearer token"), "missing token")
			return
		}

		identity, err := a.verifier.Verify(r.Context(), token)
		if err != nil {
			a.reject(w, r, err, "verification failed")
			return
		}

		ctx := context.WithValue(r.Context(), AdminIdentityKey, identity)
		next(w, r.WithContext(ctx), ps)
	}
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, err error, reason string) {
	a.log.Warn("Request rejected by authenticator",
		"request_id", RequestIDFromContext(r.Context()),
		"reason", reason,
		"method", r.Method,
		"path", r.URL.Path,
	)
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		a.log.Error("failed to write error response", "handler", "Authenticator", "operation", "WriteError", "error", writeErr)
	}
}

func AdminFromContext(ctx context.Context) (*model.AdminIdentity, bool) {
	identity, ok := ctx.Value(AdminIdentityKey).(*model.AdminIdentity)
	return identity, ok && identity != nil
}
