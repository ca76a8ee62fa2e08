package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"beautycabin/pkg/config"
	"beautycabin/pkg/contracts"
	apperrors "beautycabin/pkg/errors"
	httputil "beautycabin/pkg/http"
	"beautycabin/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg     *config.Config
	handler http.Handler
	server  *http.Server
	onStop  []func()
}

func NewApplication(cfg *config.Config, handlers ...contracts.Handler) *Application {
	a := &Application{cfg: cfg}
	a.setHandler(handlers)
	a.setServer()
	return a
}

// OnShutdown registers fn to run after the server stopped accepting requests,
// in registration order.
func (a *Application) OnShutdown(fn func()) {
	a.onStop = append(a.onStop, fn)
}

// Handler returns the fully wrapped HTTP handler.
func (a *Application) Handler() http.Handler {
	return a.handler
}

func (a *Application) setHandler(handlers []contracts.Handler) {
	router := httprouter.New()
	router.RedirectTrailingSlash = false
	router.NotFound = http.HandlerFunc(a.notFound)
	router.MethodNotAllowed = http.HandlerFunc(a.methodNotAllowed)
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	var h http.Handler = router
	h = middleware.RequestTimeout(a.cfg.RequestTimeout)(h)
	h = middleware.ContentTypeValidation(a.cfg.Log)(h)
	h = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(h)
	h = middleware.CORS(a.cfg.CORSAllowedOrigins, a.cfg.Log)(h)
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	a.handler = h

	a.cfg.Log.Info("HTTP routes configured", "handlers", len(handlers))
}

func (a *Application) notFound(w http.ResponseWriter, r *http.Request) {
	if err := httputil.WriteError(w, apperrors.NotFound("Route")); err != nil {
		a.cfg.Log.Error("failed to write error response", "handler", "NotFound", "operation", "WriteError", "error", err)
	}
}

func (a *Application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if err := httputil.WriteError(w, apperrors.MethodNotAllowed()); err != nil {
		a.cfg.Log.Error("failed to write error response", "handler", "MethodNotAllowed", "operation", "WriteError", "error", err)
	}
}

func (a *Application) setServer() {
	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      a.handler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			a.cfg.Log.Fatal("HTTP server failed", "error", err)
		}

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Stopping background workers...")
	for _, fn := range a.onStop {
		fn()
	}
	a.cfg.Log.Info("Server stopped gracefully")
}
