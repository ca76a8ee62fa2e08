package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"beautycabin/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func newHealthRouter(ping PingFunc) (*httprouter.Router, *int) {
	calls := 0
	counted := PingFunc(func(ctx context.Context) error {
		calls++
		return ping(ctx)
	})
	router := httprouter.New()
	NewHealthHandler(counted, logger.Nop()).RegisterRoutes(router)
	return router, &calls
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRootAndDBCheck_NeverPing(t *testing.T) {
	router, calls := newHealthRouter(func(context.Context) error {
		return errors.New("store down")
	})

	rec := get(router, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Backend running"}`, rec.Body.String())

	rec = get(router, "/db-check")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"message":"Backend is live"}`, rec.Body.String())

	assert.Zero(t, *calls)
}

func TestReady(t *testing.T) {
	router, calls := newHealthRouter(func(context.Context) error { return nil })

	rec := get(router, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","database":"ok"}`, rec.Body.String())
	assert.Equal(t, 1, *calls)
}

func TestReady_StoreDown(t *testing.T) {
	router, _ := newHealthRouter(func(context.Context) error { return errors.New("no reachable servers") })

	rec := get(router, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable","database":"error"}`, rec.Body.String())
}
