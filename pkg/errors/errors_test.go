package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "Appointment not found",
			},
			expected: "NOT_FOUND: Appointment not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeStoreUnavailable,
				Message: "Failed to list appointments",
				Err:     errors.New("connection refused"),
			},
			expected: "STORE_UNAVAILABLE: Failed to list appointments (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", Validation("bad", nil), CodeValidation, http.StatusBadRequest},
		{"invalid input", InvalidInput("bad json"), CodeInvalidInput, http.StatusBadRequest},
		{"unauthorized", Unauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"invalid credentials", InvalidCredentials(), CodeInvalidCredentials, http.StatusUnauthorized},
		{"not found", NotFound("Appointment"), CodeNotFound, http.StatusNotFound},
		{"store unavailable", StoreUnavailable("list appointments", errors.New("down")), CodeStoreUnavailable, http.StatusInternalServerError},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"method not allowed", MethodNotAllowed(), CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"unsupported media type", UnsupportedMediaType(), CodeUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"payload too large", PayloadTooLarge(10), CodePayloadTooLarge, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.StatusCode())
		})
	}
}

func TestAppError_StatusCodeDefaultsToInternal(t *testing.T) {
	err := &AppError{Code: "SOMETHING"}
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
}

func TestAppError_Unwrap(t *testing.T) {
	original := errors.New("original error")
	appErr := Wrap(original, CodeInternal, "wrapped", http.StatusInternalServerError)

	assert.Same(t, original, errors.Unwrap(appErr))
	assert.ErrorIs(t, appErr, original)
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Appointment", "12345")

	assert.Equal(t, "Appointment not found", err.Message)
	assert.Equal(t, "12345", err.Details["id"])
	assert.Equal(t, "Appointment", err.Details["resource"])
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Appointment")
	assert.Same(t, appErr, AsAppError(appErr))

	wrapped := fmt.Errorf("service: %w", appErr)
	assert.Same(t, appErr, AsAppError(wrapped))

	regular := errors.New("regular error")
	result := AsAppError(regular)
	assert.Equal(t, CodeInternal, result.Code)
	assert.Same(t, regular, result.Err)
}

func TestIsAppErrorAndHasCode(t *testing.T) {
	assert.True(t, IsAppError(Unauthorized("x")))
	assert.False(t, IsAppError(errors.New("plain")))

	assert.True(t, HasCode(fmt.Errorf("wrap: %w", NotFound("x")), CodeNotFound))
	assert.False(t, HasCode(NotFound("x"), CodeValidation))
	assert.False(t, HasCode(nil, CodeNotFound))
}

func TestAppError_ToJSON(t *testing.T) {
	err := Validation("Appointment validation failed", map[string]any{"missing": []string{"name"}})

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(err.ToJSON(), &body))
	assert.Equal(t, CodeValidation, body.Code)
	assert.Equal(t, "Appointment validation failed", body.Message)
	assert.Equal(t, []any{"name"}, body.Details["missing"])
}
