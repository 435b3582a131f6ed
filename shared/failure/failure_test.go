package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lodgedesk/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "SelectOneCustomer",
			failure: failure.SelectOneCustomer,
			code:    http.StatusBadRequest,
			message: "Please select a customer to view the conversation.",
		},
		{
			name:    "SelectExactlyOneCustomer",
			failure: failure.SelectExactlyOneCustomer,
			code:    http.StatusBadRequest,
			message: "Please select exactly one customer to view the conversation.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad input"), code: http.StatusBadRequest},
		{name: "NotFound", err: failure.NotFound("customer not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("customer already exists"), code: http.StatusConflict},
		{name: "Unavailable", err: failure.Unavailable(errors.New("connection refused")), code: http.StatusServiceUnavailable},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, code)
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.Unavailable(nil) != nil {
		t.Error("expected Unavailable(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, code)
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("updating status: %w", failure.NotFound("customer not found"))

	if !failure.IsNotFound(wrapped) {
		t.Error("expected wrapped not-found failure to be detected")
	}
	if failure.IsConflict(wrapped) {
		t.Error("did not expect wrapped not-found failure to be a conflict")
	}
}
