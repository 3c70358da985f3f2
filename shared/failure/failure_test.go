package failure_test

import (
	"checkinhq/shared/failure"
	"errors"
	"net/http"
	"testing"
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
		{"InvalidPageParam", failure.InvalidPageParam, http.StatusBadRequest, "invalid page parameter"},
		{"InvalidLimitParam", failure.InvalidLimitParam, http.StatusBadRequest, "invalid limit parameter"},
		{"ForbiddenError", failure.ForbiddenError, http.StatusForbidden, "You don't have the required permissions"},
		{"ResourceRestrictedError", failure.ResourceRestrictedError, http.StatusForbidden, "You don't have permission to access this resource"},
		{"AdminRequiredError", failure.AdminRequiredError, http.StatusForbidden, "Admin access required"},
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
		name    string
		result  error
		code    int
		message string
	}{
		{"BadRequestFromString", failure.BadRequestFromString("custom bad request"), http.StatusBadRequest, "custom bad request"},
		{"Unauthorized", failure.Unauthorized("token expired"), http.StatusUnauthorized, "token expired"},
		{"InternalErrorFromString", failure.InternalErrorFromString("failed to fetch analytics"), http.StatusInternalServerError, "failed to fetch analytics"},
		{"NotFound", failure.NotFound("booking not found"), http.StatusNotFound, "booking not found"},
		{"Conflict", failure.Conflict("Email already exists"), http.StatusConflict, "Email already exists"},
		{"Forbidden", failure.Forbidden("Access denied"), http.StatusForbidden, "Access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestErrorWrappers(t *testing.T) {
	tests := []struct {
		name    string
		wrap    func(error) error
		input   error
		code    int
		message string
	}{
		{"BadRequest with error", failure.BadRequest, errors.New("validation failed"), http.StatusBadRequest, "validation failed"},
		{"BadRequest with nil", failure.BadRequest, nil, 0, ""},
		{"InternalError with error", failure.InternalError, errors.New("database connection failed"), http.StatusInternalServerError, "database connection failed"},
		{"InternalError with nil", failure.InternalError, nil, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.wrap(tt.input)

			if tt.input == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}
			if f.Code != tt.code || f.Message != tt.message {
				t.Errorf("expected {%d %s}, got %+v", tt.code, tt.message, f)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"failure error", &failure.Failure{Code: http.StatusBadRequest, Message: "test"}, http.StatusBadRequest},
		{"constructed failure", failure.BadRequestFromString("test"), http.StatusBadRequest},
		{"regular error", errors.New("regular error"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := failure.GetCode(tt.input); result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
