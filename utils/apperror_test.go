package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NewValidationError("bad input"), http.StatusBadRequest},
		{NewConflictError("exists"), http.StatusConflict},
		{NewAuthError("nope"), http.StatusUnauthorized},
		{NewForbiddenError("not yours"), http.StatusForbidden},
		{NewNotFoundError("gone"), http.StatusNotFound},
		{NewUpstreamError("upstream"), http.StatusInternalServerError},
		{NewInternalError("boom"), http.StatusInternalServerError},
		{errors.New("raw"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NewNotFoundError("gone")), http.StatusNotFound},
	}

	for _, tc := range cases {
		if got := ErrorStatus(tc.err); got != tc.status {
			t.Errorf("ErrorStatus(%v) = %d, want %d", tc.err, got, tc.status)
		}
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := NewValidationError("name is required")
	if err.Error() != "name is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}
