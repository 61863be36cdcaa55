package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/kaixianglim/event-recommender/internal/model"
	"github.com/kaixianglim/event-recommender/internal/repository"
)

// validationFailure produces a real validator error wrapped the way the
// service layer wraps it.
func validationFailure(t *testing.T) error {
	t.Helper()
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(model.CreateUserRequest{})
	if err == nil {
		t.Fatal("expected validation failure for empty request")
	}
	return fmt.Errorf("invalid user: %w", err)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get user: %w", repository.ErrNotFound), http.StatusNotFound},
		// Register on an already-registered pair ends here: 409, never 500.
		{"duplicate registration", repository.ErrAlreadyRegistered, http.StatusConflict},
		{"wrapped duplicate registration", fmt.Errorf("register: %w", repository.ErrAlreadyRegistered), http.StatusConflict},
		{"validation failure", nil, http.StatusBadRequest}, // filled in below
		{"store failure", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}
	tests[4].err = validationFailure(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err, "not found")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body model.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not the error envelope: %v", err)
			}
			if body.Error == "" {
				t.Error("error envelope has empty message")
			}
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.New("dial tcp 10.0.0.3:5432: connection refused"), "not found")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "dial tcp") {
		t.Errorf("driver detail leaked to client: %s", rec.Body.String())
	}
}
