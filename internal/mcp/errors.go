package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/fixture"
	"github.com/rpggio/docseed/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
	cause        error
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// MapError maps domain errors to MCP error codes. Unknown errors pass through.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repository.ErrDuplicateKey):
		return &APIError{Code: "DUPLICATE_KEY", Message: err.Error(), RecoveryHint: "Collections already hold fixture ids; seed into an empty store", cause: err}
	case errors.Is(err, fixture.ErrInvalidFixture):
		return &APIError{Code: "INVALID_FIXTURE", Message: err.Error(), cause: err}
	case errors.Is(err, counter.ErrUnknownCounter):
		return &APIError{Code: "UNKNOWN_COUNTER", Message: err.Error(), RecoveryHint: "Use clients or projects", cause: err}
	default:
		return err
	}
}
