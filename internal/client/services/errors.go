package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/common"
	"github.com/go-playground/validator/v10"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNoRefreshToken       = errors.New("no refresh token")
	ErrSessionExpired       = errors.New("session expired")
	ErrNotAuthenticated     = errors.New("not authenticated")
)

// Error is a failed service call with a user-facing message.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// describe wraps err with the server message, or fallback when the server
// sent none.
func describe(err error, fallback string) error {
	return &Error{Message: client.Message(err, fallback), Err: err}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validationError(err error, format func(string) string) error {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		return &Error{
			Message: format(fields[0].Field()),
			Err:     fmt.Errorf("%w: %w", common.ErrorValidation, err),
		}
	}
	return &Error{Message: format(err.Error()), Err: fmt.Errorf("%w: %w", common.ErrorValidation, err)}
}
