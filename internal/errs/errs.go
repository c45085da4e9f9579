// Package errs defines the error taxonomy shared by the announcement core
// and the command layer.
package errs

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeUnknown     = "UNKNOWN"
	CodeValidation  = "VALIDATION"
	CodePersistence = "PERSISTENCE"
	CodeDelivery    = "DELIVERY"
	CodeConfig      = "CONFIG"
)

// Sentinels wrapped by the typed errors below. Match them with errors.Is.
var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidDateTime = errors.New("invalid date/time")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyMessage    = errors.New("empty message")
	ErrCorrupt         = errors.New("stored data is corrupt")
)

// ApplicationError is implemented by every error in this package.
type ApplicationError interface {
	error
	Code() string
	Message() string
	Unwrap() error
}

// baseError is the common base of the typed errors.
type baseError struct {
	code    string
	message string
	err     error
}

func (e *baseError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}

	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.err
}

// Message returns the human readable part without the wrapped cause.
func (e *baseError) Message() string {
	return e.message
}

// Code returns the code of the first ApplicationError in err's chain,
// or CodeUnknown if there is none.
func Code(err error) string {
	var appErr ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Code()
	}

	return CodeUnknown
}

// Message returns the message of the first ApplicationError in err's chain
// without its cause, or err.Error() if there is none.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var appErr ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}

// ValidationError reports bad caller input. No state was changed.
type ValidationError struct {
	baseError
}

func NewValidationError(message string, cause error) error {
	return &ValidationError{baseError{code: CodeValidation, message: message, err: cause}}
}

// PersistenceError reports that durable storage could not be read or written.
type PersistenceError struct {
	baseError
}

func NewPersistenceError(message string, cause error) error {
	return &PersistenceError{baseError{code: CodePersistence, message: message, err: cause}}
}

// DeliveryError reports that the notifier failed to deliver a message.
type DeliveryError struct {
	baseError
}

func NewDeliveryError(message string, cause error) error {
	return &DeliveryError{baseError{code: CodeDelivery, message: message, err: cause}}
}

// ConfigError reports invalid or missing configuration.
type ConfigError struct {
	baseError
}

func NewConfigError(message string, cause error) error {
	return &ConfigError{baseError{code: CodeConfig, message: message, err: cause}}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsPersistence reports whether err carries a PersistenceError.
func IsPersistence(err error) bool {
	var p *PersistenceError
	return errors.As(err, &p)
}
