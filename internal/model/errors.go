package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the vehicle domain. Callers match them with
// errors.Is; constructors and mutators wrap them with fmt.Errorf("%w")
// to add context without losing the identity.
var (
	// ErrInvalidCapacity indicates a vehicle was constructed with a
	// non-positive seat count.
	ErrInvalidCapacity = errors.New("seats must be a positive integer")

	// ErrInvalidName indicates a passenger name was empty or consisted
	// only of whitespace after trimming.
	ErrInvalidName = errors.New("passenger name cannot be empty")

	// ErrVehicleFull indicates an add was attempted on a vehicle that is
	// already at capacity (under the reject policy; see FullPolicy).
	ErrVehicleFull = errors.New("vehicle is full")
)

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitRosterError indicates a roster file was missing or invalid.
	ExitRosterError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
