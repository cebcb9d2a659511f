/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common sentinel errors
var (
	// ErrNoAPIKey is returned when a client is constructed without a credential
	ErrNoAPIKey = errors.New("no API key provided")

	// ErrAuthentication is returned when the remote service rejects the credential
	ErrAuthentication = errors.New("credential rejected")

	// ErrNetwork is returned on transport-level failure (DNS, connect, timeout)
	ErrNetwork = errors.New("transport failure")

	// ErrService is returned when the remote service reports a failure
	ErrService = errors.New("service failure")

	// ErrDecoding is returned when a response body cannot be parsed
	ErrDecoding = errors.New("undecodable response")

	// ErrNotFound is returned when a named remote resource does not exist
	ErrNotFound = errors.New("resource not found")
)

// AuthenticationError represents a missing or rejected credential
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("authentication failed: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("authentication failed: %s", http.StatusText(e.Status))
	}
	return fmt.Sprintf("authentication failed (%d): %s", e.Status, e.Message)
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// NetworkError wraps a transport-level failure
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// ServiceError represents a non-success HTTP status not covered by the
// authentication kind
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service error (%d): %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("service error (%d): %s", e.Status, e.Message)
}

func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

// APIError represents a nonzero rc code inside a 2xx response envelope.
// It belongs to the service failure kind.
type APIError struct {
	RC      int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (rc=%d): %s", e.RC, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrService
}

// DecodingError wraps a response parsing failure
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding error: %v", e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

func (e *DecodingError) Is(target error) bool {
	return target == ErrDecoding
}

// NotFoundError represents a named resource the remote service does not know
type NotFoundError struct {
	Type string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Type, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Helper functions for creating errors

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(status int, message string) error {
	return &AuthenticationError{Status: status, Message: message}
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(err error) error {
	return &NetworkError{Err: err}
}

// NewServiceError creates a new ServiceError
func NewServiceError(status int, message string) error {
	return &ServiceError{Status: status, Message: message}
}

// NewAPIError creates a new APIError
func NewAPIError(rc int, message string) error {
	return &APIError{RC: rc, Message: message}
}

// NewDecodingError creates a new DecodingError
func NewDecodingError(err error) error {
	return &DecodingError{Err: err}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resourceType, name string) error {
	return &NotFoundError{Type: resourceType, Name: name}
}

// IsAuthentication checks if an error is an authentication error
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication) || errors.Is(err, ErrNoAPIKey)
}

// IsNetwork checks if an error is a transport-level error
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsService checks if an error is a service error
func IsService(err error) bool {
	return errors.Is(err, ErrService)
}

// IsDecoding checks if an error is a decoding error
func IsDecoding(err error) bool {
	return errors.Is(err, ErrDecoding)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsAPIError extracts an APIError from an error chain, if present
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
