/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAuthenticationError(t *testing.T) {
	err := NewAuthenticationError(401, "invalid api key")

	expected := "authentication failed (401): invalid api key"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrAuthentication) {
		t.Error("Expected error to match ErrAuthentication")
	}
	if !IsAuthentication(err) {
		t.Error("Expected IsAuthentication to return true")
	}
	if IsService(err) {
		t.Error("Expected IsService to return false")
	}
}

func TestAuthenticationErrorWithoutStatus(t *testing.T) {
	err := NewAuthenticationError(0, "no API key provided")

	expected := "authentication failed: no API key provided"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestNoAPIKeyIsAuthentication(t *testing.T) {
	if !IsAuthentication(ErrNoAPIKey) {
		t.Error("Expected ErrNoAPIKey to belong to the authentication kind")
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError(cause)

	expected := "network error: connection refused"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsNetwork(err) {
		t.Error("Expected IsNetwork to return true")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected wrapped cause to be reachable with errors.Is")
	}
}

func TestServiceError(t *testing.T) {
	err := NewServiceError(500, "internal failure")

	expected := "service error (500): internal failure"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsService(err) {
		t.Error("Expected IsService to return true")
	}
	if IsAuthentication(err) {
		t.Error("Expected IsAuthentication to return false")
	}

	bare := NewServiceError(503, "")
	expected = "service error (503): Service Unavailable"
	if bare.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, bare.Error())
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(1, "fail")

	expected := "api error (rc=1): fail"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsService(err) {
		t.Error("Expected an APIError to belong to the service kind")
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatal("Expected AsAPIError to find the APIError")
	}
	if apiErr.RC != 1 || apiErr.Message != "fail" {
		t.Errorf("Expected rc=1 msg=fail, got rc=%d msg=%q", apiErr.RC, apiErr.Message)
	}

	if _, ok := AsAPIError(NewServiceError(500, "x")); ok {
		t.Error("Expected AsAPIError to miss on a plain ServiceError")
	}
}

func TestAPIErrorWrapped(t *testing.T) {
	err := fmt.Errorf("listing failed: %w", NewAPIError(23, "bad doc"))

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatal("Expected AsAPIError to unwrap the chain")
	}
	if apiErr.RC != 23 {
		t.Errorf("Expected rc=23, got %d", apiErr.RC)
	}
	if !IsService(err) {
		t.Error("Expected IsService to hold through wrapping")
	}
}

func TestDecodingError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewDecodingError(cause)

	if !IsDecoding(err) {
		t.Error("Expected IsDecoding to return true")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected wrapped cause to be reachable with errors.Is")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("database", "test")

	expected := `database "test" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !IsNotFound(err) {
		t.Error("Expected IsNotFound to return true")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNoAPIKey,
		ErrAuthentication,
		ErrNetwork,
		ErrService,
		ErrDecoding,
		ErrNotFound,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("Sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
