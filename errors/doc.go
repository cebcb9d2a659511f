/*
Package errors provides semantic error types for the ObjectRocket client.

Every failed API call surfaces as exactly one of the taxonomy kinds below,
checkable with the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrNoAPIKey       = errors.New("no API key provided")
	    ErrAuthentication = errors.New("credential rejected")
	    ErrNetwork        = errors.New("transport failure")
	    ErrService        = errors.New("service failure")
	    ErrDecoding       = errors.New("undecodable response")
	    ErrNotFound       = errors.New("resource not found")
	)

Usage:

	dbs, err := client.ListDatabases(ctx, nil)
	if err != nil {
	    if errors.IsAuthentication(err) {
	        // key is missing or was rejected with a 401/403
	    }
	    if errors.IsNetwork(err) {
	        // DNS, connection refused, timeout
	    }
	    return err
	}

An APIError carries the nonzero rc code reported inside an otherwise
successful HTTP response; it belongs to the service failure kind.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
