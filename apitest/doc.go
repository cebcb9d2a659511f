/*
Package apitest provides an in-memory stand-in for the ObjectRocket
management API, for testing clients without network access.

A Server keeps databases, collections, documents and ACLs in a
mutex-guarded store and serves them over net/http/httptest with the same
form-encoded request and rc/data/msg envelope the production API uses.
Fault injection hooks force HTTP statuses or nonzero rc codes, and a call
counter supports asserting how many requests an operation issued:

	srv := apitest.New("test-key")
	defer srv.Close()

	srv.SeedDatabase("test")
	srv.SeedDocuments("test", "entries", models.Document{"a": 1})

	client, _ := objectrocket.New(objectrocket.Config{
	    APIKey:    "test-key",
	    APIServer: srv.URL(),
	})

The document matching implemented here is top-level field equality; it is
deliberately simpler than the production query engine.
*/
package apitest
