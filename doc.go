/*
Package objectrocket is a client for the ObjectRocket hosted MongoDB
management API.

A Client is bound to a single API key and talks to the remote management
service; every operation is one synchronous request with no local caching.
Databases and collections are represented by lightweight handles that carry
a name and delegate all network traffic back through the owning Client.

Basic Usage:

	cfg := objectrocket.Config{APIKey: "f8f0f3c679dd8b43e9ba934f4447e0cc"}
	client, err := objectrocket.New(cfg)
	if err != nil {
	    log.Fatal(err)
	}

	// Discover databases by name.
	dbs, err := client.ListDatabases(ctx, &models.DatabaseFilter{Name: "test"})

	// Collection handles are purely local; only Get touches the network.
	docs, err := dbs[0].Collection("test").Get(ctx, nil)

Typed retrieval is available through generics:

	users, err := objectrocket.GetDocuments[User](ctx, db.Collection("users"), nil)

Errors carry a semantic taxonomy (authentication, network, service,
decoding) in the errors subpackage, checkable with the standard errors.Is
or the provided helpers:

	if orerrors.IsAuthentication(err) {
	    // key was rejected by the remote service
	}

The Client is safe for concurrent use; no call mutates shared state.
*/
package objectrocket
