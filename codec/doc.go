/*
Package codec manages per-collection decoders for typed document retrieval.

Collections hold schemaless documents; applications that know the shape of
a collection can register a decoder for it and get concrete types back
instead of raw maps:

	codec.RegisterType[User]("users")

	items, _ := db.Collection("users").GetTyped(ctx, nil)
	user := items[0].(*User)

The registry is thread-safe and should be populated during initialization,
typically in init() functions. Registering the same collection twice
panics to prevent accidental overrides.
*/
package codec
