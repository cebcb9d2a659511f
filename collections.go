/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package objectrocket

import (
	"context"
	"fmt"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"github.com/objectrocket/objectrocket-go/codec"
	"github.com/objectrocket/objectrocket-go/errors"
	"github.com/objectrocket/objectrocket-go/models"
)

// Collection is a read-only view of one named collection inside a
// database. Each operation is exactly one network call scoped to
// (database name, collection name).
type Collection struct {
	db   *Database
	name string
}

// Name returns the collection name.
func (col *Collection) Name() string { return col.name }

// Database returns the owning database handle.
func (col *Collection) Database() *Database { return col.db }

func (col *Collection) stub(op string) string {
	return fmt.Sprintf("db/%s/collection/%s/%s",
		url.PathEscape(col.db.Name), url.PathEscape(col.name), op)
}

// Get retrieves documents from the collection. A nil filter retrieves
// everything; a non-nil filter narrows results by field equality, applied
// by the remote service.
func (col *Collection) Get(ctx context.Context, filter models.Document) ([]models.Document, error) {
	if filter == nil {
		filter = models.Document{}
	}
	var docs []models.Document
	if err := col.db.c.call(ctx, col.stub("get"), filter, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Add stores a document in the collection.
func (col *Collection) Add(ctx context.Context, doc models.Document) error {
	if doc == nil {
		doc = models.Document{}
	}
	return col.db.c.call(ctx, col.stub("add"), doc, nil)
}

// Update updates documents in the collection.
func (col *Collection) Update(ctx context.Context, doc models.Document) error {
	if doc == nil {
		doc = models.Document{}
	}
	return col.db.c.call(ctx, col.stub("update"), doc, nil)
}

// Delete removes documents matching doc from the collection.
func (col *Collection) Delete(ctx context.Context, doc models.Document) error {
	if doc == nil {
		doc = models.Document{}
	}
	return col.db.c.call(ctx, col.stub("delete"), doc, nil)
}

// Stats fetches collection statistics. A collection the service has no
// stats for yet reports a nonzero rc; that case yields an empty document
// rather than an error.
func (col *Collection) Stats(ctx context.Context) (models.Document, error) {
	var stats models.Document
	err := col.db.c.call(ctx, col.stub("stats/get"), nil, &stats)
	if err != nil {
		if _, ok := errors.AsAPIError(err); ok {
			return models.Document{}, nil
		}
		return nil, err
	}
	if stats == nil {
		stats = models.Document{}
	}
	return stats, nil
}

// GetTyped retrieves documents and decodes each through the codec
// registered for this collection name. Collections without a registered
// codec fail with the codec package's lookup error.
func (col *Collection) GetTyped(ctx context.Context, filter models.Document) ([]interface{}, error) {
	if filter == nil {
		filter = models.Document{}
	}
	var raws []jsoniter.RawMessage
	if err := col.db.c.call(ctx, col.stub("get"), filter, &raws); err != nil {
		return nil, err
	}

	out := make([]interface{}, 0, len(raws))
	for _, raw := range raws {
		item, err := codec.Decode(col.name, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// GetDocuments retrieves documents from col decoded directly into the
// caller's type.
func GetDocuments[T any](ctx context.Context, col *Collection, filter models.Document) ([]T, error) {
	if filter == nil {
		filter = models.Document{}
	}
	var out []T
	if err := col.db.c.call(ctx, col.stub("get"), filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}
