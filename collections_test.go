/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package objectrocket_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	objectrocket "github.com/objectrocket/objectrocket-go"
	"github.com/objectrocket/objectrocket-go/apitest"
	"github.com/objectrocket/objectrocket-go/codec"
	"github.com/objectrocket/objectrocket-go/models"
)

func seededCollection(t *testing.T, srv *apitest.Server, db, col string, docs ...models.Document) *objectrocket.Collection {
	t.Helper()
	srv.SeedDocuments(db, col, docs...)

	client := newTestClient(t, srv)
	dbs, err := client.ListDatabases(context.Background(), &models.DatabaseFilter{Name: db})
	require.NoError(t, err)
	require.Len(t, dbs, 1)
	return dbs[0].Collection(col)
}

func TestCollectionGet(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "entries",
		models.Document{"name": "first", "size": float64(1)},
		models.Document{"name": "second", "size": float64(2)},
	)

	before := srv.Calls()
	docs, err := col.Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), srv.Calls()-before, "get must issue exactly one call")

	require.Len(t, docs, 2)
	assert.Equal(t, "first", docs[0]["name"])
	assert.Equal(t, float64(1), docs[0]["size"])
	assert.Equal(t, "second", docs[1]["name"])
	assert.Equal(t, float64(2), docs[1]["size"])
}

func TestCollectionGetFiltered(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "entries",
		models.Document{"kind": "a", "v": float64(1)},
		models.Document{"kind": "b", "v": float64(2)},
	)

	docs, err := col.Get(context.Background(), models.Document{"kind": "a"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, float64(1), docs[0]["v"])
}

func TestCollectionAdd(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "entries")
	err := col.Add(context.Background(), models.Document{"name": "added"})
	require.NoError(t, err)

	stored := srv.Documents("test", "entries")
	require.Len(t, stored, 1)
	assert.Equal(t, "added", stored[0]["name"])
}

func TestCollectionDelete(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "entries",
		models.Document{"kind": "a"},
		models.Document{"kind": "b"},
	)

	require.NoError(t, col.Delete(context.Background(), models.Document{"kind": "a"}))

	stored := srv.Documents("test", "entries")
	require.Len(t, stored, 1)
	assert.Equal(t, "b", stored[0]["kind"])
}

func TestCollectionUpdate(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "entries",
		models.Document{"name": "x", "state": "old"},
	)

	require.NoError(t, col.Update(context.Background(), models.Document{"state": "new"}))

	stored := srv.Documents("test", "entries")
	require.Len(t, stored, 1)
	assert.Equal(t, "new", stored[0]["state"])
}

func TestCollectionStats(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "entries",
		models.Document{"name": "only"},
	)

	stats, err := col.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(1), stats["count"])
}

func TestCollectionStatsMissing(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()
	srv.SeedDatabase("test")

	client := newTestClient(t, srv)
	dbs, err := client.ListDatabases(context.Background(), &models.DatabaseFilter{Name: "test"})
	require.NoError(t, err)

	stats, err := dbs[0].Collection("never_written").Stats(context.Background())
	require.NoError(t, err, "a collection without stats yields an empty document, not an error")
	assert.Empty(t, stats)
}

type logLine struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

func TestGetDocumentsTyped(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "entries",
		models.Document{"name": "first", "size": float64(10)},
		models.Document{"name": "second", "size": float64(20)},
	)

	lines, err := objectrocket.GetDocuments[logLine](context.Background(), col, nil)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, logLine{Name: "first", Size: 10}, lines[0])
	assert.Equal(t, logLine{Name: "second", Size: 20}, lines[1])
}

func TestGetTypedWithCodec(t *testing.T) {
	codec.RegisterType[logLine]("codec_entries")

	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "codec_entries",
		models.Document{"name": "typed", "size": float64(5)},
	)

	items, err := col.GetTyped(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	line, ok := items[0].(*logLine)
	require.True(t, ok, "expected *logLine, got %T", items[0])
	assert.Equal(t, "typed", line.Name)
	assert.Equal(t, 5, line.Size)
}

func TestGetTypedWithoutCodec(t *testing.T) {
	srv := apitest.New(testAPIKey)
	defer srv.Close()

	col := seededCollection(t, srv, "test", "unregistered",
		models.Document{"name": "x"},
	)

	_, err := col.GetTyped(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no decoder registered")
}
