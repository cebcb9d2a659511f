/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package objectrocket

import (
	"context"
	"net/url"

	"github.com/objectrocket/objectrocket-go/errors"
	"github.com/objectrocket/objectrocket-go/models"
)

// Database is a read-only handle for one remote database. It carries the
// database name and the descriptor returned by the listing call; it holds
// no remote state of its own and delegates every operation through the
// owning Client.
type Database struct {
	// Name uniquely identifies the database within the account.
	Name string

	// Raw is the full descriptor the listing endpoint returned.
	Raw models.Document

	c *Client
}

// ListDatabases returns a handle for every database visible to the
// credential that passes the filter. The listing is fetched in a single
// call and filtered by exact name locally, matching the behavior of the
// service's own tooling. An unmatched filter yields an empty slice, not an
// error. Ordering follows the remote response and is not guaranteed stable.
func (c *Client) ListDatabases(ctx context.Context, filter *models.DatabaseFilter) ([]*Database, error) {
	var items []models.Document
	if err := c.call(ctx, "db", nil, &items); err != nil {
		return nil, err
	}

	dbs := make([]*Database, 0, len(items))
	for _, item := range items {
		name, _ := item["name"].(string)
		if !filter.Matches(name) {
			continue
		}
		dbs = append(dbs, &Database{Name: name, Raw: item, c: c})
	}
	return dbs, nil
}

// AddDatabase creates a database with an initial user, or adds the user
// when the database already exists, then returns a fresh handle.
func (c *Client) AddDatabase(ctx context.Context, name, user, password string) (*Database, error) {
	doc := models.Document{user: password}
	if err := c.call(ctx, "db/"+url.PathEscape(name)+"/add", doc, nil); err != nil {
		return nil, err
	}

	dbs, err := c.ListDatabases(ctx, &models.DatabaseFilter{Name: name})
	if err != nil {
		return nil, err
	}
	if len(dbs) == 0 {
		return nil, errors.NewNotFoundError("database", name)
	}
	return dbs[0], nil
}

// AddUser adds a user to an existing database. The remote API treats
// database and user creation as one operation.
func (c *Client) AddUser(ctx context.Context, database, user, password string) (*Database, error) {
	return c.AddDatabase(ctx, database, user, password)
}

// Collection returns a handle for the named collection. Construction is
// purely local; no network call happens until an operation is invoked on
// the handle.
func (db *Database) Collection(name string) *Collection {
	return &Collection{db: db, name: name}
}

// Refresh re-pulls the database descriptor from the listing endpoint.
func (db *Database) Refresh(ctx context.Context) error {
	dbs, err := db.c.ListDatabases(ctx, &models.DatabaseFilter{Name: db.Name})
	if err != nil {
		return err
	}
	if len(dbs) == 0 {
		return errors.NewNotFoundError("database", db.Name)
	}
	db.Raw = dbs[0].Raw
	return nil
}
