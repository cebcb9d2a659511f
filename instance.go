/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package objectrocket

import (
	"context"

	"github.com/objectrocket/objectrocket-go/models"
)

// Details retrieves the descriptor of the instance the credential is
// bound to.
func (c *Client) Details(ctx context.Context) (*models.InstanceDetails, error) {
	var details models.InstanceDetails
	if err := c.call(ctx, "instance", nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Status retrieves instance status details. Pass plus=true for the
// extended report.
func (c *Client) Status(ctx context.Context, plus bool) (models.Document, error) {
	stub := "serverStatus"
	if plus {
		stub = "serverStatusPlus"
	}
	var status models.Document
	if err := c.call(ctx, stub, nil, &status); err != nil {
		return nil, err
	}
	return status, nil
}

// SpaceUsage retrieves storage utilization for the instance.
func (c *Client) SpaceUsage(ctx context.Context) (*models.SpaceUsage, error) {
	var usage models.SpaceUsage
	if err := c.call(ctx, "spaceusage/get", nil, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// Logs retrieves the instance log stream.
func (c *Client) Logs(ctx context.Context) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	if err := c.call(ctx, "logs/get", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Profile retrieves profiler data, optionally narrowed by query.
func (c *Client) Profile(ctx context.Context, query models.Document) ([]models.Document, error) {
	if query == nil {
		query = models.Document{}
	}
	var entries []models.Document
	if err := c.call(ctx, "profiler/get", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ProfilingLevels retrieves the current profiling level for every database
// in the instance.
func (c *Client) ProfilingLevels(ctx context.Context) (map[string]int, error) {
	var levels map[string]int
	if err := c.call(ctx, "profiling_level/get", nil, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// SetProfilingLevel sets the profiling level, for one database when
// database is non-empty or instance-wide otherwise.
func (c *Client) SetProfilingLevel(ctx context.Context, database string, level int) error {
	doc := models.Document{
		"level": level,
	}
	if database != "" {
		doc["db"] = database
	}
	return c.call(ctx, "profiling_level/set", doc, nil)
}
