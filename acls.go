/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package objectrocket

import (
	"context"

	"github.com/objectrocket/objectrocket-go/errors"
	"github.com/objectrocket/objectrocket-go/models"
)

// ACL is a network access rule on the instance.
type ACL struct {
	CIDRMask    string `json:"cidr_mask"`
	Description string `json:"description"`

	c *Client
}

// ListACLs returns the instance ACLs passing the filter. Like database
// listing, the full set is fetched in one call and filtered by exact CIDR
// mask locally.
func (c *Client) ListACLs(ctx context.Context, filter *models.ACLFilter) ([]*ACL, error) {
	var acls []*ACL
	if err := c.call(ctx, "acl/get", nil, &acls); err != nil {
		return nil, err
	}

	out := make([]*ACL, 0, len(acls))
	for _, acl := range acls {
		if !filter.Matches(acl.CIDRMask) {
			continue
		}
		acl.c = c
		out = append(out, acl)
	}
	return out, nil
}

// AddACL grants access to a CIDR range and returns the created rule.
func (c *Client) AddACL(ctx context.Context, cidr, description string) (*ACL, error) {
	doc := models.Document{
		"cidr_mask":   cidr,
		"description": description,
	}
	if err := c.call(ctx, "acl/add", doc, nil); err != nil {
		return nil, err
	}

	acls, err := c.ListACLs(ctx, &models.ACLFilter{CIDR: cidr})
	if err != nil {
		return nil, err
	}
	if len(acls) == 0 {
		return nil, errors.NewNotFoundError("acl", cidr)
	}
	return acls[0], nil
}

// DeleteACL revokes access for a CIDR range.
func (c *Client) DeleteACL(ctx context.Context, cidr string) error {
	doc := models.Document{
		"cidr_mask": cidr,
	}
	return c.call(ctx, "acl/delete", doc, nil)
}

// Delete revokes this ACL.
func (a *ACL) Delete(ctx context.Context) error {
	return a.c.DeleteACL(ctx, a.CIDRMask)
}
