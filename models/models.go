/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package models

import (
	"github.com/go-openapi/strfmt"
)

// Document is an unstructured key-value record stored in a collection.
// The remote service enforces no schema; documents pass through unmodified.
type Document map[string]interface{}

// DatabaseFilter narrows a database listing call.
// Name is an exact match; the zero value matches everything.
type DatabaseFilter struct {
	Name string
}

// Matches reports whether a database with the given name passes the filter.
func (f *DatabaseFilter) Matches(name string) bool {
	if f == nil || f.Name == "" {
		return true
	}
	return f.Name == name
}

// ACLFilter narrows an ACL listing call by exact CIDR mask.
type ACLFilter struct {
	CIDR string
}

// Matches reports whether an ACL with the given CIDR mask passes the filter.
func (f *ACLFilter) Matches(cidr string) bool {
	if f == nil || f.CIDR == "" {
		return true
	}
	return f.CIDR == cidr
}

// InstanceDetails describes the hosted instance the credential is bound to.
type InstanceDetails struct {
	Name    string           `json:"name,omitempty"`
	Plan    string           `json:"plan,omitempty"`
	Type    string           `json:"type,omitempty"`
	Zone    string           `json:"zone,omitempty"`
	Version string           `json:"version,omitempty"`
	Created *strfmt.DateTime `json:"created,omitempty"`
}

// SpaceUsage reports storage utilization for the instance, in bytes.
type SpaceUsage struct {
	DataSize    int64 `json:"data_size"`
	FileSize    int64 `json:"file_size"`
	IndexSize   int64 `json:"index_size"`
	StorageSize int64 `json:"storage_size"`
}

// LogEntry is one line of the instance log stream.
type LogEntry struct {
	Timestamp *strfmt.DateTime `json:"ts,omitempty"`
	Level     string           `json:"level,omitempty"`
	Message   string           `json:"msg,omitempty"`
}
