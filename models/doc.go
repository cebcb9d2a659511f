/*
Package models defines the data shapes exchanged with the ObjectRocket
management API.

A Document is an opaque key-value record; the service imposes no schema on
collection contents, so documents round-trip unmodified. Filters narrow
listing calls and are matched client-side exactly the way the service's
own tooling does.

Typed payloads (InstanceDetails, SpaceUsage, LogEntry) cover the
management endpoints whose shapes are fixed.
*/
package models
