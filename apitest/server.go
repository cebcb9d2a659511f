/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package apitest

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"

	"github.com/objectrocket/objectrocket-go/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// database is one fake hosted database: its users and its collections.
type database struct {
	users map[string]string
	cols  map[string][]models.Document
}

// Server is a fake management API backed by an in-memory store.
type Server struct {
	mu      sync.RWMutex
	apiKey  string
	dbs     map[string]*database
	acls    []models.Document
	logs    []models.LogEntry
	levels  map[string]int
	details models.Document

	forceStatus int
	forceRC     int
	forceMsg    string

	calls int64
	srv   *httptest.Server
}

// New starts a fake API accepting the given key.
func New(apiKey string) *Server {
	s := &Server{
		apiKey: apiKey,
		dbs:    make(map[string]*database),
		levels: make(map[string]int),
		details: models.Document{
			"name": "fake-instance",
			"plan": "test",
			"type": "mongodb",
		},
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// URL returns the base URL clients should use as their API server.
func (s *Server) URL() string { return s.srv.URL }

// Close shuts the fake API down.
func (s *Server) Close() { s.srv.Close() }

// Calls returns the number of requests handled so far.
func (s *Server) Calls() int64 { return atomic.LoadInt64(&s.calls) }

// WithStatus makes every subsequent request fail with the given HTTP
// status. Pass 0 to restore normal behavior.
func (s *Server) WithStatus(code int) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forceStatus = code
	return s
}

// WithRC makes every subsequent request return the given nonzero rc and
// message in the envelope. Pass 0 to restore normal behavior.
func (s *Server) WithRC(rc int, msg string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forceRC = rc
	s.forceMsg = msg
	return s
}

// SeedDatabase creates an empty database.
func (s *Server) SeedDatabase(name string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureDB(name)
	return s
}

// SeedDocuments stores documents in a collection, creating the database
// and collection as needed.
func (s *Server) SeedDocuments(db, col string, docs ...models.Document) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.ensureDB(db)
	d.cols[col] = append(d.cols[col], docs...)
	return s
}

// RemoveDatabase drops a database from the store, simulating a database
// that disappeared between calls.
func (s *Server) RemoveDatabase(name string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dbs, name)
	return s
}

// SeedACL stores an access rule.
func (s *Server) SeedACL(cidr, description string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acls = append(s.acls, models.Document{
		"cidr_mask":   cidr,
		"description": description,
	})
	return s
}

// SeedLogs stores log entries returned by logs/get.
func (s *Server) SeedLogs(entries ...models.LogEntry) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entries...)
	return s
}

// SetDetails replaces the instance descriptor returned by the instance
// endpoint.
func (s *Server) SetDetails(details models.Document) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details = details
	return s
}

// Documents returns a copy of a collection's contents for assertions.
func (s *Server) Documents(db, col string) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.dbs[db]
	if !ok {
		return nil
	}
	return append([]models.Document(nil), d.cols[col]...)
}

func (s *Server) ensureDB(name string) *database {
	d, ok := s.dbs[name]
	if !ok {
		d = &database{
			users: make(map[string]string),
			cols:  make(map[string][]models.Document),
		}
		s.dbs[name] = d
	}
	return d
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt64(&s.calls, 1)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if r.PostFormValue("api_key") != s.apiKey {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.forceStatus != 0 {
		http.Error(w, "injected failure", s.forceStatus)
		return
	}
	if s.forceRC != 0 {
		writeEnvelope(w, s.forceRC, s.forceMsg, nil)
		return
	}

	var doc models.Document
	if raw := r.PostFormValue("doc"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			writeEnvelope(w, 1, "undecodable doc", nil)
			return
		}
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	s.route(w, parts, doc)
}

func (s *Server) route(w http.ResponseWriter, parts []string, doc models.Document) {
	switch {
	case len(parts) == 1 && parts[0] == "db":
		names := make([]string, 0, len(s.dbs))
		for name := range s.dbs {
			names = append(names, name)
		}
		sort.Strings(names)
		items := make([]models.Document, 0, len(names))
		for _, name := range names {
			items = append(items, models.Document{"name": name})
		}
		writeEnvelope(w, 0, "", items)

	case len(parts) == 3 && parts[0] == "db" && parts[2] == "add":
		d := s.ensureDB(parts[1])
		for user, pass := range doc {
			if p, ok := pass.(string); ok {
				d.users[user] = p
			}
		}
		writeEnvelope(w, 0, "", nil)

	case len(parts) >= 5 && parts[0] == "db" && parts[2] == "collection":
		s.routeCollection(w, parts[1], parts[3], strings.Join(parts[4:], "/"), doc)

	case len(parts) == 2 && parts[0] == "acl" && parts[1] == "get":
		writeEnvelope(w, 0, "", s.acls)

	case len(parts) == 2 && parts[0] == "acl" && parts[1] == "add":
		s.acls = append(s.acls, doc)
		writeEnvelope(w, 0, "", nil)

	case len(parts) == 2 && parts[0] == "acl" && parts[1] == "delete":
		cidr, _ := doc["cidr_mask"].(string)
		kept := s.acls[:0]
		for _, acl := range s.acls {
			if acl["cidr_mask"] != cidr {
				kept = append(kept, acl)
			}
		}
		s.acls = kept
		writeEnvelope(w, 0, "", nil)

	case len(parts) == 1 && parts[0] == "instance":
		writeEnvelope(w, 0, "", s.details)

	case len(parts) == 1 && parts[0] == "serverStatus":
		writeEnvelope(w, 0, "", models.Document{"ok": 1, "uptime": 42})

	case len(parts) == 1 && parts[0] == "serverStatusPlus":
		writeEnvelope(w, 0, "", models.Document{"ok": 1, "uptime": 42, "extended": true})

	case len(parts) == 2 && parts[0] == "spaceusage" && parts[1] == "get":
		writeEnvelope(w, 0, "", models.SpaceUsage{
			DataSize:    1024,
			FileSize:    4096,
			IndexSize:   256,
			StorageSize: 2048,
		})

	case len(parts) == 2 && parts[0] == "logs" && parts[1] == "get":
		writeEnvelope(w, 0, "", s.logs)

	case len(parts) == 2 && parts[0] == "profiler" && parts[1] == "get":
		writeEnvelope(w, 0, "", []models.Document{})

	case len(parts) == 2 && parts[0] == "profiling_level" && parts[1] == "get":
		levels := make(map[string]int, len(s.dbs))
		for name := range s.dbs {
			levels[name] = s.levels[name]
		}
		writeEnvelope(w, 0, "", levels)

	case len(parts) == 2 && parts[0] == "profiling_level" && parts[1] == "set":
		level := 0
		if v, ok := doc["level"].(float64); ok {
			level = int(v)
		}
		if name, ok := doc["db"].(string); ok && name != "" {
			s.levels[name] = level
		} else {
			for name := range s.dbs {
				s.levels[name] = level
			}
		}
		writeEnvelope(w, 0, "", nil)

	default:
		writeEnvelope(w, 1, "unknown stub", nil)
	}
}

func (s *Server) routeCollection(w http.ResponseWriter, db, col, op string, doc models.Document) {
	d, ok := s.dbs[db]
	if !ok {
		writeEnvelope(w, 1, "database not found", nil)
		return
	}

	switch op {
	case "get":
		out := make([]models.Document, 0)
		for _, stored := range d.cols[col] {
			if matches(stored, doc) {
				out = append(out, stored)
			}
		}
		writeEnvelope(w, 0, "", out)

	case "add":
		d.cols[col] = append(d.cols[col], doc)
		writeEnvelope(w, 0, "", nil)

	case "update":
		for _, stored := range d.cols[col] {
			for k, v := range doc {
				stored[k] = v
			}
		}
		writeEnvelope(w, 0, "", nil)

	case "delete":
		kept := d.cols[col][:0]
		for _, stored := range d.cols[col] {
			if !matches(stored, doc) {
				kept = append(kept, stored)
			}
		}
		d.cols[col] = kept
		writeEnvelope(w, 0, "", nil)

	case "stats/get":
		docs, exists := d.cols[col]
		if !exists {
			writeEnvelope(w, 1, "no stats for collection", nil)
			return
		}
		writeEnvelope(w, 0, "", models.Document{"count": len(docs)})

	default:
		writeEnvelope(w, 1, "unknown stub", nil)
	}
}

// matches reports whether every field of filter equals the corresponding
// top-level field of doc. An empty filter matches everything.
func matches(doc, filter models.Document) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func writeEnvelope(w http.ResponseWriter, rc int, msg string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	payload := map[string]interface{}{"rc": rc}
	if msg != "" {
		payload["msg"] = msg
	}
	if data != nil {
		payload["data"] = data
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(raw)
}
