/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package codec

import (
	"fmt"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeFunc turns one raw document payload into a concrete value.
type DecodeFunc func(raw []byte) (interface{}, error)

var (
	mu       sync.RWMutex
	decoders = make(map[string]DecodeFunc)
)

// Register associates a decoder with a collection name. It panics if the
// collection already has one.
func Register(collection string, fn DecodeFunc) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := decoders[collection]; exists {
		panic(fmt.Sprintf("codec: collection %q already registered", collection))
	}
	decoders[collection] = fn
}

// RegisterType installs a decoder for collection producing *T values.
func RegisterType[T any](collection string) {
	Register(collection, func(raw []byte) (interface{}, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		return &v, nil
	})
}

// Lookup returns the decoder registered for the given collection name.
func Lookup(collection string) (DecodeFunc, error) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := decoders[collection]
	if !ok {
		return nil, fmt.Errorf("codec: no decoder registered for collection %q", collection)
	}
	return fn, nil
}

// Decode runs the registered decoder for collection on raw.
func Decode(collection string, raw []byte) (interface{}, error) {
	fn, err := Lookup(collection)
	if err != nil {
		return nil, err
	}
	return fn(raw)
}
