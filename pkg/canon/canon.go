// Copyright 2025 Certen Protocol
//
// Package canon implements the JSON-canonicalization dependency the
// signature suite assumes: deterministic key ordering at every nesting
// level, arrays left in document order. It is narrowed from this module's
// donor commitment-hashing package down to the one operation the suite
// needs: producing the exact byte string Ed25519 signs over.

package canon

import (
	"encoding/json"
	"sort"
)

// Canonicalize re-marshals raw JSON with object keys sorted recursively.
// This is the "canonicalize(message) -> bytes" primitive the signature
// suite signs and verifies over; byte-identical input always produces
// byte-identical output regardless of the original key order.
func Canonicalize(raw []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(sortKeys(v))
}

func sortKeys(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(vv))
		for k := range vv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ordered := make(map[string]interface{}, len(vv))
		for _, k := range keys {
			ordered[k] = sortKeys(vv[k])
		}
		return ordered
	case []interface{}:
		out := make([]interface{}, len(vv))
		for i, e := range vv {
			out[i] = sortKeys(e)
		}
		return out
	default:
		return vv
	}
}
