// Copyright 2025 Certen Protocol

package canon

import (
	"bytes"
	"testing"
)

func TestCanonicalizeSortsKeysRecursively(t *testing.T) {
	a, err := Canonicalize([]byte(`{"z":1,"a":{"y":2,"x":3}}`))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	b, err := Canonicalize([]byte(`{"a":{"x":3,"y":2},"z":1}`))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("differently-ordered but equal documents canonicalized differently: %s vs %s", a, b)
	}
}

func TestCanonicalizePreservesArrayOrder(t *testing.T) {
	out, err := Canonicalize([]byte(`{"list":[3,1,2]}`))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	want := `{"list":[3,1,2]}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestCanonicalizeRejectsInvalidJSON(t *testing.T) {
	if _, err := Canonicalize([]byte(`not json`)); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}
