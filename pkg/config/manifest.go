// Copyright 2025 Certen Protocol
//
// TreeManifest describes the leaf set a demo tree is built from: one
// Ed25519 public key per credential holder, loaded from a YAML file the
// way this module's donor codebase loads its anchor settings.

package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LeafEntry names one credential holder's public key. ID is optional in
// the file; LoadManifest fills in a fresh UUID for any entry that omits
// one, so callers always have a stable handle to log against.
type LeafEntry struct {
	ID           string `yaml:"id"`
	PublicKeyHex string `yaml:"public_key_hex"`
}

// TreeManifest is the on-disk description of a signer's tree: the digest
// family and the ordered leaf list. Leaf order is significant — it is the
// order leaves are hashed into the tree, and therefore each holder's
// local_index.
type TreeManifest struct {
	Digest string      `yaml:"digest"`
	Leaves []LeafEntry `yaml:"leaves"`
}

// LoadManifest reads and parses a tree manifest from path.
func LoadManifest(path string) (*TreeManifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read manifest: %w", err)
	}

	var m TreeManifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("config: parse manifest: %w", err)
	}

	if m.Digest == "" {
		m.Digest = "sha256"
	}
	for i := range m.Leaves {
		if m.Leaves[i].ID == "" {
			m.Leaves[i].ID = uuid.NewString()
		}
	}

	if len(m.Leaves) == 0 {
		return nil, fmt.Errorf("config: manifest has no leaves")
	}

	return &m, nil
}
