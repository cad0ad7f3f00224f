// Copyright 2025 Certen Protocol

package cli

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/certenio/merkle-signature-suite/pkg/codec"
)

func writeManifest(t *testing.T, dir string, pubs []ed25519.PublicKey) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("digest: sha256\nleaves:\n")
	for i, pub := range pubs {
		fmt.Fprintf(&b, "  - id: holder-%d\n    public_key_hex: %q\n", i, codec.EncodeHex(pub))
	}
	path := filepath.Join(dir, "manifest.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestCLISignThenVerify(t *testing.T) {
	dir := t.TempDir()

	const n = 4
	pubs := make([]ed25519.PublicKey, n)
	seedPaths := make([]string, n)
	for i := 0; i < n; i++ {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}
		pubs[i] = pub
		seedPaths[i] = filepath.Join(dir, fmt.Sprintf("key-%d.hex", i))
		if err := os.WriteFile(seedPaths[i], []byte(codec.EncodeHex(priv.Seed())), 0600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	manifestPath := writeManifest(t, dir, pubs)

	var rootOut bytes.Buffer
	if err := ExecuteArgs([]string{"root", "--manifest", manifestPath}, &rootOut); err != nil {
		t.Fatalf("root: %v", err)
	}
	rootHex := strings.TrimSpace(rootOut.String())
	if len(rootHex) != 64 {
		t.Fatalf("unexpected root hex length: %q", rootHex)
	}

	const signerIndex = 2
	var signOut bytes.Buffer
	err := ExecuteArgs([]string{
		"sign",
		"--manifest", manifestPath,
		"--key", seedPaths[signerIndex],
		"--index", fmt.Sprint(signerIndex),
		"--message", `{"credential":"demo"}`,
	}, &signOut)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	signature := strings.TrimSpace(signOut.String())
	if !strings.Contains(signature, ".") {
		t.Fatalf("signature missing separator: %q", signature)
	}

	var verifyOut bytes.Buffer
	err = ExecuteArgs([]string{
		"verify",
		"--manifest", manifestPath,
		"--index", fmt.Sprint(signerIndex),
		"--message", `{"credential":"demo"}`,
		"--signature", signature,
	}, &verifyOut)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if strings.TrimSpace(verifyOut.String()) != "ok" {
		t.Fatalf("unexpected verify output: %q", verifyOut.String())
	}
}

func TestCLIVerifyRejectsWrongIndex(t *testing.T) {
	dir := t.TempDir()

	pubs := make([]ed25519.PublicKey, 2)
	seedPaths := make([]string, 2)
	for i := range pubs {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}
		pubs[i] = pub
		seedPaths[i] = filepath.Join(dir, fmt.Sprintf("key-%d.hex", i))
		if err := os.WriteFile(seedPaths[i], []byte(codec.EncodeHex(priv.Seed())), 0600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	manifestPath := writeManifest(t, dir, pubs)

	var signOut bytes.Buffer
	err := ExecuteArgs([]string{
		"sign", "--manifest", manifestPath, "--key", seedPaths[0],
		"--index", "0", "--message", `{"greeting":"hello"}`,
	}, &signOut)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	signature := strings.TrimSpace(signOut.String())

	var verifyOut bytes.Buffer
	err = ExecuteArgs([]string{
		"verify", "--manifest", manifestPath,
		"--index", "1", "--message", `{"greeting":"hello"}`, "--signature", signature,
	}, &verifyOut)
	if err == nil {
		t.Fatalf("expected verification against the wrong holder's key to fail")
	}
}

func TestCLIKeygenWritesSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.key")

	var out bytes.Buffer
	if err := ExecuteArgs([]string{"keygen", "--out", path}, &out); err != nil {
		t.Fatalf("keygen: %v", err)
	}
	if !strings.Contains(out.String(), "public_key_hex:") {
		t.Fatalf("missing public key output: %q", out.String())
	}

	seedHex, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(seedHex) != 64 {
		t.Fatalf("unexpected seed file length: %d", len(seedHex))
	}
}
