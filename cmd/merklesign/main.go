// Merkle Signature Suite CLI
// Builds a credential tree from a manifest, signs messages as one of its
// leaves, and verifies signature strings against a published root.

package main

import (
	"fmt"
	"os"

	"github.com/certenio/merkle-signature-suite/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
