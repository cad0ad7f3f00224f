// Copyright 2025 Certen Protocol
//
// Package cli wires the merklesign binary's subcommands: keygen, root,
// sign, verify. Each subcommand is a thin adapter over pkg/suite and
// pkg/merkle; the CLI itself owns no cryptographic logic.

package cli

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/certenio/merkle-signature-suite/pkg/codec"
	"github.com/certenio/merkle-signature-suite/pkg/config"
	"github.com/certenio/merkle-signature-suite/pkg/digest"
	"github.com/certenio/merkle-signature-suite/pkg/logging"
	"github.com/certenio/merkle-signature-suite/pkg/merkle"
	"github.com/certenio/merkle-signature-suite/pkg/suite"
)

// Execute builds the root command tree and runs it against os.Args.
func Execute() error {
	return newRootCommand().Execute()
}

// ExecuteArgs runs the command tree against an explicit argument list,
// writing combined stdout/stderr to out. Used by tests that would
// otherwise have to fork the binary to exercise the cobra wiring.
func ExecuteArgs(args []string, out io.Writer) error {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd.Execute()
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "merklesign",
		Short: "Build credential trees and sign/verify with Ed25519MerkleSignature2021",
	}

	root.AddCommand(newKeygenCmd())
	root.AddCommand(newRootCmd())
	root.AddCommand(newSignCmd())
	root.AddCommand(newVerifyCmd())

	return root
}

func newLogger() *logging.Logger {
	cfg, err := config.Load()
	if err != nil {
		return logging.GetGlobalLogger()
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = 0
	}
	logger, err := logging.NewLogger(&logging.Config{Level: level, Format: cfg.LogFormat, Output: "stderr"})
	if err != nil {
		return logging.GetGlobalLogger()
	}
	return logger
}

func newKeygenCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 key pair and write the seed as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, priv, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}
			seed := priv.Seed()
			if err := os.WriteFile(outPath, []byte(codec.EncodeHex(seed)), 0600); err != nil {
				return fmt.Errorf("write key file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "public_key_hex: %s\n", codec.EncodeHex(pub))
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "signer.key", "path to write the hex-encoded private seed")
	return cmd
}

func buildTreeFromManifest(manifestPath string) (*merkle.MTree, *config.TreeManifest, error) {
	manifest, err := config.LoadManifest(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	d := digest.Default
	leaves := make([]merkle.Hash, len(manifest.Leaves))
	for i, entry := range manifest.Leaves {
		pk, err := codec.DecodeHex(entry.PublicKeyHex)
		if err != nil {
			return nil, nil, fmt.Errorf("leaf %d (%s): %w", i, entry.ID, err)
		}
		h, err := merkle.NewHash(d, digest.HashLeaf(d, pk))
		if err != nil {
			return nil, nil, fmt.Errorf("leaf %d (%s): %w", i, entry.ID, err)
		}
		leaves[i] = h
	}

	tree, err := merkle.FromLeaves(d, leaves)
	if err != nil {
		return nil, nil, err
	}
	return tree, manifest, nil
}

func newRootCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "root",
		Short: "Print the Merkle root of a manifest's leaf set",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := buildTreeFromManifest(manifestPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.Root().Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "path to the tree manifest YAML file")
	cmd.MarkFlagRequired("manifest")
	return cmd
}

func newSignCmd() *cobra.Command {
	var manifestPath, keyPath, message string
	var index int

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message as one of a manifest's leaves",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := buildTreeFromManifest(manifestPath)
			if err != nil {
				return err
			}

			seedHex, err := os.ReadFile(keyPath)
			if err != nil {
				return fmt.Errorf("read key file: %w", err)
			}
			seed, err := codec.DecodeHex(string(seedHex))
			if err != nil {
				return fmt.Errorf("decode key file: %w", err)
			}
			secretKey := ed25519.NewKeyFromSeed(seed)

			signer := suite.NewSigner(tree, index).WithLogger(newLogger())
			sig, err := signer.Sign([]byte(message), secretKey)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "path to the tree manifest YAML file")
	cmd.Flags().StringVar(&keyPath, "key", "", "path to the hex-encoded Ed25519 seed")
	cmd.Flags().StringVar(&message, "message", "", "message to sign")
	cmd.Flags().IntVar(&index, "index", 0, "leaf index this key occupies in the manifest")
	cmd.MarkFlagRequired("manifest")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("message")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var manifestPath, message, signature string
	var index int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature string against a manifest leaf's public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, manifest, err := buildTreeFromManifest(manifestPath)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(manifest.Leaves) {
				return fmt.Errorf("index %d out of range for %d leaves", index, len(manifest.Leaves))
			}

			pub, err := codec.DecodeHex(manifest.Leaves[index].PublicKeyHex)
			if err != nil {
				return fmt.Errorf("decode leaf public key: %w", err)
			}

			verifier := suite.NewVerifier(pub).WithLogger(newLogger())
			if err := verifier.Verify([]byte(message), signature, tree.Root().Bytes()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "path to the tree manifest YAML file")
	cmd.Flags().StringVar(&message, "message", "", "message that was signed")
	cmd.Flags().StringVar(&signature, "signature", "", "signature string to verify")
	cmd.Flags().IntVar(&index, "index", 0, "leaf index of the holder whose signature this is")
	cmd.MarkFlagRequired("manifest")
	cmd.MarkFlagRequired("message")
	cmd.MarkFlagRequired("signature")
	return cmd
}
