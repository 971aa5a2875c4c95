// Package main is the entry point for the prime-vault-cli application.
// It initializes the root command, registers the RSA sub-commands and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "prime_vault_service/cmd/prime-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "prime-vault-cli",
		Short: "RSA-from-primitives CLI tool",
		Long: `prime-vault-cli is a command-line tool for RSA built from arithmetic primitives.
Key generation, encryption and decryption run on the project's own Karatsuba
multiplication, Miller-Rabin primality testing and extended-Euclidean modular
inverse rather than a cryptographic library's RSA routines.

This is an educational-grade cipher: no constant-time guarantees and no
padding beyond fixed-size block splitting. Do not protect real secrets with it.`,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
