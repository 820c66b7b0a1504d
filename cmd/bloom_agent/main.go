// Package main provides the entry point for the Bloom taxonomy classifier CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bloom_agent",
	Short: "Bloom's Taxonomy exam question classifier",
	Long:  "bloom_agent segments exam documents into questions and classifies each into a Bloom's Taxonomy cognitive level (C1-C6), correcting ML output with locale-specific linguistic rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
