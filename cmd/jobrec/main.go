// Package main provides the entry point for the job recommender web server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobrec",
	Short: "Job Recommendation Web Server",
	Long:  "jobrec serves a small web application that registers users, collects a profile, and ranks jobs against a precomputed factorization model.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
