// Package main provides the entry point for the SkillSync API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillsync",
	Short: "SkillSync skill gap analysis server",
	Long:  "SkillSync maps a user's skills against job role requirements, scores job readiness, and generates an ordered learning roadmap with curated resources.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
