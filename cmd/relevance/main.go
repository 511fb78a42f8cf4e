// Package main provides the resume relevance scoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relevance",
	Short: "Resume relevance scoring engine",
	Long:  "Relevance scores resumes against job descriptions by combining hard attribute matching with lexical and semantic analysis, and produces a High/Medium/Low verdict with improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
