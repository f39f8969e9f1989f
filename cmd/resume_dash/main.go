// Package main provides the entry point for the resume dashboard terminal client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_dash",
	Short: "Resume analysis dashboard client",
	Long:  "resume_dash uploads resumes for AI analysis, browses the resulting reports, and manages the local session against the remote resume-analysis API.",
}

var (
	rootConfigPath string
	rootBaseURL    string
	rootStateDir   string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootBaseURL, "base-url", "", "API base URL (defaults to RESUME_DASH_BASE_URL or the production endpoint)")
	rootCmd.PersistentFlags().StringVar(&rootStateDir, "state-dir", "", "Directory holding the local storage file and logs")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
