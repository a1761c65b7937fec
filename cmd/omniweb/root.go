package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "omniweb",
	Short: "Multi-page website server with pluggable feature modules",
	Long: `Omniweb serves a website assembled from feature modules.

Each module describes its pages and routing rules; at startup the server
discovers the modules, builds the routing table and serves it.

Quick start:
  omniweb serve     # Start the server
  omniweb modules   # List the discovered modules
  omniweb validate  # Validate configuration`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "omniweb.yaml", "config file path")
}
