package main

import (
	"fmt"

	"github.com/omniweb-dev/omniweb/modules/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		build := version.Current()
		fmt.Printf("omniweb %s\n", build.Version)
		fmt.Printf("  commit:  %s\n", build.Commit)
		fmt.Printf("  go:      %s\n", build.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
