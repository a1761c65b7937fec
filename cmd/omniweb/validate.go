package main

import (
	"fmt"

	"github.com/omniweb-dev/omniweb/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		fmt.Printf("%s is valid\n", cfgFile)
		fmt.Printf("  server:   %s:%d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Printf("  database: %s\n", cfg.Database.DSN)
		if cfg.Modules.Dir != "" {
			fmt.Printf("  modules:  %s\n", cfg.Modules.Dir)
		}
		if cfg.Modules.Ignore != "" {
			fmt.Printf("  ignored:  %s\n", cfg.Modules.Ignore)
		}

		fmt.Println("\nreloadable without restart (file watch or SIGHUP):")
		for _, field := range config.ReloadableFields() {
			fmt.Printf("  %s\n", field)
		}
		fmt.Println("require a restart:")
		for _, field := range config.NonReloadableFields() {
			fmt.Printf("  %s\n", field)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
