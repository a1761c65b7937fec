package main

import (
	"fmt"
	"os"

	"github.com/omniweb-dev/omniweb/adapters/sqlite"
	"github.com/omniweb-dev/omniweb/bootstrap"
	"github.com/omniweb-dev/omniweb/config"
	"github.com/omniweb-dev/omniweb/core/loader"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the discovered modules",
	Long: `Run a discovery pass and print every module with its pages.

Contract violations are printed as warnings, the way the server would log
them in production mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWithFallback(cfgFile)
		if err != nil {
			return err
		}

		db, err := sqlite.Open(cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			return err
		}

		result, err := loader.Discover(loader.Config{
			Registry:    bootstrap.DefaultRegistry(sqlite.NewQuoteStore(db)),
			ManifestDir: cfg.Modules.Dir,
			Ignore:      loader.MergeIgnore(cfg.Modules.Ignore),
			Logger:      zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}),
		})
		if err != nil {
			return err
		}

		for i, name := range result.Loaded {
			info := result.Infos[i]
			fmt.Printf("%-24s %-24s %s\n", name, info.Path, info.Name)
			for _, sub := range info.SubPages {
				fmt.Printf("%-24s %-24s %s\n", "", sub.Path, sub.Name)
			}
		}
		if result.Ignored > 0 {
			fmt.Printf("\n%d ignored\n", result.Ignored)
		}
		for _, msg := range result.Errors {
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
