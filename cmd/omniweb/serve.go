package main

import (
	"github.com/omniweb-dev/omniweb/bootstrap"
	"github.com/omniweb-dev/omniweb/config"
	"github.com/spf13/cobra"
)

var (
	hotReload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Omniweb server.

The server will:
  - Load configuration from omniweb.yaml (or --config)
  - Or load configuration from OMNIWEB_* environment variables
  - Open the database and apply migrations
  - Discover the feature modules and build the routing table
  - Serve the routing table over HTTP

Environment variables (for Docker deployments):
  OMNIWEB_SERVER_PORT     - Server port (default: 8080)
  OMNIWEB_DATABASE_DSN    - SQLite path (default: omniweb.db)
  OMNIWEB_MODULES_DIR     - Manifest module directory
  OMNIWEB_MODULES_IGNORE  - Comma separated module ignore list
  OMNIWEB_DEV_MODE        - Abort startup on module errors
  OMNIWEB_LOG_LEVEL       - Log level: debug, info, warn, error

Examples:
  omniweb serve
  omniweb serve --config /etc/omniweb/config.yaml
  omniweb serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return err
	}

	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}

	if hotReload {
		holder, err := config.NewHolder(cfgFile, app.Logger)
		if err == nil {
			holder.OnChange(func(newCfg *config.Config) {
				app.SetConfig(newCfg)
				if err := app.Rebuild(); err != nil {
					app.Logger.Error().Err(err).Msg("rebuild after config change failed")
				}
			})
			if err := holder.WatchFile(); err != nil {
				app.Logger.Warn().Err(err).Msg("config file watch unavailable")
			}
			holder.WatchSignals()
			defer holder.Stop()
		} else {
			app.Logger.Warn().Err(err).Msg("hot reload disabled, config file not loadable")
		}
	}

	return app.Run()
}
