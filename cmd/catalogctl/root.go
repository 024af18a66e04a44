package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"locallibrary/pkg/container"
	"locallibrary/pkg/logger"
)

var logLevel string

// rootCmd is the admin entrypoint. Subcommands share the server's
// environment configuration and dependency container.
var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "catalogctl - Local Library catalog administration",
	Long: `catalogctl manages the catalog database behind the Local Library web app:
- apply schema migrations
- seed a small demo catalog
- list genres

Configuration is read from the same environment variables (and .env file) as the server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
		}
		logger.Init(env, logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(migrateCmd, seedCmd, genresCmd)
}

// withContainer builds the container, runs fn and releases it.
func withContainer(fn func(c *container.Container) error) error {
	c, err := container.NewContainer()
	if err != nil {
		return err
	}
	defer c.Cleanup()

	log.Debug().Msg("[catalogctl] container ready")
	return fn(c)
}
