package main

import (
	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/models"
	"github.com/spf13/cobra"
)

// rootOptions is shared by every subcommand. cfg and log are ready once the
// persistent pre-run hook has finished.
type rootOptions struct {
	logLevel string
	dsn      string

	buildInfo models.AppBuildInfo

	cfg *config.StructuredConfig
	log *logger.Logger
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &rootOptions{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "guidectl",
		Short: "Operator tool for the city guide server",
		Long: `guidectl manages the city guide database and helps operators with
password hashes and access tokens. Settings are read from the same
environment variables and JSON file (CONFIG) as the server.`,
		Version: buildInfo.BuildVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetEnvConfig()
			if err != nil {
				return err
			}
			if opts.dsn != "" {
				cfg.Storage.DB.DSN = opts.dsn
			}
			opts.cfg = cfg

			opts.log = logger.NewCLILogger("guidectl", cmd.ErrOrStderr())
			return logger.SetLevel(opts.logLevel)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&opts.dsn, "dsn", "d", "", "Database DSN (default is $STORAGE_DB_DATABASE_URI)")

	root.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newHashPasswordCmd(opts),
		newTokenCmd(opts),
		newVersionCmd(opts),
	)

	return root
}
