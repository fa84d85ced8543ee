package main

import (
	"fmt"

	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert reference data",
	}

	seedCmd.AddCommand(&cobra.Command{
		Use:   "events",
		Short: "Insert the curated events that are not stored yet",
		Long: `Inserts the curated cultural events. Events already present (same name
and start time) are skipped, so the command can be run repeatedly.
Migrations are applied first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.log.WithContext(cmd.Context())

			db, err := opts.connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(ctx); err != nil {
				return fmt.Errorf("error applying migrations: %w", err)
			}

			events := service.NewEventService(
				store.NewRepositories(db, opts.log).EventRepository,
				validators.NewRequestValidator(),
				opts.log,
			)

			inserted, err := events.SeedEvents(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "inserted events: %d\n", inserted)
			return nil
		},
	})

	return seedCmd
}
