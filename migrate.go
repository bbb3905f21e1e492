package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Connecting migrates
			err := connect(cfg)
			if err != nil {
				return err
			}

			log.Info().Msg("database migrated")
			return nil
		},
	}
}
