package main

import (
	"fmt"
	"time"

	"github.com/fundflow/backend/internal/cache"
	"github.com/fundflow/backend/internal/config"
	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func periodsCmd() *cobra.Command {
	var (
		user  string
		today string
	)

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "Print the periods of a user, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid user '%s': %w", user, err)
			}

			clock := cache.SystemClock
			if today != "" {
				d, err := types.ParseDate(today)
				if err != nil {
					return fmt.Errorf("invalid date '%s': %w", today, err)
				}
				clock = fixedDay(d, cfg)
			}

			err = connect(cfg)
			if err != nil {
				return err
			}

			co, err := newController(cfg, clock)
			if err != nil {
				return err
			}

			list, err := co.Periods.List(cmd.Context(), userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range list {
				fmt.Fprintf(out, "%s\t%s\t%s\n", d.Start, d.End, d.Label)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "ID of the user")
	cmd.Flags().StringVar(&today, "today", "", "date to resolve the current period for, YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// fixedDay returns a clock that is always at noon of d in the configured
// time zone.
func fixedDay(d types.Date, cfg config.Config) cache.Clock {
	location, err := cfg.Location()
	if err != nil {
		location = time.UTC
	}

	t := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, location)
	return func() time.Time { return t }
}
