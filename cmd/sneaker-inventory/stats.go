package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/config"
	"github.com/spf13/cobra"
)

var errNoUser = errors.New("no user is logged in")

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the logged in user's dashboard stats as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(os.Stderr)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			s, err := openStores(ctx, cfg, false)
			if err != nil {
				return err
			}
			defer s.Close()

			if s.identity.CurrentUser() == nil {
				return errNoUser
			}

			stats, err := s.inventory.Stats(ctx)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			return encoder.Encode(stats)
		},
	}
}
