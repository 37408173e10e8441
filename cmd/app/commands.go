package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ohrid/internal/catalog"
	"ohrid/internal/config"
	"ohrid/internal/infra"
	"ohrid/internal/planner"
	"ohrid/internal/repositories"
	"ohrid/pkg/utils"
)

func newSlotsCmd() *cobra.Command {
	var timeOfDay string
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the selectable time slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, ok := planner.ParseTimeOfDay(timeOfDay)
			if !ok {
				return fmt.Errorf("unknown time of day %q (want Daytime or Nighttime)", timeOfDay)
			}
			for _, s := range planner.TimeSlots(sel) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&timeOfDay, "time-of-day", "", "Daytime, Nighttime or empty for the whole day")
	return cmd
}

func newRotationCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Print the venue listing in rotation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.PathFromEnv())
			if err != nil {
				return err
			}
			t, err := utils.ParseAt(at, utils.LoadLocation(cfg.Timezone))
			if err != nil {
				return fmt.Errorf("parsing --at: %w", err)
			}
			c, err := catalog.NewFileSource(cfg.Catalog.VenuesPath, "").Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, weekend=%t)\n", t.Format("Mon 2006-01-02 15:04"), planner.BucketAt(t), planner.IsWeekend(t))
			groups, rest := planner.Listing(c.Venues, t)
			for _, g := range groups {
				fmt.Fprintf(out, "\n%s\n", g.Category)
				for _, v := range g.Venues {
					fmt.Fprintf(out, "  %4d  %s\n", v.ID, v.Name)
				}
			}
			for _, v := range rest {
				fmt.Fprintf(out, "  %4d  %s\n", v.ID, v.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "RFC3339 or YYYY-MM-DDTHH:MM local time (default: now)")
	return cmd
}

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Encode or decode plan share tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <token>",
		Short: "Print the plan carried by a share token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := planner.DecodeShare(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "encode <date>",
		Short: "Print a share token for one date of the stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !planner.ValidDate(args[0]) {
				return utils.ErrInvalidDate
			}
			cfg, err := config.Load(config.PathFromEnv())
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != config.StorageSQLite {
				return fmt.Errorf("share encode reads the sqlite store; storage driver is %q", cfg.Storage.Driver)
			}
			db, err := infra.OpenSQLite(cfg.Storage.SQLitePath)
			if err != nil {
				return err
			}
			defer db.Close()

			store := planner.NewStore(cmd.Context(), repositories.NewSQLiteBlobRepository(db), cfg.Storage.Key, zap.NewNop())
			token, err := planner.EncodeShare(planner.SharedPlan{Date: args[0], Items: store.Items(args[0])})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	})
	return cmd
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Copy the venue and event files into the PostgreSQL tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.PathFromEnv())
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			c, err := catalog.NewFileSource(cfg.Catalog.VenuesPath, cfg.Catalog.EventsPath).Load(ctx)
			if err != nil {
				return err
			}
			db, err := infra.InitPostgresql(cfg.Storage.PostgresURL)
			if err != nil {
				return err
			}
			defer infra.ClosePostgresql(db, zap.NewNop())

			src := repositories.NewDBCatalogSource(repositories.NewVenueRepository(db), repositories.NewEventRepository(db))
			if err := src.Seed(ctx, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d venues and %d events\n", len(c.Venues), len(c.Events))
			return nil
		},
	})
	return cmd
}
