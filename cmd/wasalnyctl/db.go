// README: db init/seed commands for the Postgres catalog.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wasalny/internal/infra"
	"wasalny/internal/modules/catalog"
)

// openDB is replaced in tests.
var openDB = infra.NewDB

func newDBCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Prepare the Postgres catalog database",
	}
	cmd.AddCommand(newDBInitCmd(c), newDBSeedCmd(c))
	return cmd
}

func (c *cli) withStore(ctx context.Context, fn func(*catalog.Store) error) error {
	db, err := openDB(ctx, c.cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(catalog.NewStore(db))
}

func newDBInitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the catalog tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(s *catalog.Store) error {
				if err := s.InitSchema(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
				return nil
			})
		},
	}
}

func newDBSeedCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog tables with the built-in or a YAML catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := catalog.DefaultData()
			if file != "" {
				cat, err := catalog.LoadFile(file)
				if err != nil {
					return err
				}
				data = cat.Data()
			}
			return c.withStore(cmd.Context(), func(s *catalog.Store) error {
				if err := s.Seed(cmd.Context(), data); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d locations, %d route groups, %d routes\n",
					len(data.Locations), len(data.RouteGroups), len(data.Routes))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to seed (default built-in)")
	return cmd
}
