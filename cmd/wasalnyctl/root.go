// README: Root command; loads config and a console logger before any subcommand.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wasalny/internal/config"
	"wasalny/internal/infra"
)

// cli is filled by the root command before any subcommand runs.
type cli struct {
	configFile string
	debug      bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "wasalnyctl",
		Short:         "Manage Wasalny pricing catalogs and compute quotes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			level := "warn"
			if c.debug {
				level = "debug"
			}
			c.logger, err = infra.NewLogger(level, true)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.debug, "debug", "v", false, "enable debug logs")

	root.AddCommand(
		newCatalogCmd(c),
		newRoutesCmd(c),
		newQuoteCmd(c),
		newDBCmd(c),
	)
	return root
}
