// README: routes command; lists origins or reachable destinations.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/service"
)

func newRoutesCmd(c *cli) *cobra.Command {
	var (
		from      string
		routeType string
		strategy  string
	)
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List origins, or the destinations reachable from --from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if strategy != "" {
				cfg.Pricing.Strategy = strategy
			}
			app, err := service.NewApp(cmd.Context(), cfg, c.logger)
			if err != nil {
				return err
			}
			defer app.Close()

			network := app.Pricing.Strategy().Network()
			locs := network.Origins(catalog.RouteType(routeType))
			if from != "" {
				if _, ok := app.Catalog.Location(from); !ok {
					return fmt.Errorf("unknown location %q", from)
				}
				locs = network.Destinations(from)
			}
			w := cmd.OutOrStdout()
			for _, l := range locs {
				fmt.Fprintf(w, "%s\t%s\n", l.ID, l.NameAr)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "origin location id")
	cmd.Flags().StringVar(&routeType, "route-type", "", "internal or travel (origins only)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "pricing strategy whose network to list (default from config)")
	return cmd
}
