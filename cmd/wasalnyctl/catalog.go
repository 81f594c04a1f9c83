// README: catalog validate/export commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/service"
)

func newCatalogCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate or export the pricing catalog",
	}
	cmd.AddCommand(newCatalogValidateCmd(c), newCatalogExportCmd(c))
	return cmd
}

// loadCatalog reads file when given, otherwise the configured source.
func (c *cli) loadCatalog(cmd *cobra.Command, file string) (*catalog.Catalog, error) {
	if file != "" {
		return catalog.LoadFile(file)
	}
	return service.LoadCatalog(cmd.Context(), c.cfg)
}

func newCatalogValidateCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog for structural problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(cmd, file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d locations, %d route groups, %d routes, %d vehicles\n",
				len(cat.Locations()), len(cat.RouteGroups()), len(cat.Routes()), len(cat.Vehicles()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to validate instead of the configured source")
	return cmd
}

func newCatalogExportCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(cmd, "")
			if err != nil {
				return err
			}
			if out == "" {
				return cat.WriteYAML(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := cat.WriteYAML(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
