package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuva-embroidery/storefront/internal/catalog"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with product catalog files",
	}

	cmd.AddCommand(newCatalogExportCmd(opts))

	return cmd
}

func newCatalogExportCmd(opts *rootOptions) *cobra.Command {
	var featured bool

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the configured catalog to a .parquet, .yaml or .json file",
		Example: `  # Snapshot the built-in catalog as parquet
  storefront catalog export catalog.parquet

  # Export the featured products
  storefront catalog export --featured featured.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, fallback := opts.cfg.Catalog.Path, catalog.Sample()
			if featured {
				path, fallback = opts.cfg.Catalog.FeaturedPath, catalog.Featured()
			}
			provider, err := loadProvider(path, fallback)
			if err != nil {
				return err
			}

			products := provider.Products()
			if err := catalog.Write(args[0], products); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d products to %s\n", len(products), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&featured, "featured", false, "Export the featured products instead")

	return cmd
}
