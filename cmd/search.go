package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yuva-embroidery/storefront/internal/catalog"
	"github.com/yuva-embroidery/storefront/internal/search"
	"github.com/yuva-embroidery/storefront/internal/view"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by name or collection",
		Example: `  storefront search mirror
  storefront search "kutch work"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := loadProvider(opts.cfg.Catalog.Path, catalog.Sample())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			results := search.Search(provider.Products(), strings.Join(args, " "))
			if len(results) == 0 {
				fmt.Fprintln(out, view.NoResultsMessage)
				return nil
			}

			r := view.NewRenderer(opts.cfg.Currency)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOLLECTION\tPRICE")
			for _, p := range results {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Collection, r.FormatPrice(p.Price))
			}
			return w.Flush()
		},
	}
}
