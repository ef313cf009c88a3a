package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/yuva-embroidery/storefront/internal/models"
	"github.com/yuva-embroidery/storefront/internal/notify"
	"github.com/yuva-embroidery/storefront/internal/storefront"
	"github.com/yuva-embroidery/storefront/internal/view"
)

func newCartCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and edit the persisted cart",
		Long: `Reads and writes the cart of the configured storage profile, the same cart
the web server serves.`,
	}

	cmd.AddCommand(newCartShowCmd(opts))
	cmd.AddCommand(newCartAddCmd(opts))
	cmd.AddCommand(newCartRemoveCmd(opts))

	return cmd
}

// cliPage builds a page whose notifications are printed to out as they are
// raised. Timers are never run since the process exits right after.
func cliPage(cmd *cobra.Command, opts *rootOptions) (*storefront.Page, func(), error) {
	out := cmd.OutOrStdout()
	presenter := newPresenter(opts.cfg,
		notify.WithScheduler(notify.NewManualScheduler(time.Now())),
		notify.WithOnChange(func(n notify.Notification) {
			if n.State == notify.Created {
				fmt.Fprintln(out, n.Message)
			}
		}),
	)
	return buildPage(cmd.Context(), opts.cfg, presenter)
}

func newCartShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the cart lines and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, release, err := cliPage(cmd, opts)
			if err != nil {
				return err
			}
			defer release()
			return printCart(cmd.OutOrStdout(), page.Renderer(), page.View())
		},
	}
}

func newCartAddCmd(opts *rootOptions) *cobra.Command {
	var (
		productID int
		item      models.Item
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog product or a custom item to the cart",
		Example: `  # Add catalog product 4
  storefront cart add --product 4

  # Add a sized item
  storefront cart add --id 7 --name "Net Embroidery" --price 750 --size large --quantity 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, release, err := cliPage(cmd, opts)
			if err != nil {
				return err
			}
			defer release()

			var model view.Model
			if cmd.Flags().Changed("product") {
				var ok bool
				model, ok = page.AddProduct(cmd.Context(), productID)
				if !ok {
					return fmt.Errorf("product %d not found in catalog", productID)
				}
			} else {
				if item.Name == "" {
					return fmt.Errorf("either --product or --name is required")
				}
				model = page.AddToCart(cmd.Context(), item)
			}
			return printCart(cmd.OutOrStdout(), page.Renderer(), model)
		},
	}

	cmd.Flags().IntVar(&productID, "product", 0, "Catalog product id")
	cmd.Flags().IntVar(&item.ID, "id", 0, "Item id")
	cmd.Flags().StringVar(&item.Name, "name", "", "Item name")
	cmd.Flags().IntVar(&item.Price, "price", 0, "Unit price")
	cmd.Flags().IntVar(&item.Quantity, "quantity", 1, "Quantity")
	cmd.Flags().StringVar(&item.Size, "size", "", "Size variant")
	cmd.Flags().StringVar(&item.Image, "image", "", "Image URL")

	return cmd
}

func newCartRemoveCmd(opts *rootOptions) *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove every line matching an id (and size)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			page, release, err := cliPage(cmd, opts)
			if err != nil {
				return err
			}
			defer release()
			model := page.RemoveFromCart(cmd.Context(), models.LineKey{ID: id, Size: size})
			return printCart(cmd.OutOrStdout(), page.Renderer(), model)
		},
	}

	cmd.Flags().StringVar(&size, "size", "", "Only remove the line with this size")

	return cmd
}

func printCart(out io.Writer, r *view.Renderer, m view.Model) error {
	if len(m.Lines) == 0 {
		fmt.Fprintln(out, m.Placeholder)
		fmt.Fprintln(out, "Total:", m.Total)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tQTY\tPRICE\tTOTAL")
	for _, l := range m.Lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n", l.ID, l.Name, l.Size, l.Quantity, r.FormatPrice(l.UnitPrice), r.FormatPrice(l.LineTotal))
	}
	fmt.Fprintf(w, "\t\t\t\t\t%s\n", m.Total)
	return w.Flush()
}
