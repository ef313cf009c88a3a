package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/yuva-embroidery/storefront/internal/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Embroidery storefront cart and catalog service",
		Long: `Storefront serves the Yuva Embroidery shop page: a persistent shopping cart,
product search, featured products and the product image zoom.

The cart is kept per profile in memory, in a JSON file, or in Redis.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if opts.verbose || os.Getenv("LOG_LEVEL") == "debug" {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			path := opts.configPath
			if path == "" {
				path = os.Getenv("STOREFRONT_CONFIG")
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config file (default $STOREFRONT_CONFIG)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Verbose logging")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newCartCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newCatalogCmd(opts))
	cmd.AddCommand(newZoomCmd())

	return cmd
}
