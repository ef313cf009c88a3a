package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuva-embroidery/storefront/internal/zoom"
)

func newZoomCmd() *cobra.Command {
	var (
		image, lens, viewport, cursor string
		factor                        float64
	)

	cmd := &cobra.Command{
		Use:     "zoom",
		Short:   "Compute the lens and magnified view placement for a cursor",
		Example: `  storefront zoom --image 300x300 --lens 100x100 --viewport 300x300 --cursor 100,100`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				g   zoom.Geometry
				at  zoom.Point
				err error
			)
			if g.Image, err = parseSize(image); err != nil {
				return fmt.Errorf("--image: %w", err)
			}
			if g.Lens, err = parseSize(lens); err != nil {
				return fmt.Errorf("--lens: %w", err)
			}
			if g.Viewport, err = parseSize(viewport); err != nil {
				return fmt.Errorf("--viewport: %w", err)
			}
			if at, err = parsePoint(cursor); err != nil {
				return fmt.Errorf("--cursor: %w", err)
			}
			g.Factor = factor

			frame := zoom.Compute(g, at)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lens:                %s\n", zoom.PositionCSS(frame.Lens))
			fmt.Fprintf(out, "scale:               %g x %g\n", frame.ScaleX, frame.ScaleY)
			fmt.Fprintf(out, "background-position: %s\n", zoom.PositionCSS(frame.BackgroundPosition))
			fmt.Fprintf(out, "background-size:     %s\n", zoom.SizeCSS(frame.BackgroundSize))
			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "Rendered image size, WxH")
	cmd.Flags().StringVar(&lens, "lens", "", "Lens size, WxH")
	cmd.Flags().StringVar(&viewport, "viewport", "", "Magnified view size, WxH")
	cmd.Flags().StringVar(&cursor, "cursor", "0,0", "Cursor position relative to the image, X,Y")
	cmd.Flags().Float64Var(&factor, "factor", zoom.DefaultFactor, "Zoom factor")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("lens")
	_ = cmd.MarkFlagRequired("viewport")

	return cmd
}

func parseSize(s string) (zoom.Size, error) {
	w, h, err := parsePair(s, "x")
	if err != nil {
		return zoom.Size{}, err
	}
	return zoom.Size{Width: w, Height: h}, nil
}

func parsePoint(s string) (zoom.Point, error) {
	x, y, err := parsePair(s, ",")
	if err != nil {
		return zoom.Point{}, err
	}
	return zoom.Point{X: x, Y: y}, nil
}

func parsePair(s, sep string) (float64, float64, error) {
	a, b, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), sep)
	if !ok {
		return 0, 0, fmt.Errorf("expected two numbers separated by %q, got %q", sep, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
