package zoom

import (
	"math"
	"strconv"
)

// DefaultFactor is the magnification applied to the background image.
const DefaultFactor = 2.0

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is a bounding client rectangle in viewport pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Geometry is everything the lens mapping depends on.
type Geometry struct {
	Image    Size    `json:"image"`
	Lens     Size    `json:"lens"`
	Viewport Size    `json:"viewport"`
	Factor   float64 `json:"factor"`
}

// Frame is the computed lens and magnified-view placement.
type Frame struct {
	Lens               Point   `json:"lens"`
	ScaleX             float64 `json:"scale_x"`
	ScaleY             float64 `json:"scale_y"`
	BackgroundPosition Point   `json:"background_position"`
	BackgroundSize     Size    `json:"background_size"`
}

// Compute centres the lens on cursor (image-local pixels), keeps it inside
// the image and maps it onto the viewport. A lens larger than the image is
// pinned at the origin on that axis.
func Compute(g Geometry, cursor Point) Frame {
	if g.Factor <= 0 {
		g.Factor = DefaultFactor
	}

	lens := Point{
		X: clamp(cursor.X-g.Lens.Width/2, 0, math.Max(0, g.Image.Width-g.Lens.Width)),
		Y: clamp(cursor.Y-g.Lens.Height/2, 0, math.Max(0, g.Image.Height-g.Lens.Height)),
	}

	fx := ratio(g.Viewport.Width, g.Lens.Width)
	fy := ratio(g.Viewport.Height, g.Lens.Height)

	return Frame{
		Lens:               lens,
		ScaleX:             fx,
		ScaleY:             fy,
		BackgroundPosition: Point{X: negate(lens.X * fx), Y: negate(lens.Y * fy)},
		BackgroundSize:     BackgroundSize(g.Image, g.Factor),
	}
}

// BackgroundSize is the magnified image size.
func BackgroundSize(image Size, factor float64) Size {
	return Size{Width: image.Width * factor, Height: image.Height * factor}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func ratio(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}

// negate avoids producing -0.
func negate(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// PositionCSS renders p as a background-position value.
func PositionCSS(p Point) string {
	return px(p.X) + " " + px(p.Y)
}

// SizeCSS renders s as a background-size value.
func SizeCSS(s Size) string {
	return px(s.Width) + " " + px(s.Height)
}
