package zoom

import (
	"errors"
	"log/slog"
)

// ErrMissingElement is reported when the image, lens or result element is
// absent; the coordinator then stays disabled.
var ErrMissingElement = errors.New("zoom: missing image, lens or result element")

// Image is the displayed product image.
type Image struct {
	Src  string
	Rect Rect
}

// Elements are the page elements the coordinator drives. Nil means absent.
type Elements struct {
	Image  *Image
	Lens   *Size
	Result *Size
	// Thumbnails lists the image sources of the thumbnail strip.
	Thumbnails []string
}

// State is the zoom state for the currently displayed image.
type State struct {
	CursorX     float64 `json:"cursor_x"`
	CursorY     float64 `json:"cursor_y"`
	ZoomFactor  float64 `json:"zoom_factor"`
	SourceImage string  `json:"source_image"`
	Active      bool    `json:"active"`
}

// PointerEvent carries page coordinates and the current window scroll.
type PointerEvent struct {
	PageX   float64 `json:"page_x"`
	PageY   float64 `json:"page_y"`
	ScrollX float64 `json:"scroll_x"`
	ScrollY float64 `json:"scroll_y"`
}

// Touch is one active touch point in page coordinates.
type Touch struct {
	PageX float64 `json:"page_x"`
	PageY float64 `json:"page_y"`
}

// Thumbnail is one entry of the thumbnail strip.
type Thumbnail struct {
	Src    string `json:"src"`
	Active bool   `json:"active"`
}

// View is what the page applies to the lens and result elements.
type View struct {
	LensVisible        bool   `json:"lens_visible"`
	ResultActive       bool   `json:"result_active"`
	LensPosition       Point  `json:"lens_position"`
	BackgroundImage    string `json:"background_image"`
	BackgroundPosition Point  `json:"background_position"`
	BackgroundSize     Size   `json:"background_size"`
}

func (v View) BackgroundImageCSS() string {
	return "url('" + v.BackgroundImage + "')"
}

func (v View) BackgroundPositionCSS() string {
	return PositionCSS(v.BackgroundPosition)
}

func (v View) BackgroundSizeCSS() string {
	return SizeCSS(v.BackgroundSize)
}

// Coordinator tracks pointer and touch input over the product image and
// keeps the magnified view in sync. It never touches persistent state.
type Coordinator struct {
	enabled bool
	image   Image
	lens    Size
	result  Size
	factor  float64

	state      State
	view       View
	thumbnails []string
	active     int
}

type Option func(*Coordinator)

// WithFactor overrides DefaultFactor.
func WithFactor(f float64) Option {
	return func(c *Coordinator) {
		if f > 0 {
			c.factor = f
		}
	}
}

// New builds a coordinator. If any element is missing the returned
// coordinator is disabled and every event is a no-op.
func New(el Elements, opts ...Option) *Coordinator {
	c := &Coordinator{factor: DefaultFactor, active: -1}
	for _, opt := range opts {
		opt(c)
	}

	if el.Image == nil || el.Lens == nil || el.Result == nil {
		slog.Debug("Image zoom disabled", "err", ErrMissingElement)
		return c
	}

	c.enabled = true
	c.image = *el.Image
	c.lens = *el.Lens
	c.result = *el.Result
	c.thumbnails = append([]string(nil), el.Thumbnails...)
	for i, src := range c.thumbnails {
		if src == c.image.Src {
			c.active = i
			break
		}
	}
	if c.active < 0 && len(c.thumbnails) > 0 {
		c.active = 0
	}
	c.reset()
	return c
}

// reset recreates the zoom state for the current image.
func (c *Coordinator) reset() {
	c.state = State{
		ZoomFactor:  c.factor,
		SourceImage: c.image.Src,
	}
	c.view = View{
		BackgroundImage: c.image.Src,
		BackgroundSize:  BackgroundSize(c.image.Rect.Size(), c.factor),
	}
}

func (c *Coordinator) Enabled() bool { return c.enabled }

// Err is ErrMissingElement for a disabled coordinator.
func (c *Coordinator) Err() error {
	if !c.enabled {
		return ErrMissingElement
	}
	return nil
}

func (c *Coordinator) State() State { return c.state }

func (c *Coordinator) View() View { return c.view }

func (c *Coordinator) geometry() Geometry {
	return Geometry{
		Image:    c.image.Rect.Size(),
		Lens:     c.lens,
		Viewport: c.result,
		Factor:   c.factor,
	}
}

func (c *Coordinator) show() {
	c.state.Active = true
	c.view.LensVisible = true
	c.view.ResultActive = true
}

func (c *Coordinator) hide() {
	c.state.Active = false
	c.view.LensVisible = false
	c.view.ResultActive = false
}

// PointerEnter activates the zoom.
func (c *Coordinator) PointerEnter() View {
	if c.enabled {
		c.show()
	}
	return c.view
}

// PointerLeave deactivates the zoom.
func (c *Coordinator) PointerLeave() View {
	if c.enabled {
		c.hide()
	}
	return c.view
}

// PointerMove repositions the lens while active.
func (c *Coordinator) PointerMove(ev PointerEvent) View {
	if !c.enabled || !c.state.Active {
		return c.view
	}
	c.move(ev)
	return c.view
}

func (c *Coordinator) move(ev PointerEvent) {
	cursor := Point{
		X: ev.PageX - c.image.Rect.Left - ev.ScrollX,
		Y: ev.PageY - c.image.Rect.Top - ev.ScrollY,
	}
	c.state.CursorX = cursor.X
	c.state.CursorY = cursor.Y

	frame := Compute(c.geometry(), cursor)
	c.view.LensPosition = frame.Lens
	c.view.BackgroundPosition = frame.BackgroundPosition
	c.view.BackgroundSize = frame.BackgroundSize
}

// TouchStart and TouchMove follow a single finger. Multi-touch is ignored.
func (c *Coordinator) TouchStart(touches []Touch, scrollX, scrollY float64) View {
	return c.touch(touches, scrollX, scrollY)
}

func (c *Coordinator) TouchMove(touches []Touch, scrollX, scrollY float64) View {
	return c.touch(touches, scrollX, scrollY)
}

func (c *Coordinator) touch(touches []Touch, scrollX, scrollY float64) View {
	if !c.enabled || len(touches) != 1 {
		return c.view
	}
	c.show()
	c.move(PointerEvent{
		PageX:   touches[0].PageX,
		PageY:   touches[0].PageY,
		ScrollX: scrollX,
		ScrollY: scrollY,
	})
	return c.view
}

// TouchEnd deactivates the zoom.
func (c *Coordinator) TouchEnd() View {
	return c.PointerLeave()
}

// Resize records the new image rectangle and recomputes the background
// size. The lens stays put until the next move.
func (c *Coordinator) Resize(rect Rect) View {
	if !c.enabled {
		return c.view
	}
	c.image.Rect = rect
	c.view.BackgroundSize = BackgroundSize(rect.Size(), c.factor)
	return c.view
}

// SelectThumbnail shows thumbnail i as the main image. It reports false for
// an index outside the strip.
func (c *Coordinator) SelectThumbnail(i int) bool {
	if !c.enabled || i < 0 || i >= len(c.thumbnails) {
		return false
	}
	c.image.Src = c.thumbnails[i]
	c.active = i
	c.reset()
	slog.Debug("Thumbnail selected", "index", i, "src", c.image.Src)
	return true
}

// Thumbnails reports the strip with exactly one active entry. The first
// thumbnail is active until one is selected if the main image is not in
// the strip.
func (c *Coordinator) Thumbnails() []Thumbnail {
	out := make([]Thumbnail, len(c.thumbnails))
	for i, src := range c.thumbnails {
		out[i] = Thumbnail{Src: src, Active: i == c.active}
	}
	return out
}
