package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

const (
	White Color = 0xFFFFFFFF
	Black Color = 0xFF000000
)

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Hex returns the opaque "#RRGGBB" form used by terminal styles.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts "#RRGGBB" (opaque) and "#AARRGGBB".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	switch len(s) {
	case 6, 8:
	default:
		return fmt.Errorf("color %q: want #RRGGBB or #AARRGGBB", string(text))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", string(text), err)
	}
	if len(s) == 6 {
		v |= 0xFF000000
	}
	*c = Color(v)
	return nil
}

// Colors holds the five tints used by the renderer.
type Colors struct {
	OverlayBorder       Color `toml:"overlay_border"`
	SelectedIcon        Color `toml:"selected_icon"`
	UnselectedIcon      Color `toml:"unselected_icon"`
	ControllerContainer Color `toml:"controller_container"`
	ControllerIcon      Color `toml:"controller_icon"`
}

// DefaultColors returns the stock palette.
func DefaultColors() Colors {
	return Colors{
		OverlayBorder:       White,
		SelectedIcon:        0xFFFAFCFF,
		UnselectedIcon:      0xF3979797,
		ControllerContainer: 0xFF223FFF,
		ControllerIcon:      0xFFFFFFFF,
	}
}

func (c Colors) WithOverlayBorder(v Color) Colors {
	c.OverlayBorder = v
	return c
}

func (c Colors) WithSelectedIcon(v Color) Colors {
	c.SelectedIcon = v
	return c
}

func (c Colors) WithUnselectedIcon(v Color) Colors {
	c.UnselectedIcon = v
	return c
}

func (c Colors) WithControllerContainer(v Color) Colors {
	c.ControllerContainer = v
	return c
}

func (c Colors) WithControllerIcon(v Color) Colors {
	c.ControllerIcon = v
	return c
}

// GradientKind selects how gradient stops are spread over a surface.
type GradientKind string

const (
	GradientRadial GradientKind = "radial"
	GradientLinear GradientKind = "linear"
)

// Gradient is an ordered list of color stops spread evenly from 0 to 1.
type Gradient struct {
	Kind  GradientKind `toml:"kind"`
	Stops []Color      `toml:"stops"`
}

// RadialGradient builds a center-outwards gradient.
func RadialGradient(stops ...Color) Gradient {
	return Gradient{Kind: GradientRadial, Stops: append([]Color(nil), stops...)}
}

// LinearGradient builds a top-left to bottom-right gradient.
func LinearGradient(stops ...Color) Gradient {
	return Gradient{Kind: GradientLinear, Stops: append([]Color(nil), stops...)}
}

// Brushes holds the two painted surfaces.
type Brushes struct {
	Overlay   Gradient `toml:"overlay"`
	Indicator Gradient `toml:"indicator"`
}

// DefaultBrushes returns the stock gradients.
func DefaultBrushes() Brushes {
	return Brushes{
		Overlay:   RadialGradient(0xFF060C25, 0xFF224EFF),
		Indicator: RadialGradient(0xFF214BF3, 0xFF224EFF),
	}
}

func (b Brushes) WithOverlay(g Gradient) Brushes {
	b.Overlay = g
	return b
}

func (b Brushes) WithIndicator(g Gradient) Brushes {
	b.Indicator = g
	return b
}

// clone copies the gradient stops so the result shares no storage with b.
func (b Brushes) clone() Brushes {
	b.Overlay.Stops = append([]Color(nil), b.Overlay.Stops...)
	b.Indicator.Stops = append([]Color(nil), b.Indicator.Stops...)
	return b
}
