package menu

// Layout contains the ring dimensions in density-independent units.
// DefaultLayout mirrors the fixed design constants; hosts may override them.
type Layout struct {
	ButtonSize       float64 `toml:"button_size"`       // item button edge (default: 24)
	SurfaceSize      float64 `toml:"surface_size"`      // overlay disc diameter (default: 144)
	ItemRadius       float64 `toml:"item_radius"`       // item distance from center (default: 44)
	IndicatorRadius  float64 `toml:"indicator_radius"`  // indicator distance from center (default: 48)
	IndicatorPadding float64 `toml:"indicator_padding"` // indicator edge = button + padding (default: 24)
	IndicatorTilt    float64 `toml:"indicator_tilt"`    // extra indicator rotation in degrees (default: 45)
	ControllerSize   float64 `toml:"controller_size"`   // controller button edge (default: 40)
}

// DefaultLayout returns the stock dimensions.
func DefaultLayout() Layout {
	return Layout{
		ButtonSize:       24,
		SurfaceSize:      48 * 3,
		ItemRadius:       44,
		IndicatorRadius:  48,
		IndicatorPadding: 24,
		IndicatorTilt:    45,
		ControllerSize:   40,
	}
}

// IndicatorSize is the edge of the selection indicator.
func (l Layout) IndicatorSize() float64 {
	return l.ButtonSize + l.IndicatorPadding
}

// Validate checks that every dimension is usable.
func (l Layout) Validate() error {
	switch {
	case l.ButtonSize <= 0:
		return &LayoutError{Field: "ButtonSize", Message: "must be positive"}
	case l.SurfaceSize <= 0:
		return &LayoutError{Field: "SurfaceSize", Message: "must be positive"}
	case l.ItemRadius <= 0:
		return &LayoutError{Field: "ItemRadius", Message: "must be positive"}
	case l.IndicatorRadius <= 0:
		return &LayoutError{Field: "IndicatorRadius", Message: "must be positive"}
	case l.IndicatorPadding < 0:
		return &LayoutError{Field: "IndicatorPadding", Message: "must not be negative"}
	case l.ControllerSize <= 0:
		return &LayoutError{Field: "ControllerSize", Message: "must be positive"}
	case l.ItemRadius*2 > l.SurfaceSize:
		return &LayoutError{Field: "ItemRadius", Message: "ring does not fit inside the surface"}
	}
	return nil
}

// LayoutError represents an invalid layout dimension.
type LayoutError struct {
	Field   string
	Message string
}

func (e *LayoutError) Error() string {
	return "layout error: " + e.Field + " " + e.Message
}
