package menu

import "testing"

func TestColorChannels(t *testing.T) {
	c := Color(0xF3979797)
	if c.A() != 0xF3 || c.R() != 0x97 || c.G() != 0x97 || c.B() != 0x97 {
		t.Errorf("Unexpected channels for %s", c)
	}
	if c.Hex() != "#979797" {
		t.Errorf("Expected hex #979797, got %s", c.Hex())
	}
	if c.String() != "#F3979797" {
		t.Errorf("Expected #F3979797, got %s", c.String())
	}
}

func TestColorUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#223FFF", 0xFF223FFF, false},
		{"#80223FFF", 0x80223FFF, false},
		{"223fff", 0xFF223FFF, false},
		{"#12345", 0, true},
		{"#GGGGGG", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c Color
			err := c.UnmarshalText([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && c != tt.want {
				t.Errorf("UnmarshalText(%q) = %s, want %s", tt.in, c, tt.want)
			}
		})
	}
}

func TestDefaultColors(t *testing.T) {
	c := DefaultColors()
	if c.OverlayBorder != White {
		t.Errorf("Expected white border, got %s", c.OverlayBorder)
	}
	if c.ControllerContainer != 0xFF223FFF {
		t.Errorf("Expected controller container #FF223FFF, got %s", c.ControllerContainer)
	}
	if c.SelectedIcon != 0xFFFAFCFF || c.UnselectedIcon != 0xF3979797 || c.ControllerIcon != 0xFFFFFFFF {
		t.Errorf("Unexpected icon defaults: %+v", c)
	}
}

func TestColorsWithMethods(t *testing.T) {
	base := DefaultColors()
	custom := base.
		WithSelectedIcon(0xFFFFFFFF).
		WithUnselectedIcon(0xFFD97069).
		WithControllerContainer(0xFFE31F11).
		WithControllerIcon(0xFF000000).
		WithOverlayBorder(0x80FFFFFF)

	if custom.UnselectedIcon != 0xFFD97069 || custom.ControllerContainer != 0xFFE31F11 {
		t.Errorf("With methods failed: %+v", custom)
	}
	if custom.ControllerIcon != 0xFF000000 || custom.OverlayBorder != 0x80FFFFFF {
		t.Errorf("With methods failed: %+v", custom)
	}
	if base.UnselectedIcon != 0xF3979797 {
		t.Error("With methods mutated the original")
	}
}

func TestDefaultBrushes(t *testing.T) {
	b := DefaultBrushes()
	if b.Overlay.Kind != GradientRadial || len(b.Overlay.Stops) != 2 {
		t.Fatalf("Unexpected overlay brush: %+v", b.Overlay)
	}
	if b.Overlay.Stops[0] != 0xFF060C25 || b.Overlay.Stops[1] != 0xFF224EFF {
		t.Errorf("Unexpected overlay stops: %v", b.Overlay.Stops)
	}
	if b.Indicator.Stops[0] != 0xFF214BF3 {
		t.Errorf("Unexpected indicator stops: %v", b.Indicator.Stops)
	}

	lin := b.WithIndicator(LinearGradient(0xFFD7382E, 0xFFE88D87))
	if lin.Indicator.Kind != GradientLinear {
		t.Errorf("Expected linear indicator, got %s", lin.Indicator.Kind)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Layout)
		wantErr bool
	}{
		{"default", func(*Layout) {}, false},
		{"zero button", func(l *Layout) { l.ButtonSize = 0 }, true},
		{"negative padding", func(l *Layout) { l.IndicatorPadding = -1 }, true},
		{"ring outside surface", func(l *Layout) { l.ItemRadius = 100 }, true},
		{"zero controller", func(l *Layout) { l.ControllerSize = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(&l)
			if err := l.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if DefaultLayout().IndicatorSize() != 48 {
		t.Errorf("Expected indicator size 48, got %f", DefaultLayout().IndicatorSize())
	}
}
