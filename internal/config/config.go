// Package config loads the circularmenu settings file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"circularmenu/internal/geometry"
	"circularmenu/internal/logging"
	"circularmenu/internal/menu"
)

// RelPath is the settings file location under the XDG config dirs.
const RelPath = "circularmenu/config.toml"

// Item kinds accepted in [[menu.items]].
const (
	KindVector   = "vector"
	KindResource = "resource"
	KindURL      = "url"
)

// ItemConfig describes one ring entry. Only the field matching Kind is read.
type ItemConfig struct {
	Title    string `toml:"title"`
	Kind     string `toml:"kind"`
	Glyph    string `toml:"glyph,omitempty"`
	Resource int    `toml:"resource,omitempty"`
	URL      string `toml:"url,omitempty"`
}

// MenuItem converts the entry. An empty kind means vector.
func (ic ItemConfig) MenuItem() (menu.MenuItem, error) {
	switch ic.Kind {
	case "", KindVector:
		return menu.MenuItem{Title: ic.Title, Icon: menu.VectorIcon{Glyph: ic.Glyph}}, nil
	case KindResource:
		return menu.MenuItem{Title: ic.Title, Icon: menu.ResourceIcon{ID: ic.Resource}}, nil
	case KindURL:
		return menu.MenuItem{Title: ic.Title, Icon: menu.URLIcon{URL: ic.URL}}, nil
	default:
		return menu.MenuItem{}, fmt.Errorf("item %q: unknown icon kind %q", ic.Title, ic.Kind)
	}
}

type MenuConfig struct {
	InitialExpanded bool         `toml:"initial_expanded"`
	Items           []ItemConfig `toml:"items"`
	Layout          menu.Layout  `toml:"layout"`
	Colors          menu.Colors  `toml:"colors"`
	Brushes         menu.Brushes `toml:"brushes"`
}

type AnimationConfig struct {
	FrameInterval time.Duration   `toml:"frame_interval"` // host tick (default: 16ms)
	Easing        string          `toml:"easing"`         // "fast_out_slow_in" or "linear"
	Policy        geometry.Policy `toml:"policy"`
}

type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // empty means the XDG state dir
}

type JournalConfig struct {
	Enabled       bool   `toml:"enabled"`
	DSN           string `toml:"dsn"` // empty means in-memory
	BufferSize    int    `toml:"buffer_size"`
	Threads       int    `toml:"threads"`         // 0 keeps the DuckDB default
	MemoryLimitMB int    `toml:"memory_limit_mb"` // 0 keeps the DuckDB default
}

// Config is the whole settings file.
type Config struct {
	Locale    string          `toml:"locale"`
	Menu      MenuConfig      `toml:"menu"`
	Animation AnimationConfig `toml:"animation"`
	Log       LogConfig       `toml:"log"`
	Journal   JournalConfig   `toml:"journal"`
}

// DefaultConfig returns the built-in settings: six vector items, collapsed.
func DefaultConfig() Config {
	return Config{
		Locale: "en",
		Menu: MenuConfig{
			InitialExpanded: false,
			Items: []ItemConfig{
				{Title: "Home", Kind: KindVector, Glyph: "⌂"},
				{Title: "Account", Kind: KindVector, Glyph: "◉"},
				{Title: "Favorite", Kind: KindVector, Glyph: "♥"},
				{Title: "Build", Kind: KindVector, Glyph: "⚒"},
				{Title: "Delete", Kind: KindVector, Glyph: "✖"},
				{Title: "Email", Kind: KindVector, Glyph: "✉"},
			},
			Layout:  menu.DefaultLayout(),
			Colors:  menu.DefaultColors(),
			Brushes: menu.DefaultBrushes(),
		},
		Animation: AnimationConfig{
			FrameInterval: 16 * time.Millisecond,
			Easing:        "fast_out_slow_in",
			Policy:        geometry.DefaultPolicy(),
		},
		Log: LogConfig{
			Level: "info",
		},
		Journal: JournalConfig{
			Enabled:    true,
			BufferSize: 64,
		},
	}
}

// WithInitialExpanded returns a copy of the config with the startup expansion changed.
func (c Config) WithInitialExpanded(expanded bool) Config {
	c.Menu.InitialExpanded = expanded
	return c
}

// WithItems returns a copy of the config with a new item list.
func (c Config) WithItems(items []ItemConfig) Config {
	c.Menu.Items = append([]ItemConfig(nil), items...)
	return c
}

// WithLocale returns a copy of the config with a new locale.
func (c Config) WithLocale(locale string) Config {
	c.Locale = locale
	return c
}

// WithLogLevel returns a copy of the config with a new log level.
func (c Config) WithLogLevel(level string) Config {
	c.Log.Level = level
	return c
}

// WithJournalDSN returns a copy of the config with a new journal database.
func (c Config) WithJournalDSN(dsn string) Config {
	c.Journal.DSN = dsn
	return c
}

// WithFrameInterval returns a copy of the config with a new host tick.
func (c Config) WithFrameInterval(d time.Duration) Config {
	c.Animation.FrameInterval = d
	return c
}

// MenuItems converts every configured entry. Entries past menu.MaxItems
// are kept here and dropped by menu.New.
func (c Config) MenuItems() ([]menu.MenuItem, error) {
	items := make([]menu.MenuItem, 0, len(c.Menu.Items))
	for _, ic := range c.Menu.Items {
		item, err := ic.MenuItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// NewState builds the menu state described by the config.
func (c Config) NewState() (*menu.State, error) {
	items, err := c.MenuItems()
	if err != nil {
		return nil, err
	}
	if len(items) > menu.MaxItems {
		slog.Warn("menu truncated", "configured", len(items), "max", menu.MaxItems)
	}
	return menu.New(items,
		menu.WithExpanded(c.Menu.InitialExpanded),
		menu.WithLayout(c.Menu.Layout),
		menu.WithColors(c.Menu.Colors),
		menu.WithBrushes(c.Menu.Brushes),
	), nil
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if len(c.Menu.Items) == 0 {
		return &ConfigError{Field: "menu.items", Message: "must not be empty"}
	}
	for i, ic := range c.Menu.Items {
		if _, err := ic.MenuItem(); err != nil {
			return &ConfigError{Field: fmt.Sprintf("menu.items[%d]", i), Message: err.Error()}
		}
	}
	if err := c.Menu.Layout.Validate(); err != nil {
		return &ConfigError{Field: "menu.layout", Message: err.Error()}
	}
	brushes := []struct {
		field string
		g     menu.Gradient
	}{
		{"menu.brushes.overlay", c.Menu.Brushes.Overlay},
		{"menu.brushes.indicator", c.Menu.Brushes.Indicator},
	}
	for _, b := range brushes {
		if b.g.Kind != menu.GradientRadial && b.g.Kind != menu.GradientLinear {
			return &ConfigError{Field: b.field, Message: "kind must be radial or linear"}
		}
		if len(b.g.Stops) == 0 {
			return &ConfigError{Field: b.field, Message: "needs at least one stop"}
		}
	}
	if c.Animation.FrameInterval <= 0 {
		return &ConfigError{Field: "animation.frame_interval", Message: "must be positive"}
	}
	switch c.Animation.Easing {
	case "fast_out_slow_in", "linear":
	default:
		return &ConfigError{Field: "animation.easing", Message: "must be fast_out_slow_in or linear"}
	}
	if err := c.Animation.Policy.Validate(); err != nil {
		return &ConfigError{Field: "animation.policy", Message: err.Error()}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &ConfigError{Field: "log.level", Message: "unknown level " + c.Log.Level}
	}
	if c.Journal.BufferSize <= 0 {
		return &ConfigError{Field: "journal.buffer_size", Message: "must be positive"}
	}
	if c.Journal.Threads < 0 {
		return &ConfigError{Field: "journal.threads", Message: "must not be negative"}
	}
	if c.Journal.MemoryLimitMB < 0 {
		return &ConfigError{Field: "journal.memory_limit_mb", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// Load reads path over the defaults. An empty path searches the XDG config
// dirs; a missing file there is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		found, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			slog.Debug("no config file, using defaults", "rel", RelPath)
			return cfg, cfg.Validate()
		}
		path = found
	}

	// Arrays replace rather than merge.
	cfg.Menu.Items = nil
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if !md.IsDefined("menu", "items") {
		cfg.Menu.Items = DefaultConfig().Menu.Items
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		slog.Warn("unknown config keys", "path", path, "keys", fmt.Sprint(undecoded))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	slog.Info("config loaded", "path", path, "items", len(cfg.Menu.Items))
	return cfg, nil
}

// Save writes the config to the user XDG config dir and returns the path.
func (c Config) Save() (string, error) {
	path, err := xdg.ConfigFile(RelPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, c.WriteFile(path)
}

// WriteFile encodes the config as TOML to path.
func (c Config) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o664)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
