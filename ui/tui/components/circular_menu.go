package components

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"circularmenu/internal/animation"
	"circularmenu/internal/geometry"
	"circularmenu/internal/i18n"
	"circularmenu/internal/menu"
)

// Terminal cells are about twice as tall as they are wide.
const (
	defaultColsPerUnit = 0.25
	defaultRowsPerUnit = 0.125
	defaultFPS         = 60
)

// ErrNoButton is returned when tapping an item whose icon is only a
// placeholder.
var ErrNoButton = errors.New("item has no button")

// MenuOption configures a CircularMenu.
type MenuOption func(*CircularMenu)

// WithClock supplies frame time for snapshots. Defaults to the system clock.
func WithClock(c animation.Clock) MenuOption {
	return func(m *CircularMenu) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithZones enables mouse hit testing through z. The outermost model must
// pass its view through z.Scan.
func WithZones(z *zone.Manager) MenuOption {
	return func(m *CircularMenu) {
		m.zones = z
	}
}

// WithLocalizer sets the language of descriptions and help.
func WithLocalizer(l *i18n.Localizer) MenuOption {
	return func(m *CircularMenu) {
		if l != nil {
			m.loc = l
		}
	}
}

// WithDriverOptions forwards policy and easing to the animation driver.
func WithDriverOptions(opts ...animation.DriverOption) MenuOption {
	return func(m *CircularMenu) {
		m.driverOpts = append(m.driverOpts, opts...)
	}
}

// WithScale sets how many cells one layout unit covers.
func WithScale(colsPerUnit, rowsPerUnit float64) MenuOption {
	return func(m *CircularMenu) {
		if colsPerUnit > 0 && rowsPerUnit > 0 {
			m.sx, m.sy = colsPerUnit, rowsPerUnit
		}
	}
}

// WithFPS sets the frame rate the focus spring is stepped at.
func WithFPS(fps int) MenuOption {
	return func(m *CircularMenu) {
		if fps > 0 {
			m.fps = fps
		}
	}
}

// CircularMenu draws a menu.State as a ring of cells and feeds taps and
// keys back into it.
type CircularMenu struct {
	state      *menu.State
	onSelected func(int)
	clock      animation.Clock
	zones      *zone.Manager
	zoneID     string
	loc        *i18n.Localizer
	keys       MenuKeyMap

	driverOpts []animation.DriverOption
	driver     *animation.Driver
	detach     func()
	frame      animation.Frame

	focus  int
	spring *animation.Spring
	fps    int

	sx, sy float64
}

// NewCircularMenu attaches a renderer to state. onSelected, when set, runs
// before state.SelectMenu for every item tap, so it still sees the old
// selection.
func NewCircularMenu(state *menu.State, onSelected func(int), opts ...MenuOption) *CircularMenu {
	c := &CircularMenu{
		state:      state,
		onSelected: onSelected,
		clock:      animation.SystemClock{},
		loc:        i18n.Default(),
		focus:      HitController,
		fps:        defaultFPS,
		sx:         defaultColsPerUnit,
		sy:         defaultRowsPerUnit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.keys = DefaultMenuKeyMap(c.loc)
	if c.zones != nil {
		c.zoneID = c.zones.NewPrefix() + "ring"
	}

	// Same feel as a list cursor: quick, barely any overshoot.
	c.spring = animation.NewSpring(c.fps, 12.0, 0.9)

	c.driver = animation.NewDriver(state.Snapshot(), c.driverOpts...)
	c.detach = state.Subscribe(c.onSnapshot)
	c.frame = c.driver.Sample(c.clock.Now())
	return c
}

func (c *CircularMenu) onSnapshot(snap menu.Snapshot) {
	c.driver.Apply(snap, c.clock.Now())
	if !snap.Expanded {
		c.focus = HitController
	}
}

// Close stops following the state.
func (c *CircularMenu) Close() {
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
}

func (c *CircularMenu) Init() tea.Cmd {
	return nil
}

func (c *CircularMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		c.handleKey(msg)
	case tea.MouseMsg:
		c.handleMouse(msg)
	}
	return c, nil
}

// Advance samples the animation at now and steps the focus spring once.
func (c *CircularMenu) Advance(now time.Time) {
	c.frame = c.driver.Sample(now)
	if c.focus >= 0 {
		c.spring.Update(float64(c.focus))
	}
}

// Animating reports whether another frame would change the picture.
func (c *CircularMenu) Animating() bool {
	if c.frame.Animating {
		return true
	}
	return c.focus >= 0 && !c.spring.Settled(float64(c.focus))
}

func (c *CircularMenu) Frame() animation.Frame { return c.frame }
func (c *CircularMenu) Focus() int             { return c.focus }
func (c *CircularMenu) Keys() MenuKeyMap       { return c.keys }
func (c *CircularMenu) State() *menu.State     { return c.state }

// Timings are the durations started by the latest transition.
func (c *CircularMenu) Timings() animation.Timings {
	return c.driver.LastTimings()
}

// Tap behaves like a click on item i. Placeholder items have no button and
// return ErrNoButton without touching the state.
func (c *CircularMenu) Tap(i int) error {
	if i < 0 || i >= c.state.ItemCount() {
		return &menu.IndexError{Index: i, Count: c.state.ItemCount()}
	}
	if !tappable(c.state.Item(i).Icon) {
		return fmt.Errorf("item %d: %w", i, ErrNoButton)
	}
	if c.onSelected != nil {
		c.onSelected(i)
	}
	return c.state.SelectMenu(i)
}

// TapController behaves like a click on the central button.
func (c *CircularMenu) TapController() {
	c.state.Toggle()
}

func (c *CircularMenu) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Toggle):
		c.TapController()
	case key.Matches(msg, c.keys.Hide):
		c.state.Hide()
	case key.Matches(msg, c.keys.Next):
		c.moveFocus(1)
	case key.Matches(msg, c.keys.Prev):
		c.moveFocus(-1)
	case key.Matches(msg, c.keys.Select):
		if c.focus == HitController {
			c.TapController()
			return
		}
		_ = c.Tap(c.focus)
	}
}

// moveFocus cycles through the controller and every item. Items can only
// take focus while the ring is open.
func (c *CircularMenu) moveFocus(delta int) {
	n := c.state.ItemCount()
	if !c.state.Expanded() || n == 0 {
		return
	}
	from := c.focus
	slots := n + 1
	pos := ((c.focus+1+delta)%slots + slots) % slots
	c.focus = pos - 1
	if from == HitController && c.focus >= 0 {
		c.spring.Jump(float64(c.focus))
	}
}

func (c *CircularMenu) handleMouse(msg tea.MouseMsg) {
	if c.zones == nil || msg.Action != tea.MouseActionRelease {
		return
	}
	z := c.zones.Get(c.zoneID)
	if !z.InBounds(msg) {
		return
	}
	x, y := z.Pos(msg)
	c.hit(c.HitTest(x, y))
}

func (c *CircularMenu) hit(target int) {
	switch {
	case target == HitController:
		c.TapController()
	case target >= 0:
		c.focus = target
		c.spring.Jump(float64(target))
		_ = c.Tap(target)
	}
}

// HitTest maps a cell inside the widget to HitController, an item index
// or HitNone.
func (c *CircularMenu) HitTest(x, y int) int {
	return c.render().hit(x, y)
}

// Size is the width and height of the ring in cells.
func (c *CircularMenu) Size() (int, int) {
	l := c.state.Layout()
	return oddCells(l.SurfaceSize * c.sx), oddCells(l.SurfaceSize * c.sy)
}

func (c *CircularMenu) View() string {
	g := c.render()
	body := g.String()
	if c.zones != nil {
		body = c.zones.Mark(c.zoneID, body)
	}
	caption := lipgloss.NewStyle().
		Width(g.w).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color("#888")).
		Render(c.Caption())
	return lipgloss.JoinVertical(lipgloss.Left, body, caption)
}

// Caption describes the focused element.
func (c *CircularMenu) Caption() string {
	if c.focus < 0 || c.focus >= c.state.ItemCount() {
		return c.loc.Text(i18n.ControllerDescription, nil)
	}
	it := c.state.Item(c.focus)
	desc := it.Title + " · " + c.loc.Text(i18n.ItemDescription, nil)
	switch icon := it.Icon.(type) {
	case menu.ResourceIcon:
		desc += " · " + c.loc.Text(i18n.PlaceholderResource, map[string]any{"ID": icon.ID})
	case menu.URLIcon:
		desc += " · " + c.loc.Text(i18n.PlaceholderURL, nil)
	}
	return desc
}

// render paints surface, indicator, controller and items in that order.
func (c *CircularMenu) render() *grid {
	w, h := c.Size()
	g := newGrid(w, h)

	visible := c.state.Expanded() || c.frame.Expansion != 0
	if visible {
		c.paintSurface(g)
		c.paintIndicator(g)
	}
	c.paintController(g)
	for i := 0; i < c.state.ItemCount() && i < c.frame.Expansion; i++ {
		c.paintItem(g, i)
	}
	if visible && c.focus >= 0 {
		c.paintFocus(g)
	}
	return g
}

func (c *CircularMenu) toCell(g *grid, p geometry.Point) (int, int) {
	return g.w/2 + int(math.Round(p.X*c.sx)), g.h/2 + int(math.Round(p.Y*c.sy))
}

func (c *CircularMenu) toUnits(g *grid, x, y int) geometry.Point {
	return geometry.Point{
		X: float64(x-g.w/2) / c.sx,
		Y: float64(y-g.h/2) / c.sy,
	}
}

func (c *CircularMenu) paintSurface(g *grid) {
	radius := c.state.Layout().SurfaceSize / 2
	brush := c.state.Brushes().Overlay
	border := c.state.Colors().OverlayBorder

	inside := func(x, y int) bool {
		if !g.in(x, y) {
			return false
		}
		p := c.toUnits(g, x, y)
		return math.Hypot(p.X, p.Y) <= radius
	}

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if !inside(x, y) {
				continue
			}
			p := c.toUnits(g, x, y)
			var t float64
			if brush.Kind == menu.GradientLinear {
				t = (float64(x)/float64(max(g.w-1, 1)) + float64(y)/float64(max(g.h-1, 1))) / 2
			} else {
				t = math.Hypot(p.X, p.Y) / radius
			}
			col := sampleGradient(brush, t)
			if !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1) {
				col = over(col, border)
			}
			g.at(x, y).bg = col.Clamped().Hex()
		}
	}
}

// paintIndicator draws a quarter disc whose corner sits at the bottom-left
// of its box, then turns it by the placement rotation so the corner points
// at the ring center.
func (c *CircularMenu) paintIndicator(g *grid) {
	l := c.state.Layout()
	pl := geometry.IndicatorPlacement(c.frame.Selection, c.state.AngleStep(), l.IndicatorRadius, l.IndicatorTilt)
	half := l.IndicatorSize() / 2
	if half <= 0 {
		return
	}
	rad := -pl.Rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	brush := c.state.Brushes().Indicator

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := c.toUnits(g, x, y)
			dx, dy := p.X-pl.Offset.X, p.Y-pl.Offset.Y
			lx := dx*cos - dy*sin
			ly := dx*sin + dy*cos
			if lx < -half || lx > half || ly < -half || ly > half {
				continue
			}
			d := math.Hypot(lx+half, ly-half)
			if d > 2*half {
				continue
			}
			g.at(x, y).bg = sampleGradient(brush, d/(2*half)).Clamped().Hex()
		}
	}
}

func (c *CircularMenu) paintController(g *grid) {
	l := c.state.Layout()
	colors := c.state.Colors()
	radius := l.ControllerSize / 2
	bg := hexOf(colors.ControllerContainer)

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := c.toUnits(g, x, y)
			if math.Hypot(p.X, p.Y) > radius {
				continue
			}
			cl := g.at(x, y)
			cl.bg = bg
			cl.hit = HitController
		}
	}

	center := g.at(g.w/2, g.h/2)
	center.bg = bg
	center.hit = HitController
	center.glyph = controllerGlyph(c.state.Expanded(), c.frame.Rotation)
	center.fg = hexOf(colors.ControllerIcon)
	center.bold = true
	center.under = c.focus == HitController
}

// controllerGlyph picks the close or add glyph and flips it every 45° of
// spin, which is what a turning cross looks like on a cell.
func controllerGlyph(expanded bool, rotation float64) string {
	a, b := "+", "×"
	if expanded {
		a, b = b, a
	}
	if int(math.Round(rotation/45))%2 != 0 {
		return b
	}
	return a
}

func (c *CircularMenu) paintItem(g *grid, i int) {
	l := c.state.Layout()
	colors := c.state.Colors()
	pl := geometry.ItemPlacement(i, c.state.AngleStep(), l.ItemRadius)
	cx, cy := c.toCell(g, pl.Offset)

	button := tappable(c.state.Item(i).Icon)
	bw := max(int(math.Round(l.ButtonSize*c.sx)), 1)
	bh := max(int(math.Round(l.ButtonSize*c.sy)), 1)
	for y := cy - bh/2; y < cy-bh/2+bh; y++ {
		for x := cx - bw/2; x < cx-bw/2+bw; x++ {
			if cl := g.at(x, y); cl != nil && button {
				cl.hit = i
			}
		}
	}

	cl := g.at(cx, cy)
	if cl == nil {
		return
	}
	glyph := iconGlyph(c.state.Item(i).Icon)
	cl.glyph = glyph
	if i == c.state.SelectedIndex() {
		cl.fg = hexOf(colors.SelectedIcon)
		cl.bold = true
	} else {
		cl.fg = hexOf(colors.UnselectedIcon)
	}
	cl.under = c.focus == i
	if lipgloss.Width(glyph) > 1 {
		if next := g.at(cx+1, cy); next != nil {
			next.glyph = ""
		}
	}
}

// paintFocus puts a dot outside the focused item. Its angle follows the
// spring, so the dot glides between items.
func (c *CircularMenu) paintFocus(g *grid) {
	l := c.state.Layout()
	angle := c.state.AngleStep() * c.spring.Position()
	p := geometry.Polar(angle, l.ItemRadius+l.ButtonSize/2+6)
	x, y := c.toCell(g, p)
	if cl := g.at(x, y); cl != nil {
		cl.glyph = "•"
		cl.fg = hexOf(c.state.Colors().ControllerIcon)
	}
}

// iconGlyph handles every IconRef variant. Bitmap and remote icons are not
// drawn yet and show a placeholder.
func iconGlyph(icon menu.IconRef) string {
	switch ic := icon.(type) {
	case menu.VectorIcon:
		if ic.Glyph == "" {
			return "•"
		}
		return ic.Glyph
	case menu.ResourceIcon:
		return "□"
	case menu.URLIcon:
		return "⋯"
	case nil:
		return " "
	default:
		panic(fmt.Sprintf("unhandled icon %T", icon))
	}
}

// tappable reports whether the item is drawn as a button. Resource and URL
// icons only reserve their slot.
func tappable(icon menu.IconRef) bool {
	return icon != nil && icon.Kind() == menu.IconVector
}

func oddCells(v float64) int {
	n := int(math.Round(v))
	if n%2 == 0 {
		n++
	}
	return max(n, 1)
}
