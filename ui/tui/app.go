package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"circularmenu/internal/animation"
	"circularmenu/internal/config"
	"circularmenu/internal/geometry"
	"circularmenu/internal/i18n"
	"circularmenu/internal/journal"
	"circularmenu/internal/menu"
	"circularmenu/internal/output"
	"circularmenu/ui/tui/components"
	"circularmenu/ui/tui/state"
	"circularmenu/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const maxConsoleLines = 100

// History is the read side of the transition journal.
type History interface {
	Recent(ctx context.Context, limit int) ([]journal.Entry, error)
	Count(ctx context.Context) (int64, error)
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	menu      *menu.State
	widget    *components.CircularMenu
	inspector *components.Inspector
	zones     *zone.Manager
	loc       *i18n.Localizer
	history   History
	policy    geometry.Policy
	interval  time.Duration

	keys           keyMap
	help           help.Model
	spinner        spinner.Model
	state          state.AppState
	detach         func()
	consoleScrollY int
	quitting       bool
	width          int
	height         int
}

// Messages
type TickMsg time.Time
type AnimateMsg time.Time
type HistoryLoadedMsg struct {
	Entries []journal.Entry
	Count   int64
	Err     error
}

// InitialModel wires the widget to st. history may be nil when the journal
// is disabled; the console then shows transitions seen by this process.
func InitialModel(cfg config.Config, st *menu.State, history History) (*MainModel, error) {
	loc, err := i18n.New(cfg.Locale)
	if err != nil {
		slog.Warn("unknown locale, using English", "locale", cfg.Locale, "error", err)
		loc = i18n.Default()
	}
	easing, err := animation.ParseEasing(cfg.Animation.Easing)
	if err != nil {
		return nil, err
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &MainModel{
		menu:      st,
		zones:     zone.New(),
		loc:       loc,
		history:   history,
		policy:    cfg.Animation.Policy,
		interval:  cfg.Animation.FrameInterval,
		help:      help.New(),
		spinner:   s,
		inspector: components.NewInspector(40, 10),
		state: state.AppState{
			CurrentPage: state.PageMenu,
		},
	}
	if m.interval <= 0 {
		m.interval = 16 * time.Millisecond
	}

	fps := int(time.Second / m.interval)
	m.widget = components.NewCircularMenu(st, m.onSelected,
		components.WithZones(m.zones),
		components.WithLocalizer(loc),
		components.WithFPS(fps),
		components.WithDriverOptions(
			animation.WithPolicy(cfg.Animation.Policy),
			animation.WithEasing(easing),
		),
	)
	m.keys = newKeyMap(m.widget.Keys(), loc)
	m.detach = st.Subscribe(m.onSnapshot)
	return m, nil
}

func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(),
		animateCmd(m.interval),
	)
}

// Close releases the widget and the zone manager.
func (m *MainModel) Close() {
	if m.detach != nil {
		m.detach()
		m.detach = nil
	}
	m.widget.Close()
	m.zones.Close()
}

// onSelected runs before the state records the selection.
func (m *MainModel) onSelected(i int) {
	m.state.LastSelected = m.menu.Item(i).Title
	m.state.HasSelection = true
	slog.Info("menu item selected", "index", i, "title", m.state.LastSelected)
}

func (m *MainModel) onSnapshot(snap menu.Snapshot) {
	t := animation.TimingsFor(snap, m.policy)
	logLine := fmt.Sprintf("[%s] #%d %-6s expanded=%-5v selected=%d previous=%d | expand %dms rotate %dms select %dms",
		time.Now().Format("15:04:05"),
		snap.Seq,
		snap.Cause,
		snap.Expanded,
		snap.SelectedIndex,
		snap.PreviousIndex,
		t.Expansion.Milliseconds(),
		t.Rotation.Milliseconds(),
		t.Selection.Milliseconds(),
	)
	if m.history == nil {
		m.appendEvent(logLine)
		m.state.EventCount++
	}
	slog.Debug("menu transition", "seq", snap.Seq, "cause", snap.Cause.String())
}

func (m *MainModel) appendEvent(line string) {
	m.state.Events = append(m.state.Events, line)
	if len(m.state.Events) > maxConsoleLines {
		m.state.Events = m.state.Events[1:]
	}
}

// Commands
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second*1, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animateCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func fetchHistoryCmd(h History) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		entries, err := h.Recent(ctx, maxConsoleLines)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		n, err := h.Count(ctx)
		return HistoryLoadedMsg{Entries: entries, Count: n, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case TickMsg:
		return m.handleTickMsg(msg)

	case HistoryLoadedMsg:
		return m.handleHistoryLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state.CurrentPage {
	case state.PageMenu:
		switch {
		case key.Matches(msg, m.keys.Inspector):
			m.state.CurrentPage = state.PageInspector
		case key.Matches(msg, m.keys.Report):
			m.state.CurrentPage = state.PageReport
		case key.Matches(msg, m.keys.Console):
			m.state.CurrentPage = state.PageConsole
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			m.widget.Update(msg)
		}
		return m, nil

	case state.PageConsole:
		switch msg.String() {
		case "up", "k":
			if m.consoleScrollY > 0 {
				m.consoleScrollY--
			}
		case "down", "j":
			m.consoleScrollY++
		}

	case state.PageInspector:
		if key.Matches(msg, m.keys.Cycle) {
			m.inspector.Cycle()
			return m, nil
		}
	}

	if key.Matches(msg, m.keys.Back) {
		m.state.CurrentPage = state.PageMenu
		m.consoleScrollY = 0
	}
	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.widget.Advance(time.Time(msg))
	if m.widget.Animating() {
		m.inspector.Push(m.widget.Frame(), m.menu.ItemCount())
	}
	return m, animateCmd(m.interval)
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	newW := msg.Width/2 - 6
	if newW > 10 {
		m.inspector.Resize(newW, 10)
	}
	return m, nil
}

func (m *MainModel) handleTickMsg(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.history == nil {
		return m, tickCmd()
	}
	return m, tea.Batch(
		fetchHistoryCmd(m.history),
		tickCmd(),
	)
}

func (m *MainModel) handleHistoryLoadedMsg(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state.Err = msg.Err
		slog.Warn("failed to read journal", "error", msg.Err)
		return m, nil
	}
	m.state.Err = nil
	m.state.EventCount = msg.Count
	m.state.LastUpdate = time.Now()

	// Entries arrive newest first; the console reads top to bottom.
	m.state.Events = m.state.Events[:0]
	for i := len(msg.Entries) - 1; i >= 0; i-- {
		e := msg.Entries[i]
		m.appendEvent(fmt.Sprintf("[%s] #%d %-6s expanded=%-5v selected=%d previous=%d | expand %dms rotate %dms select %dms",
			e.RecordedAt.Format("15:04:05"),
			e.Seq,
			e.Cause,
			e.Expanded,
			e.SelectedIndex,
			e.PreviousIndex,
			e.Expansion.Milliseconds(),
			e.Rotation.Milliseconds(),
			e.Selection.Milliseconds(),
		))
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state.CurrentPage == state.PageMenu {
		m.widget.Update(msg)
	}
	return m, nil
}

func (m *MainModel) props() views.ViewProps {
	content := m.loc.Text(i18n.NothingSelected, nil)
	if m.state.HasSelection {
		content = m.loc.Text(i18n.SelectedTitle, map[string]any{"Title": m.state.LastSelected})
	}
	spin := ""
	if m.widget.Animating() {
		spin = m.spinner.View()
	}
	return views.ViewProps{
		Width:       m.width,
		Height:      m.height,
		ScrollY:     m.consoleScrollY,
		SpinnerView: spin,
		Title:       "CIRCULAR MENU",
		ContentText: content,
		EventsText:  m.loc.Plural(i18n.EventsCount, int(m.state.EventCount), nil),
		Frame:       m.widget.Frame(),
		Timings:     m.widget.Timings(),
		Report:      output.BuildReport(m.menu, m.widget.Frame(), m.policy),
	}
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	props := m.props()
	switch m.state.CurrentPage {
	case state.PageMenu:
		props.WidgetView = m.widget.View()
		props.HelpView = m.help.View(m.keys)
		return m.zones.Scan(views.RenderMenu(m.state, props))
	case state.PageReport:
		return views.RenderReport(m.state, props)
	case state.PageConsole:
		return views.RenderConsole(m.state, props)
	case state.PageInspector:
		props.ChartView = m.inspector.View()
		return views.RenderInspector(m.state, props)
	default:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Unknown page\n\nPress 'b' to go back"),
		)
	}
}

// Start runs the host until the user quits.
func Start(cfg config.Config, st *menu.State, history History) error {
	m, err := InitialModel(cfg, st, history)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
