package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"circularmenu/internal/animation"
	"circularmenu/internal/geometry"
	"circularmenu/internal/journal"
	"circularmenu/internal/menu"
	"circularmenu/internal/output"
)

// HistoryReader is the read side of the transition journal.
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]journal.Entry, error)
	Stats(ctx context.Context) ([]journal.CauseCount, error)
}

// Server exposes one menu state as MCP tools. Tool calls may arrive
// concurrently, so every handler holds mu while it touches the state.
type Server struct {
	mcpServer *mcp.Server
	history   HistoryReader
	clock     animation.Clock
	policy    geometry.Policy

	mu     sync.Mutex
	state  *menu.State
	driver *animation.Driver
	last   menu.Snapshot
	detach func()
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
	Policy        geometry.Policy
	Easing        animation.Easing // nil means FastOutSlowIn
}

// NewServer creates a new MCP server instance. history may be nil when the
// journal is disabled.
func NewServer(cfg Config, state *menu.State, history HistoryReader, clock animation.Clock) (*Server, error) {
	if state == nil {
		return nil, errors.New("menu state is required")
	}
	if clock == nil {
		clock = animation.SystemClock{}
	}
	if cfg.ServerName == "" {
		cfg.ServerName = "circularmenu"
	}
	if cfg.Policy == (geometry.Policy{}) {
		cfg.Policy = geometry.DefaultPolicy()
	}

	s := &Server{
		history: history,
		clock:   clock,
		policy:  cfg.Policy,
		state:   state,
		driver:  animation.NewDriver(state.Snapshot(), animation.WithPolicy(cfg.Policy), animation.WithEasing(cfg.Easing)),
		last:    state.Snapshot(),
	}
	s.detach = state.Subscribe(func(snap menu.Snapshot) {
		s.driver.Apply(snap, s.clock.Now())
		s.last = snap
	})

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}
	s.mcpServer = mcp.NewServer(impl, nil)
	s.registerTools()
	return s, nil
}

// EmptyArgs is the input of tools that take no arguments.
type EmptyArgs struct{}

// SelectArgs defines the input for menu_select tool.
type SelectArgs struct {
	Index int `json:"index" jsonschema:"zero-based item index to select"`
}

// HistoryArgs defines the input for menu_history tool.
type HistoryArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of transitions to return"`
}

// StateResult is the menu state after a tool call together with the
// animation timings the call started.
type StateResult struct {
	Seq           uint64  `json:"seq"`
	Cause         string  `json:"cause"`
	Expanded      bool    `json:"expanded"`
	SelectedIndex int     `json:"selected_index"`
	PreviousIndex int     `json:"previous_index"`
	ItemCount     int     `json:"item_count"`
	AngleStep     float64 `json:"angle_step"`
	ExpansionMS   int64   `json:"expansion_ms"`
	RotationMS    int64   `json:"rotation_ms"`
	SelectionMS   int64   `json:"selection_ms"`
}

// HistoryEntry is one journal row in tool output.
type HistoryEntry struct {
	Seq           uint64  `json:"seq"`
	Cause         string  `json:"cause"`
	Expanded      bool    `json:"expanded"`
	SelectedIndex int     `json:"selected_index"`
	PreviousIndex int     `json:"previous_index"`
	AngleStep     float64 `json:"angle_step"`
	ExpansionMS   int64   `json:"expansion_ms"`
	RotationMS    int64   `json:"rotation_ms"`
	SelectionMS   int64   `json:"selection_ms"`
	RecordedAt    string  `json:"recorded_at" jsonschema:"RFC 3339 timestamp"`
}

// HistoryResult wraps journal entries.
type HistoryResult struct {
	Entries []HistoryEntry       `json:"entries" jsonschema:"most recent transitions first"`
	Counts  []journal.CauseCount `json:"counts" jsonschema:"transitions per cause"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "menu_show",
		Description: "Expand the circular menu. Does nothing when it is already expanded.",
	}, s.handleShow)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "menu_hide",
		Description: "Collapse the circular menu and reset the previous selection to 0. Does nothing when it is already collapsed.",
	}, s.handleHide)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "menu_toggle",
		Description: "Flip the circular menu between expanded and collapsed.",
	}, s.handleToggle)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "menu_select",
		Description: "Select the item at index. The index must be within [0, item_count).",
	}, s.handleSelect)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "menu_state",
		Description: "Describe the menu: state, ring layout per item, animation timings and the current animation frame.",
	}, s.handleState)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "menu_history",
		Description: "Query recorded menu transitions from the DuckDB journal, newest first, with counts per cause.",
	}, s.handleHistory)
}

func (s *Server) handleShow(_ context.Context, _ *mcp.CallToolRequest, _ EmptyArgs) (*mcp.CallToolResult, StateResult, error) {
	res, err := s.mutate(func(st *menu.State) error { st.Show(); return nil })
	return nil, res, err
}

func (s *Server) handleHide(_ context.Context, _ *mcp.CallToolRequest, _ EmptyArgs) (*mcp.CallToolResult, StateResult, error) {
	res, err := s.mutate(func(st *menu.State) error { st.Hide(); return nil })
	return nil, res, err
}

func (s *Server) handleToggle(_ context.Context, _ *mcp.CallToolRequest, _ EmptyArgs) (*mcp.CallToolResult, StateResult, error) {
	res, err := s.mutate(func(st *menu.State) error { st.Toggle(); return nil })
	return nil, res, err
}

func (s *Server) handleSelect(_ context.Context, _ *mcp.CallToolRequest, args SelectArgs) (*mcp.CallToolResult, StateResult, error) {
	res, err := s.mutate(func(st *menu.State) error { return st.SelectMenu(args.Index) })
	if err != nil {
		return nil, StateResult{}, fmt.Errorf("select failed: %w", err)
	}
	return nil, res, nil
}

func (s *Server) handleState(_ context.Context, _ *mcp.CallToolRequest, _ EmptyArgs) (*mcp.CallToolResult, output.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := s.driver.Sample(s.clock.Now())
	return nil, output.BuildReport(s.state, frame, s.policy), nil
}

func (s *Server) handleHistory(ctx context.Context, _ *mcp.CallToolRequest, args HistoryArgs) (*mcp.CallToolResult, HistoryResult, error) {
	if s.history == nil {
		return nil, HistoryResult{}, errors.New("journal is disabled")
	}
	limit := args.Limit
	if limit == 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	entries, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, HistoryResult{}, fmt.Errorf("failed to query history: %w", err)
	}
	counts, err := s.history.Stats(ctx)
	if err != nil {
		return nil, HistoryResult{}, fmt.Errorf("failed to query stats: %w", err)
	}

	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntry{
			Seq:           e.Seq,
			Cause:         e.Cause,
			Expanded:      e.Expanded,
			SelectedIndex: e.SelectedIndex,
			PreviousIndex: e.PreviousIndex,
			AngleStep:     e.AngleStep,
			ExpansionMS:   e.Expansion.Milliseconds(),
			RotationMS:    e.Rotation.Milliseconds(),
			SelectionMS:   e.Selection.Milliseconds(),
			RecordedAt:    e.RecordedAt.Format(time.RFC3339),
		})
	}
	return nil, HistoryResult{Entries: out, Counts: counts}, nil
}

// mutate runs fn under the lock and reports the resulting state. Calls that
// change nothing report the cause "none".
func (s *Server) mutate(fn func(*menu.State) error) (StateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.last.Seq
	if err := fn(s.state); err != nil {
		slog.Info("mcp call rejected", "error", err)
		return StateResult{}, err
	}
	snap := s.state.Snapshot()

	cause := "none"
	if s.last.Seq != before {
		cause = s.last.Cause.String()
	}
	t := animation.TimingsFor(snap, s.policy)
	return StateResult{
		Seq:           snap.Seq,
		Cause:         cause,
		Expanded:      snap.Expanded,
		SelectedIndex: snap.SelectedIndex,
		PreviousIndex: snap.PreviousIndex,
		ItemCount:     snap.ItemCount,
		AngleStep:     snap.AngleStep,
		ExpansionMS:   t.Expansion.Milliseconds(),
		RotationMS:    t.Rotation.Milliseconds(),
		SelectionMS:   t.Selection.Milliseconds(),
	}, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("starting circularmenu MCP server on stdio")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// Close detaches from the menu state.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	return nil
}
