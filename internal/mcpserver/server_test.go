package mcpserver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"circularmenu/internal/animation"
	"circularmenu/internal/journal"
	"circularmenu/internal/menu"
	"circularmenu/internal/output"
)

// MockHistory implements HistoryReader for testing
type MockHistory struct {
	Entries  []journal.Entry
	Counts   []journal.CauseCount
	Err      error
	GotLimit int
}

func (m *MockHistory) Recent(ctx context.Context, limit int) ([]journal.Entry, error) {
	m.GotLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries, nil
}

func (m *MockHistory) Stats(ctx context.Context) ([]journal.CauseCount, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Counts, nil
}

func newTestServer(t *testing.T, history HistoryReader) (*Server, *animation.ManualClock) {
	t.Helper()
	items := []menu.MenuItem{
		menu.NewVectorItem("Home", "⌂"),
		menu.NewVectorItem("Account", "◉"),
		menu.NewVectorItem("Favorite", "♥"),
		menu.NewVectorItem("Build", "⚒"),
		menu.NewVectorItem("Delete", "✖"),
		menu.NewVectorItem("Email", "✉"),
	}
	clock := animation.NewManualClock(time.Unix(0, 0))
	s, err := NewServer(Config{ServerVersion: "test"}, menu.New(items), history, clock)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, clock
}

func TestNewServerRequiresState(t *testing.T) {
	if _, err := NewServer(Config{}, nil, nil, nil); err == nil {
		t.Error("Expected error for nil state")
	}
}

func TestHandleToggleAndSelect(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ctx := context.Background()

	_, res, err := s.handleToggle(ctx, nil, EmptyArgs{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !res.Expanded || res.Cause != "toggle" || res.ExpansionMS != 300 {
		t.Errorf("Unexpected toggle result %+v", res)
	}

	_, res, _ = s.handleSelect(ctx, nil, SelectArgs{Index: 3})
	if res.SelectedIndex != 3 || res.PreviousIndex != 0 || res.SelectionMS != 180 {
		t.Errorf("Unexpected first select %+v", res)
	}

	_, res, _ = s.handleSelect(ctx, nil, SelectArgs{Index: 5})
	if res.SelectedIndex != 5 || res.PreviousIndex != 3 || res.SelectionMS != 120 {
		t.Errorf("Unexpected second select %+v", res)
	}

	_, res, _ = s.handleToggle(ctx, nil, EmptyArgs{})
	if res.Expanded || res.PreviousIndex != 0 || res.SelectedIndex != 5 || res.ExpansionMS != 600 {
		t.Errorf("Unexpected collapse %+v", res)
	}
}

func TestHandleSelectOutOfRange(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ctx := context.Background()

	_, _, _ = s.handleSelect(ctx, nil, SelectArgs{Index: 2})
	for _, idx := range []int{-1, 6} {
		_, _, err := s.handleSelect(ctx, nil, SelectArgs{Index: idx})
		if !errors.Is(err, menu.ErrInvalidArgument) {
			t.Errorf("Index %d: expected ErrInvalidArgument, got %v", idx, err)
		}
	}

	_, rep, _ := s.handleState(ctx, nil, EmptyArgs{})
	if rep.Selected != 2 || rep.Previous != 0 {
		t.Errorf("Expected state untouched at 2/0, got %d/%d", rep.Selected, rep.Previous)
	}
}

func TestHandleShowHideNoOp(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ctx := context.Background()

	_, res, _ := s.handleHide(ctx, nil, EmptyArgs{})
	if res.Cause != "none" || res.Seq != 0 {
		t.Errorf("Expected hide on collapsed menu to be a no-op, got %+v", res)
	}
	_, res, _ = s.handleShow(ctx, nil, EmptyArgs{})
	if res.Cause != "show" || res.Seq != 1 {
		t.Errorf("Expected show, got %+v", res)
	}
	_, res, _ = s.handleShow(ctx, nil, EmptyArgs{})
	if res.Cause != "none" || res.Seq != 1 {
		t.Errorf("Expected second show to be a no-op, got %+v", res)
	}
}

func TestHandleStateSamplesFrame(t *testing.T) {
	s, clock := newTestServer(t, nil)
	ctx := context.Background()

	_, _, _ = s.handleShow(ctx, nil, EmptyArgs{})
	clock.Advance(time.Second)

	_, rep, err := s.handleState(ctx, nil, EmptyArgs{})
	if err != nil {
		t.Fatal(err)
	}
	anim := rep.SectionByID(output.SectionAnimation)
	if anim == nil {
		t.Fatal("Expected animation section")
	}
	if it := anim.ItemByKey("expansion"); it.Value != 6 {
		t.Errorf("Expected 6 visible items after settling, got %v", it.Value)
	}
	if it := anim.ItemByKey("animating"); it.Value != 0 {
		t.Errorf("Expected settled frame, got %+v", it)
	}
}

func TestHandleHistory(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock := &MockHistory{
		Entries: []journal.Entry{{Seq: 2, Cause: "select", Selection: 120 * time.Millisecond, RecordedAt: at}},
		Counts:  []journal.CauseCount{{Cause: "select", Count: 1}},
	}
	s, _ := newTestServer(t, mock)

	_, res, err := s.handleHistory(context.Background(), nil, HistoryArgs{Limit: 500})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if mock.GotLimit != 100 {
		t.Errorf("Expected limit clamped to 100, got %d", mock.GotLimit)
	}
	if len(res.Entries) != 1 || res.Entries[0].SelectionMS != 120 || res.Entries[0].RecordedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("Unexpected entries %+v", res.Entries)
	}
	if len(res.Counts) != 1 || res.Counts[0].Count != 1 {
		t.Errorf("Unexpected counts %+v", res.Counts)
	}

	_, _, _ = s.handleHistory(context.Background(), nil, HistoryArgs{})
	if mock.GotLimit != 10 {
		t.Errorf("Expected default limit 10, got %d", mock.GotLimit)
	}
}

func TestHandleHistoryErrors(t *testing.T) {
	s, _ := newTestServer(t, nil)
	if _, _, err := s.handleHistory(context.Background(), nil, HistoryArgs{}); err == nil {
		t.Error("Expected error when journal is disabled")
	}

	s, _ = newTestServer(t, &MockHistory{Err: errors.New("db closed")})
	if _, _, err := s.handleHistory(context.Background(), nil, HistoryArgs{}); err == nil {
		t.Error("Expected error from history reader")
	}
}

func TestConcurrentCalls(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _, _ = s.handleToggle(ctx, nil, EmptyArgs{})
			} else {
				_, _, _ = s.handleSelect(ctx, nil, SelectArgs{Index: i % 6})
			}
		}(i)
	}
	wg.Wait()

	_, rep, _ := s.handleState(ctx, nil, EmptyArgs{})
	if rep.ItemCount != 6 {
		t.Errorf("Expected 6 items, got %d", rep.ItemCount)
	}
	if st := rep.SectionByID(output.SectionState).ItemByKey("seq"); st.Value != 20 {
		t.Errorf("Expected 20 transitions, got %v", st.Value)
	}
}
