package components

import (
	"fmt"

	"circularmenu/internal/animation"
	"circularmenu/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Channel is one animated value of the menu.
type Channel int

const (
	ChannelExpansion Channel = iota
	ChannelRotation
	ChannelSelection
	channelCount
)

func (c Channel) String() string {
	switch c {
	case ChannelExpansion:
		return "Expansion"
	case ChannelRotation:
		return "Rotation"
	case ChannelSelection:
		return "Selection"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

const inspectorSamples = 61

// Inspector charts the recent frames of one channel as a percentage of its
// full range.
type Inspector struct {
	Chart   linechart.Model
	History [channelCount][]float64
	Channel Channel
	Width   int
	Height  int
}

func NewInspector(width, height int) *Inspector {
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, inspectorSamples-1, 0, 100)
	in := &Inspector{
		Chart:  lc,
		Width:  width,
		Height: height,
	}
	for ch := range in.History {
		in.History[ch] = make([]float64, 0, inspectorSamples)
	}
	return in
}

func (in *Inspector) Init() tea.Cmd {
	return nil
}

// Push records a sampled frame for a ring of n items.
func (in *Inspector) Push(f animation.Frame, n int) {
	var exp, sel float64
	if n > 0 {
		exp = float64(f.Expansion) / float64(n) * 100
	}
	if n > 1 {
		sel = float64(f.Selection) / float64(n-1) * 100
	}
	in.push(ChannelExpansion, exp)
	in.push(ChannelRotation, f.Rotation/180*100)
	in.push(ChannelSelection, sel)
}

func (in *Inspector) push(ch Channel, v float64) {
	h := append(in.History[ch], v)
	if len(h) > inspectorSamples {
		h = h[1:]
	}
	in.History[ch] = h
}

// Cycle switches to the next channel.
func (in *Inspector) Cycle() {
	in.Channel = (in.Channel + 1) % channelCount
}

func (in *Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return in, nil
}

func (in *Inspector) Resize(w, h int) {
	in.Width = w
	in.Height = h
	in.Chart.Resize(w, h)
}

func (in *Inspector) View() string {
	in.Chart.Clear()
	history := in.History[in.Channel]
	for i := 0; i < len(history)-1; i++ {
		in.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: history[i]},
			canvas.Float64Point{X: float64(i + 1), Y: history[i+1]},
		)
	}
	in.Chart.DrawXYAxisAndLabel()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(in.Channel.String()+" %"),
			in.Chart.View(),
		),
	)
}
