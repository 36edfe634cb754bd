// Package tui renders elastic sliders in a terminal with Bubble Tea. Mouse
// presses, motion and releases are fed to an elastic.Dispatcher as pointer 0,
// with one terminal cell per unit of X.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/elastic"
	"github.com/phanxgames/elastic/internal/config"
)

const (
	mousePointer = 0
	frameRate    = 60
	marginX      = 2
	defaultWidth = 64
	minTrack     = 8
)

var (
	colorFill   = lipgloss.Color("#a855f7")
	colorTrack  = lipgloss.Color("#374151")
	colorDimmed = lipgloss.Color("#9ca3af")
	colorBright = lipgloss.Color("#f9fafb")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorBright)
	styleLabel  = lipgloss.NewStyle().Foreground(colorBright)
	styleValue  = lipgloss.NewStyle().Foreground(colorDimmed)
	styleFill   = lipgloss.NewStyle().Foreground(colorFill)
	styleTrack  = lipgloss.NewStyle().Foreground(colorTrack)
	stylePreset = lipgloss.NewStyle().Foreground(colorDimmed)
	styleActive = lipgloss.NewStyle().Foreground(colorBright).Background(colorFill)
	styleHelp   = lipgloss.NewStyle().Foreground(colorDimmed)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model holding every slider. Slider values live
// here, not in the engines.
type Model struct {
	keys       KeyMap
	cfg        *config.Config
	dispatcher *elastic.Dispatcher
	sliders    []*slider
	width      int
}

// New builds a model for cfg.
func New(cfg *config.Config) (*Model, error) {
	m := &Model{
		keys:       DefaultKeyMap(),
		cfg:        cfg,
		dispatcher: elastic.NewDispatcher(),
		width:      defaultWidth,
	}
	factory := cfg.Settle.Factory()
	for _, sc := range cfg.Sliders {
		s, err := newSlider(m.dispatcher, sc, factory, cfg.Debug)
		if err != nil {
			return nil, err
		}
		m.sliders = append(m.sliders, s)
	}
	m.layout()
	return m, nil
}

// Values returns the current value of each slider.
func (m *Model) Values() []int {
	out := make([]int, len(m.sliders))
	for i, s := range m.sliders {
		out[i] = s.value
	}
	return out
}

// Track returns the laid-out track of slider i, in cells.
func (m *Model) Track(i int) elastic.Rect {
	return m.sliders[i].track()
}

// Engine returns the interaction engine of slider i.
func (m *Model) Engine(i int) *elastic.Engine {
	return m.sliders[i].engine
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.layout()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			for _, s := range m.sliders {
				s.value = s.cfg.Value
			}
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tickMsg:
		for _, s := range m.sliders {
			s.update(1.0 / frameRate)
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	// Sample the middle of the cell.
	ev := elastic.PointerEvent{
		PointerID: mousePointer,
		X:         float64(msg.X) + 0.5,
		Y:         float64(msg.Y) + 0.5,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dispatcher.Down(ev)
		}
	case tea.MouseActionMotion:
		if m.dispatcher.IsDown(mousePointer) {
			m.dispatcher.Move(ev)
		}
	case tea.MouseActionRelease:
		if m.dispatcher.IsDown(mousePointer) {
			m.dispatcher.Up(ev)
		}
	}
}

func (m *Model) close() {
	for _, s := range m.sliders {
		s.close()
	}
}

// layout assigns rows and columns. Row 0 is the title; each slider takes a
// label row, a track row, an optional preset row and a blank row.
func (m *Model) layout() {
	width := m.width - 2*marginX
	if width < minTrack {
		width = minTrack
	}
	row := 2
	for _, s := range m.sliders {
		s.labelRow = row
		s.row = row + 1
		s.left = marginX
		s.width = width
		row += 2
		if len(s.presets) > 0 {
			col := marginX
			for _, p := range s.presets {
				p.row = row
				p.col = col
				col += p.cells() + 1
			}
			row++
		}
		row++
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(m.cfg.Window.Title))
	b.WriteString("\n\n")
	for _, s := range m.sliders {
		b.WriteString(s.viewLabel())
		b.WriteByte('\n')
		b.WriteString(s.viewTrack())
		b.WriteByte('\n')
		if len(s.presets) > 0 {
			b.WriteString(s.viewPresets())
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	b.WriteString(styleHelp.Render(fmt.Sprintf("%s %s • %s %s",
		m.keys.Reset.Help().Key, m.keys.Reset.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)))
	return b.String()
}

// slider is one terminal slider: its host-owned value, engine and layout.
type slider struct {
	cfg     config.SliderConfig
	value   int
	engine  *elastic.Engine
	presets []*preset

	stretch  float64 // displayed
	fill     float64 // displayed
	stretchS elastic.Settler
	fillS    elastic.Settler

	labelRow int
	row      int
	left     int
	width    int
}

func newSlider(d *elastic.Dispatcher, sc config.SliderConfig, factory func() elastic.Settler, debug bool) (*slider, error) {
	s := &slider{
		cfg:      sc,
		value:    sc.Value,
		stretchS: factory(),
		fillS:    factory(),
	}
	eng, err := elastic.NewEngine(elastic.EngineConfig{
		Range:      sc.Range(),
		OnChange:   func(v int) { s.value = v },
		Geometry:   func() (elastic.Rect, bool) { t := s.track(); return t, t.Width > 0 },
		Dispatcher: d,
		Owner:      s,
		Debug:      debug,
	})
	if err != nil {
		return nil, fmt.Errorf("tui: slider %q: %w", sc.Label, err)
	}
	s.engine = eng
	s.fill = s.presentation().FillPercent
	d.AddTarget(s)
	for _, label := range sc.Presets {
		v, err := config.PresetValue(label)
		if err != nil {
			return nil, fmt.Errorf("tui: slider %q: %w", sc.Label, err)
		}
		p := &preset{label: label, value: v, s: s}
		s.presets = append(s.presets, p)
		d.AddTarget(p)
	}
	return s, nil
}

func (s *slider) track() elastic.Rect {
	return elastic.Rect{X: float64(s.left), Y: float64(s.row), Width: float64(s.width), Height: 1}
}

func (s *slider) HitTest(x, y float64) bool {
	return int(y) == s.row && x >= float64(s.left) && x < float64(s.left+s.width)
}

func (s *slider) PointerDown(ev elastic.PointerEvent) {
	s.engine.PointerDown(ev)
}

func (s *slider) presentation() elastic.Presentation {
	return elastic.Present(s.value, s.engine.Range(), s.stretch, s.engine.Dragging())
}

func (s *slider) update(dt float64) {
	target := elastic.Present(s.value, s.engine.Range(), 0, false).FillPercent
	if s.engine.Dragging() {
		s.fill = target
	} else {
		s.fill = s.fillS.Settle(s.fill, target, dt)
	}
	s.stretch = s.stretchS.Settle(s.stretch, s.engine.Stretch(), dt)
}

func (s *slider) close() {
	s.engine.Close()
}

func (s *slider) viewLabel() string {
	label := styleLabel.Render(s.cfg.Label)
	value := styleValue.Render(fmt.Sprintf("%d%s", s.value, s.cfg.Suffix))
	gap := s.width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", s.left) + label + strings.Repeat(" ", gap) + value
}

// viewTrack draws the bar, widened by the stretch on the side away from the
// scale origin.
func (s *slider) viewTrack() string {
	p := s.presentation()
	extra := int(math.Round((p.ScaleX - 1) * float64(s.width)))
	start := s.left
	if p.Origin == elastic.OriginRight {
		if extra > s.left {
			extra = s.left
		}
		start -= extra
	}
	cells := s.width + extra
	pct := math.Max(0, math.Min(100, s.fill))
	filled := int(math.Round(pct / 100 * float64(cells)))
	return strings.Repeat(" ", start) +
		styleFill.Render(strings.Repeat("█", filled)) +
		styleTrack.Render(strings.Repeat("░", cells-filled))
}

func (s *slider) viewPresets() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", s.left))
	for i, p := range s.presets {
		if i > 0 {
			b.WriteByte(' ')
		}
		style := stylePreset
		if config.PresetActive(p.label, s.value) {
			style = styleActive
		}
		b.WriteString(style.Render("[" + p.label + "]"))
	}
	return b.String()
}

// preset is a clickable label that sets its slider to a fixed value.
type preset struct {
	label string
	value int
	s     *slider

	row, col int
}

func (p *preset) cells() int {
	return len(p.label) + 2
}

func (p *preset) HitTest(x, y float64) bool {
	return int(y) == p.row && x >= float64(p.col) && x < float64(p.col+p.cells())
}

func (p *preset) PointerDown(elastic.PointerEvent) {
	p.s.value = p.value
}
