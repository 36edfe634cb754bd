package elastic

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	ClearColor    Color
	ScreenshotDir string // defaults to DefaultScreenshotDir
}

// Panel is a ready-made ebiten.Game holding sliders and buttons that share
// one Dispatcher.
type Panel struct {
	cfg        RunConfig
	dispatcher *Dispatcher
	sliders    []*Slider
	buttons    []*Button

	script       *ScriptRunner
	exitOnScript bool
	frames       int
	debug        bool
	shots        []string
}

// NewPanel creates an empty panel.
func NewPanel(cfg RunConfig) *Panel {
	return &Panel{cfg: cfg, dispatcher: NewDispatcher()}
}

// Dispatcher returns the panel's input dispatcher.
func (p *Panel) Dispatcher() *Dispatcher { return p.dispatcher }

// Sliders returns the panel's sliders. The returned slice MUST NOT be mutated.
func (p *Panel) Sliders() []*Slider { return p.sliders }

// Buttons returns the panel's buttons. The returned slice MUST NOT be mutated.
func (p *Panel) Buttons() []*Button { return p.buttons }

// AddSlider creates a slider on the panel's dispatcher.
func (p *Panel) AddSlider(opts SliderOptions) (*Slider, error) {
	if p.debug {
		opts.Debug = true
	}
	s, err := NewSlider(p.dispatcher, opts)
	if err != nil {
		return nil, err
	}
	p.sliders = append(p.sliders, s)
	return s, nil
}

// AddButton creates a button on the panel's dispatcher.
func (p *Panel) AddButton(label string, bounds Rect, onClick func(), active func() bool) *Button {
	b := NewButton(p.dispatcher, label, bounds, onClick, active)
	p.buttons = append(p.buttons, b)
	return b
}

// SetScript attaches a pointer script. With exitWhenDone, Update returns
// ebiten.Termination once the script has finished.
func (p *Panel) SetScript(r *ScriptRunner, exitWhenDone bool) {
	r.Screenshot = p.Screenshot
	p.script = r
	p.exitOnScript = exitWhenDone
}

// SetDebugMode enables session logging on stderr for sliders added afterwards
// and per-script progress messages.
func (p *Panel) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// Update implements ebiten.Game.
func (p *Panel) Update() error {
	p.frames++
	dt := 1.0 / float64(ebiten.TPS())

	if p.script != nil {
		wasDone := p.script.Done()
		p.script.Step(p.dispatcher)
		if p.script.Done() {
			if !wasDone && p.debug {
				_, _ = fmt.Fprintf(os.Stderr, "[elastic] script finished after %d frames\n", p.frames)
			}
			if p.exitOnScript {
				return ebiten.Termination
			}
		}
	}

	p.dispatcher.Update()
	for _, s := range p.sliders {
		s.Update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (p *Panel) Draw(screen *ebiten.Image) {
	screen.Fill(p.cfg.ClearColor.toRGBA())
	for _, s := range p.sliders {
		s.Draw(screen)
	}
	for _, b := range p.buttons {
		b.Draw(screen)
	}
	if p.cfg.ShowFPS {
		drawFPS(screen)
	}
	p.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (p *Panel) Layout(_, _ int) (int, int) {
	return p.cfg.Width, p.cfg.Height
}

// Close ends any drag and unregisters every widget.
func (p *Panel) Close() {
	for _, s := range p.sliders {
		s.Close()
	}
	for _, b := range p.buttons {
		b.Close()
	}
}

// Run opens a window and runs the panel until the window is closed or the
// attached script finishes with exitWhenDone set.
func Run(p *Panel) error {
	ebiten.SetWindowSize(p.cfg.Width, p.cfg.Height)
	ebiten.SetWindowTitle(p.cfg.Title)
	defer p.Close()
	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("elastic: run: %w", err)
	}
	return nil
}

// drawFPS prints current FPS and TPS in the top-left corner over a
// translucent backdrop.
func drawFPS(dst *ebiten.Image) {
	fillRect(dst, 0, 0, 100, 32, Color{A: 0.5})
	ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// drawCenteredText prints s centered in r using the debug font.
func drawCenteredText(dst *ebiten.Image, s string, r Rect) {
	const glyphHeight = 16
	x := r.X + (r.Width-float64(len(s)*glyphWidth))/2
	y := r.Y + (r.Height-glyphHeight)/2
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}

var _ ebiten.Game = (*Panel)(nil)
