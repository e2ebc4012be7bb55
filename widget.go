package patternlock

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Widget hosts a Recognizer inside an Ebitengine game loop. It reads mouse
// and touch input, advances the deferred-reset scheduler, and draws the
// board from the latest Snapshot. Widget implements ebiten.Game.
type Widget struct {
	rec   *Recognizer
	theme Theme
	snap  Snapshot

	screenW, screenH int
	top              float64

	pointer     pointerState
	touchIDs    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
}

// NewWidget creates a widget and its recognizer. A zero Config.Theme is
// replaced by DefaultTheme.
func NewWidget(cfg Config) *Widget {
	if cfg.Theme == (Theme{}) {
		cfg.Theme = DefaultTheme()
	}
	rec := NewRecognizer(cfg)
	w := &Widget{
		rec:   rec,
		theme: cfg.Theme,
		snap:  rec.Snapshot(),
		top:   cfg.VerticalOffset(),
	}
	width := rec.Grid().Width()
	w.screenW = int(width)
	w.screenH = int(width)
	if cfg.ScreenHeight > width {
		w.screenH = int(cfg.ScreenHeight)
	}
	return w
}

// Recognizer returns the widget's recognizer.
func (w *Widget) Recognizer() *Recognizer { return w.rec }

// Snapshot returns the state the next Draw will render.
func (w *Widget) Snapshot() Snapshot { return w.snap }

// SetStatus sets the verdict hint used to color the board.
func (w *Widget) SetStatus(status Status) {
	w.snap = w.rec.SetStatus(status)
}

// SetMessage replaces the prompt shown above the board.
func (w *Widget) SetMessage(msg string) {
	w.theme.Message = msg
}

// Reset clears the board immediately.
func (w *Widget) Reset() {
	w.snap = w.rec.Reset()
}

// Update advances the scheduler by one tick and processes one frame of
// input. Injected events take priority over real input.
func (w *Widget) Update() error {
	w.step(float32(1.0 / float64(ebiten.TPS())))
	if !w.processInjectedInput() {
		w.processHardware()
	}
	return nil
}

// step advances the recognizer's own scheduler and refreshes the snapshot
// so a deferred reset shows up on the next Draw.
func (w *Widget) step(dt float32) {
	if s := w.rec.Scheduler(); s != nil {
		s.Update(dt)
	}
	w.snap = w.rec.Snapshot()
}

// Draw paints the board.
func (w *Widget) Draw(screen *ebiten.Image) {
	screen.Fill(hexColor(backgroundColor))
	drawMessage(screen, w.theme.Message, w.top)
	buildDrawList(w.snap, w.theme).paint(screen, w.top)
}

// Layout returns the fixed logical screen size.
func (w *Widget) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.screenW, w.screenH
}

// Close tears down the recognizer, cancelling any pending reset.
func (w *Widget) Close() {
	w.rec.Close()
}
