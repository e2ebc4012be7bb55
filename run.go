package patternlock

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height set the window size. Zero means the widget's layout
	// size.
	Width, Height int
}

// Run opens a window and runs w until the window is closed. The widget is
// closed on return.
func Run(w *Widget, cfg RunConfig) error {
	defer w.Close()

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = w.Layout(0, 0)
	}
	ebiten.SetWindowSize(width, height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
