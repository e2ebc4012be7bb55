package patternlock

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the single pointer the widget follows.
type pointerState struct {
	down         bool
	lastX, lastY float64
}

// processPointer runs the press/move/release state machine for one frame of
// pointer input in screen coordinates and forwards transitions to the
// recognizer.
func (w *Widget) processPointer(x, y float64, pressed bool) {
	ps := &w.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = x, y
		w.snap = w.rec.PointerDown(x, y)
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			w.snap = w.rec.PointerMove(x, y)
			ps.lastX, ps.lastY = x, y
		}
	case !pressed && ps.down:
		// Release where the pointer was last seen; touch ends carry no
		// position of their own.
		ps.down = false
		w.snap = w.rec.PointerUp(ps.lastX, ps.lastY)
	}
}

// processHardware reads the first active touch, falling back to the mouse
// (left button only). Additional touches are ignored.
func (w *Widget) processHardware() {
	w.touchIDs = ebiten.AppendTouchIDs(w.touchIDs[:0])
	if len(w.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(w.touchIDs[0])
		w.processPointer(float64(tx), float64(ty), true)
		return
	}
	mx, my := ebiten.CursorPosition()
	w.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}
