package patternlock

// syntheticPointerEvent is one injected pointer sample in screen
// coordinates, the same space real input arrives in.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a press at the given screen coordinates. Each queued
// event is consumed by one Update call in place of real input.
func (w *Widget) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the pointer held down.
func (w *Widget) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at the given screen coordinates.
func (w *Widget) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves,
// a move onto (toX, toY) and a release there. Minimum frames is 2; the
// sequence consumes frames+1 updates.
func (w *Widget) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		w.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	w.InjectMove(toX, toY)
	w.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (w *Widget) PendingInjections() int {
	return len(w.injectQueue)
}

// processInjectedInput consumes one queued event. It reports false when the
// queue is empty and real input should be read instead.
func (w *Widget) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]
	w.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
