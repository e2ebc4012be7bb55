package patternlock

// Recognizer turns pointer events into a visited-node sequence and a
// password. It is not safe for concurrent use: feed it from one goroutine,
// normally the UI event loop, and advance its FrameScheduler from the same
// goroutine.
type Recognizer struct {
	cfg    Config
	grid   Grid
	offset float64
	canon  Canonicalizer

	sched      Scheduler
	frameSched *FrameScheduler // non-nil when the recognizer created its own
	resetTask  Task

	store EventStore

	state    State
	sequence []int
	visited  [NodeCount]bool
	segments []Segment
	live     Segment
	pointer  Vec2
	status   Status
	password string
	closed   bool
}

// NewRecognizer creates a recognizer with an idle, unlit board.
// Misconfiguration is logged and replaced by defaults; it is never an error.
func NewRecognizer(cfg Config) *Recognizer {
	cfg.validate()
	r := &Recognizer{
		cfg:      cfg,
		grid:     NewGrid(cfg.boardWidth()),
		offset:   cfg.VerticalOffset(),
		canon:    cfg.canonicalizer(),
		sched:    cfg.Scheduler,
		sequence: make([]int, 0, NodeCount),
	}
	if r.sched == nil {
		r.frameSched = NewFrameScheduler()
		r.sched = r.frameSched
	}
	return r
}

// Grid returns a copy of the board layout, including current active flags.
func (r *Recognizer) Grid() Grid { return r.grid }

// Config returns the configuration the recognizer was built with.
func (r *Recognizer) Config() Config { return r.cfg }

// Scheduler returns the recognizer's own FrameScheduler, or nil when
// Config.Scheduler supplied a different one. Hosts call Update on it once
// per frame.
func (r *Recognizer) Scheduler() *FrameScheduler { return r.frameSched }

// SetEventStore sets the optional event bridge. Pass nil to remove it.
func (r *Recognizer) SetEventStore(store EventStore) {
	r.store = store
}

// SetStatus stores the host's verdict hint for the presentation layer.
func (r *Recognizer) SetStatus(status Status) Snapshot {
	r.status = status
	return r.Snapshot()
}

// State returns the current state.
func (r *Recognizer) State() State { return r.state }

// Closed reports whether Close has been called.
func (r *Recognizer) Closed() bool { return r.closed }

// adjust converts host coordinates to board coordinates.
func (r *Recognizer) adjust(x, y float64) Vec2 {
	return Vec2{X: x, Y: y - r.offset}
}

// last returns the most recently visited node.
func (r *Recognizer) last() int {
	return r.sequence[len(r.sequence)-1]
}

// PointerDown starts a stroke when (x, y) lands on a node. The previous
// board is cleared first, which fires OnReset before OnStrokeStart. A press
// that misses every node changes nothing.
func (r *Recognizer) PointerDown(x, y float64) Snapshot {
	if r.closed {
		return r.Snapshot()
	}
	p := r.adjust(x, y)
	idx, ok := r.grid.HitTest(p)
	if !ok {
		return r.Snapshot()
	}

	r.cancelReset()
	r.password = ""
	r.reset()

	r.state = StateTracking
	r.pointer = p
	r.visit(idx)
	r.live = zeroSegment(r.grid.Center(idx))

	logger().Debug("patternlock: stroke start", "node", idx)
	if r.cfg.OnStrokeStart != nil {
		r.cfg.OnStrokeStart()
	}
	r.emit(LockEvent{Type: EventStrokeStart, Node: idx})
	return r.Snapshot()
}

// PointerMove extends the stroke in progress. Moves while idle are ignored.
func (r *Recognizer) PointerMove(x, y float64) Snapshot {
	if r.closed || r.state != StateTracking {
		return r.Snapshot()
	}
	p := r.adjust(x, y)
	r.pointer = p
	r.live.End = p

	from := r.last()
	if IsPointInCircle(p, r.grid.Center(from), r.grid.Radius()) {
		return r.Snapshot()
	}
	idx, ok := r.grid.HitTest(p)
	if !ok || r.visited[idx] {
		return r.Snapshot()
	}

	if !r.cfg.AllowCross {
		if cross, ok := r.grid.CrossNode(from, idx); ok && !r.visited[cross] {
			r.commit(from, cross)
			r.visit(cross)
			r.emit(LockEvent{Type: EventNodeVisited, Node: cross, Passed: true})
			from = cross
		}
	}

	r.commit(from, idx)
	r.visit(idx)
	r.live.Start = r.grid.Center(idx)
	r.emit(LockEvent{Type: EventNodeVisited, Node: idx})

	if len(r.sequence) == NodeCount {
		r.end()
	}
	return r.Snapshot()
}

// PointerUp ends the stroke in progress and reports its password. Releases
// while idle are ignored.
func (r *Recognizer) PointerUp(x, y float64) Snapshot {
	if r.closed || r.state != StateTracking {
		return r.Snapshot()
	}
	r.pointer = r.adjust(x, y)
	r.end()
	return r.Snapshot()
}

// end derives the password, clears the stroke and schedules the deferred
// reset. Node highlights and committed segments stay until that reset or
// the next stroke.
func (r *Recognizer) end() {
	password := r.canon.Canonicalize(r.sequence)
	r.clearStroke()
	r.live = Segment{}
	r.password = password

	logger().Debug("patternlock: stroke end", "password_len", len(password))
	if r.cfg.OnStrokeEnd != nil {
		r.cfg.OnStrokeEnd(password)
	}
	r.emit(LockEvent{Type: EventStrokeEnd, Node: -1, Password: password})

	if r.cfg.resetEnabled() && !r.closed {
		r.resetTask = r.sched.Schedule(r.cfg.AutoResetInterval, r.deferredReset)
	}
}

func (r *Recognizer) deferredReset() {
	r.resetTask = nil
	if r.closed {
		return
	}
	r.reset()
}

// Reset abandons any stroke, cancels a pending deferred reset, and clears
// every highlight and segment.
func (r *Recognizer) Reset() Snapshot {
	if r.closed {
		return r.Snapshot()
	}
	r.cancelReset()
	r.reset()
	return r.Snapshot()
}

func (r *Recognizer) reset() {
	r.clearStroke()
	r.clearBoard()
	r.live = Segment{}
	logger().Debug("patternlock: reset")
	if r.cfg.OnReset != nil {
		r.cfg.OnReset()
	}
	r.emit(LockEvent{Type: EventReset, Node: -1})
}

// Close cancels the pending deferred reset. Every later call is a no-op
// that returns the final snapshot.
func (r *Recognizer) Close() {
	if r.closed {
		return
	}
	r.cancelReset()
	r.closed = true
}

// Snapshot returns the current state as an immutable value.
func (r *Recognizer) Snapshot() Snapshot {
	s := Snapshot{
		State:        r.state,
		Nodes:        r.grid.Nodes(),
		Live:         r.live,
		Pointer:      r.pointer,
		Status:       r.status,
		LastPassword: r.password,
	}
	if len(r.sequence) > 0 {
		s.Sequence = append([]int(nil), r.sequence...)
	}
	if len(r.segments) > 0 {
		s.Segments = append([]Segment(nil), r.segments...)
	}
	return s
}

// ResetPending reports whether a deferred reset is scheduled.
func (r *Recognizer) ResetPending() bool {
	return r.resetTask != nil && r.resetTask.Pending()
}

func (r *Recognizer) visit(idx int) {
	r.visited[idx] = true
	r.sequence = append(r.sequence, idx)
	r.grid.setActive(idx, true)
	logger().Debug("patternlock: node visited", "node", idx, "count", len(r.sequence))
}

func (r *Recognizer) commit(from, to int) {
	r.segments = append(r.segments, Segment{
		Start: r.grid.Center(from),
		End:   r.grid.Center(to),
	})
}

// clearStroke drops the visited sequence and returns to idle.
func (r *Recognizer) clearStroke() {
	r.state = StateIdle
	r.sequence = r.sequence[:0]
	r.visited = [NodeCount]bool{}
}

// clearBoard drops highlights and committed segments.
func (r *Recognizer) clearBoard() {
	r.grid.clearActive()
	r.segments = r.segments[:0]
}

func (r *Recognizer) cancelReset() {
	if r.resetTask != nil {
		r.resetTask.Cancel()
		r.resetTask = nil
	}
}

func (r *Recognizer) emit(e LockEvent) {
	if r.store != nil {
		r.store.EmitEvent(e)
	}
}
