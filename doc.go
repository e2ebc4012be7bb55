// Package patternlock is a 3×3 gesture password lock for [Ebitengine].
//
// The core is a [Recognizer]: a single-threaded state machine that turns raw
// pointer coordinates into an ordered, deduplicated sequence of grid nodes
// and reports a password when the stroke ends. It has no rendering or
// platform dependencies and can be driven from any event loop.
//
// # Quick start
//
// The simplest way to get a lock on screen is [Run], which creates a window
// and game loop for you:
//
//	w := patternlock.NewWidget(patternlock.Config{
//		Width:             360,
//		ScreenHeight:      640,
//		AutoResetInterval: time.Second,
//		OnStrokeEnd: func(password string) {
//			fmt.Println("pattern:", password)
//		},
//	})
//	patternlock.Run(w, patternlock.RunConfig{Title: "Unlock", Width: 360, Height: 640})
//
// [Widget] implements [ebiten.Game], so it can also be embedded in an
// existing game by forwarding Update, Draw and Layout.
//
// # Recognizer
//
// Feed the recognizer pointer events in host coordinates:
//
//	r := patternlock.NewRecognizer(patternlock.Config{Width: 300})
//	r.PointerDown(50, 50)
//	r.PointerMove(250, 50)
//	snap := r.PointerUp(250, 50)
//	fmt.Println(snap.LastPassword) // "012"
//
// Every call returns an immutable [Snapshot] describing the board. Nodes are
// indexed 0..8 row-major. A press that misses every node is ignored; once a
// stroke is tracking, entering an unvisited node appends it, and a visited
// node is never added twice. Nine nodes end the stroke automatically.
//
// # Pass-through
//
// A straight stroke between two corners crosses the node between them. When
// [Config.AllowCross] is false (the default) that node is inserted into the
// sequence if it has not been visited yet, so dragging from 0 to 2 yields
// "012". Strokes that start or end on an edge midpoint or the center never
// insert anything.
//
// # Deferred reset
//
// With [Config.AutoResetInterval] set, the board stays lit after a stroke
// ends and clears itself once the interval elapses. The timer is a
// [FrameScheduler] advanced by the host each frame (Widget does this), so
// callbacks always run on the UI goroutine. Supply [Config.Scheduler] to use
// a different clock.
//
// # Passwords
//
// The reported password is produced by a [Canonicalizer]. The default
// writes each visited index as a digit. [NewDigitMap] relabels nodes, for
// example to keypad style "123456789".
//
// # Scripts and rendering
//
// [LoadScript] reads JSON replay scripts for tests and tooling. The
// ggrender sub-package draws a snapshot to a PNG with gogpu/gg, and
// cmd/patternlock-render combines the two on the command line.
//
// # Events
//
// [Recognizer.SetEventStore] forwards stroke events to an [EventStore]. The
// patternlock/ecs module provides one backed by the [Donburi] events feature.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package patternlock
