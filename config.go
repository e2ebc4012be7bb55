package patternlock

import (
	"math"
	"time"
)

// DefaultWidth is the board side used when Config.Width is not positive.
const DefaultWidth = 300

const (
	topFactor     = 1.1  // extra push-down applied to the centered board
	headerPercent = 0.75 // shared offset factor for the set-mode header
	headerHeight  = 25   // unscaled height of the set-mode header
)

// headerTop is the vertical space reserved above the board in ModeSet.
const headerTop = headerHeight * headerPercent

// Theme holds presentation-only settings. The recognizer ignores it.
type Theme struct {
	RightColor  string // hex color for normal and accepted strokes
	WrongColor  string // hex color for rejected strokes
	InnerCircle bool   // draw the filled inner dot of active nodes
	OuterCircle bool   // draw the outline ring of every node
	Message     string // one-line prompt shown above the board
}

// DefaultTheme returns the stock colors with both circle layers enabled.
func DefaultTheme() Theme {
	return Theme{
		RightColor:  "#5FA8FC",
		WrongColor:  "#D93609",
		InnerCircle: true,
		OuterCircle: true,
	}
}

// ColorFor returns the hex color the board should use for status.
func (t Theme) ColorFor(status Status) string {
	if status == StatusWrong {
		return t.WrongColor
	}
	return t.RightColor
}

// Config configures a Recognizer. The zero value is valid: a 300-wide board
// at the host origin, pass-through enabled, no auto reset, no callbacks.
type Config struct {
	// Width is the side of the square board. Non-positive means DefaultWidth.
	Width float64

	// ScreenHeight is the host surface height. When larger than Width the
	// board is vertically centered and pointer Y values are shifted to match.
	ScreenHeight float64

	// Mode only affects the vertical offset.
	Mode Mode

	// AllowCross disables the pass-through rule.
	AllowCross bool

	// AutoResetInterval clears the board this long after a stroke ends.
	// Zero or negative disables it.
	AutoResetInterval time.Duration

	OnStrokeStart func()
	OnStrokeEnd   func(password string)
	OnReset       func()

	// Canonicalizer derives the reported password. Nil means identity.
	Canonicalizer Canonicalizer

	// Scheduler runs the deferred reset. Nil means a new FrameScheduler,
	// reachable through Recognizer.Scheduler.
	Scheduler Scheduler

	Theme Theme
}

// boardWidth returns the effective board side.
func (c *Config) boardWidth() float64 {
	if c.Width <= 0 || math.IsNaN(c.Width) || math.IsInf(c.Width, 0) {
		return DefaultWidth
	}
	return c.Width
}

// Top returns the distance from the host origin to the top of the board in
// verify mode.
func (c *Config) Top() float64 {
	if c.ScreenHeight <= 0 {
		return 0
	}
	top := (c.ScreenHeight - c.boardWidth()) / 2 * topFactor
	if top < 0 || math.IsNaN(top) {
		return 0
	}
	return top
}

// VerticalOffset returns the amount subtracted from pointer Y coordinates
// before hit testing.
func (c *Config) VerticalOffset() float64 {
	top := c.Top()
	if c.ScreenHeight <= 0 {
		return top
	}
	if c.Mode == ModeSet {
		return top + headerTop
	}
	return top
}

// resetEnabled reports whether a deferred reset should be scheduled.
func (c *Config) resetEnabled() bool {
	return c.AutoResetInterval > 0
}

// canonicalizer returns the configured canonicalizer or the identity.
func (c *Config) canonicalizer() Canonicalizer {
	if c.Canonicalizer == nil {
		return IdentityCanonicalizer
	}
	return c.Canonicalizer
}

// validate logs configuration the recognizer will quietly treat as disabled
// or defaulted.
func (c *Config) validate() {
	if c.Width <= 0 || math.IsNaN(c.Width) || math.IsInf(c.Width, 0) {
		logger().Warn("patternlock: non-positive board width, using default",
			"width", c.Width, "default", DefaultWidth)
	}
	if c.AutoResetInterval < 0 {
		logger().Warn("patternlock: negative auto reset interval, auto reset disabled",
			"interval", c.AutoResetInterval)
	}
}
