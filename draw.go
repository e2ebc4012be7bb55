package patternlock

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	idleRingColor   = "#C8C8C8"
	backgroundColor = "#FFFFFF"
	ringWidth       = 2
	lineWidth       = 4
	innerRatio      = 1.0 / 3 // inner dot radius relative to the node radius
)

// circlePrim is one circle to draw, in board coordinates.
type circlePrim struct {
	Center Vec2
	Radius float64
	Fill   bool
	Width  float64 // stroke width when Fill is false
	Color  color.Color
}

// linePrim is one line to draw, in board coordinates.
type linePrim struct {
	Segment
	Width float64
	Color color.Color
}

// drawList is everything needed to paint a board. It is a pure function of
// a Snapshot and a Theme.
type drawList struct {
	Circles []circlePrim
	Lines   []linePrim
}

// hexColor converts a "#RRGGBB" style string to a color.Color.
func hexColor(hex string) color.Color {
	return gg.Hex(hex).Color()
}

// buildDrawList lays out the primitives for snap. Rings come first, then
// inner dots, then committed segments, then the live segment.
func buildDrawList(snap Snapshot, theme Theme) drawList {
	accent := hexColor(theme.ColorFor(snap.Status))
	idle := hexColor(idleRingColor)

	var dl drawList
	if theme.OuterCircle {
		for _, n := range snap.Nodes {
			c := idle
			if n.Active {
				c = accent
			}
			dl.Circles = append(dl.Circles, circlePrim{
				Center: n.Center, Radius: n.Radius, Width: ringWidth, Color: c,
			})
		}
	}
	if theme.InnerCircle {
		for _, n := range snap.Nodes {
			if !n.Active {
				continue
			}
			dl.Circles = append(dl.Circles, circlePrim{
				Center: n.Center, Radius: n.Radius * innerRatio, Fill: true, Color: accent,
			})
		}
	}
	for _, seg := range snap.Segments {
		dl.Lines = append(dl.Lines, linePrim{Segment: seg, Width: lineWidth, Color: accent})
	}
	if snap.Tracking() && !snap.Live.Start.Equals(snap.Live.End) {
		dl.Lines = append(dl.Lines, linePrim{Segment: snap.Live, Width: lineWidth, Color: accent})
	}
	return dl
}

// paint submits dl to dst, shifting every primitive down by top.
func (dl drawList) paint(dst *ebiten.Image, top float64) {
	for _, c := range dl.Circles {
		cx, cy := float32(c.Center.X), float32(c.Center.Y+top)
		if c.Fill {
			vector.DrawFilledCircle(dst, cx, cy, float32(c.Radius), c.Color, true)
		} else {
			vector.StrokeCircle(dst, cx, cy, float32(c.Radius), float32(c.Width), c.Color, true)
		}
	}
	for _, l := range dl.Lines {
		vector.StrokeLine(dst,
			float32(l.Start.X), float32(l.Start.Y+top),
			float32(l.End.X), float32(l.End.Y+top),
			float32(l.Width), l.Color, true)
	}
}

// drawMessage prints the theme message just above the board.
func drawMessage(dst *ebiten.Image, msg string, top float64) {
	if msg == "" {
		return
	}
	y := int(top) - 20
	if y < 0 {
		y = 0
	}
	ebitenutil.DebugPrintAt(dst, msg, 8, y)
}
