// Package ggrender draws patternlock snapshots to images with the gg
// software rasterizer, for screenshots, docs and headless tests.
package ggrender

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/patternlock"
)

// Options controls the output image.
type Options struct {
	// Size is the side of the square output in pixels. Zero means the board
	// width rounded up.
	Size  int
	Theme patternlock.Theme
	// Background is a hex color. Empty means white.
	Background string
}

const (
	idleRing   = "#C8C8C8"
	ringWidth  = 2
	lineWidth  = 4
	innerRatio = 1.0 / 3
)

func (o Options) size(board float64) int {
	if o.Size > 0 {
		return o.Size
	}
	return int(math.Ceil(board))
}

// boardWidth infers the board side from the node radius, which is a tenth
// of it.
func boardWidth(snap patternlock.Snapshot) float64 {
	return snap.Nodes[0].Radius * 10
}

// Render draws snap onto a new image.
func Render(snap patternlock.Snapshot, opts Options) (image.Image, error) {
	dc, err := draw(snap, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dc.Close() }()
	return dc.Image(), nil
}

// WritePNG renders snap and encodes it as PNG to w.
func WritePNG(w io.Writer, snap patternlock.Snapshot, opts Options) error {
	dc, err := draw(snap, opts)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// draw paints snap onto a fresh context. The caller closes it.
func draw(snap patternlock.Snapshot, opts Options) (*gg.Context, error) {
	board := boardWidth(snap)
	if board <= 0 {
		return nil, fmt.Errorf("render: snapshot has no layout")
	}
	if opts.Theme == (patternlock.Theme{}) {
		opts.Theme = patternlock.DefaultTheme()
	}
	size := opts.size(board)
	scale := float64(size) / board

	dc := gg.NewContext(size, size)
	fail := func(err error) (*gg.Context, error) {
		_ = dc.Close()
		return nil, err
	}

	bg := opts.Background
	if bg == "" {
		bg = "#FFFFFF"
	}
	dc.ClearWithColor(gg.Hex(bg))

	accent := opts.Theme.ColorFor(snap.Status)
	log := patternlock.Logger()

	if opts.Theme.OuterCircle {
		dc.SetLineWidth(ringWidth * scale)
		for _, n := range snap.Nodes {
			if n.Active {
				dc.SetHexColor(accent)
			} else {
				dc.SetHexColor(idleRing)
			}
			dc.DrawCircle(n.Center.X*scale, n.Center.Y*scale, n.Radius*scale)
			if err := dc.Stroke(); err != nil {
				return fail(fmt.Errorf("render: ring %d: %w", n.Index, err))
			}
		}
	}
	if opts.Theme.InnerCircle {
		dc.SetHexColor(accent)
		for _, n := range snap.Nodes {
			if !n.Active {
				continue
			}
			dc.DrawCircle(n.Center.X*scale, n.Center.Y*scale, n.Radius*innerRatio*scale)
			if err := dc.Fill(); err != nil {
				return fail(fmt.Errorf("render: dot %d: %w", n.Index, err))
			}
		}
	}

	segs := snap.Segments
	if snap.Tracking() && !snap.Live.Start.Equals(snap.Live.End) {
		segs = append(segs[:len(segs):len(segs)], snap.Live)
	}
	dc.SetHexColor(accent)
	dc.SetLineWidth(lineWidth * scale)
	for i, s := range segs {
		dc.DrawLine(s.Start.X*scale, s.Start.Y*scale, s.End.X*scale, s.End.Y*scale)
		if err := dc.Stroke(); err != nil {
			return fail(fmt.Errorf("render: segment %d: %w", i, err))
		}
	}

	log.Debug("ggrender: rendered snapshot", "size", size, "segments", len(segs))
	return dc, nil
}
