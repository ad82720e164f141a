package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/goodhex/internal/renderer/core"
)

// Surface is the drawing target: an addressable grid of styled cells.
// backend.Backend satisfies it.
type Surface interface {
	Size() (width, height int)
	SetCell(x, y int, cell core.Cell)
	Clear()
	Show()
}

// Renderer draws frames onto a surface.
type Renderer struct {
	palette     Palette
	clearNeeded bool
}

// New creates a renderer with the given palette. The first frame clears
// the surface.
func New(p Palette) *Renderer {
	return &Renderer{
		palette:     p,
		clearNeeded: true,
	}
}

// Palette returns the current palette.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// SetPalette replaces the palette and forces a full redraw.
func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
	r.clearNeeded = true
}

// Invalidate forces the next frame to clear the surface first, for changes
// that move cells around (width changes, resizes, returning from a prompt).
func (r *Renderer) Invalidate() {
	r.clearNeeded = true
}

// Render lays out in and draws it onto s. in.Width and in.Height are taken
// from the surface.
func (r *Renderer) Render(s Surface, in Input) Frame {
	in.Width, in.Height = s.Size()
	f := Layout(in)

	if r.clearNeeded {
		s.Clear()
		r.clearNeeded = false
	}
	r.Draw(s, f)
	s.Show()
	return f
}

// Draw writes the runs of f onto s without clearing or flushing.
func (r *Renderer) Draw(s Surface, f Frame) {
	for _, run := range f.Runs {
		style := r.palette.Style(run.Role, run.Tag)
		col := run.Col
		for _, ch := range run.Text {
			s.SetCell(col, run.Row, core.NewStyledCell(ch, style))
			col += max(runewidth.RuneWidth(ch), 1)
		}
	}
}
