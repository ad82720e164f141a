package prompt

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/goodhex/internal/renderer/backend"
	"github.com/dshills/goodhex/internal/renderer/core"
)

// CommitHint is shown above the box.
const CommitHint = "^G to commit."

// Box is a modal prompt drawn on a backend.
type Box struct {
	backend    backend.Backend
	rows, cols int
	title      core.Style
	text       core.Style
	cancel     func(backend.Event) bool
}

// Option configures a Box.
type Option func(*Box)

// WithSize sets the edit area dimensions.
func WithSize(rows, cols int) Option {
	return func(b *Box) {
		b.rows, b.cols = rows, cols
	}
}

// WithTitleStyle sets the style of the title line.
func WithTitleStyle(s core.Style) Option {
	return func(b *Box) {
		b.title = s
	}
}

// WithCancel closes the prompt without committing when an event that is
// not a key or resize satisfies fn. The event is re-posted with the others.
func WithCancel(fn func(backend.Event) bool) Option {
	return func(b *Box) {
		b.cancel = fn
	}
}

// New creates a prompt box on be.
func New(be backend.Backend, opts ...Option) *Box {
	b := &Box{
		backend: be,
		rows:    DefaultRows,
		cols:    DefaultCols,
		title:   core.NewStyle(core.ColorBlack, core.ColorWhite),
		text:    core.DefaultStyle(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Prompt shows the box with title and message and blocks until the text is
// committed. Events other than keys that arrive meanwhile are re-posted
// after the prompt closes, so nothing the main loop waits for is lost.
// ok is false when the prompt was cancelled or the backend shut down.
func (b *Box) Prompt(title, message string) (text string, ok bool) {
	ed := NewEditor(b.rows, b.cols)
	var deferred []backend.Event

	defer func() {
		b.backend.Clear()
		for _, ev := range deferred {
			b.backend.PostEvent(ev)
		}
	}()

	b.draw(ed, title, message)
	for {
		ev := b.backend.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			if ed.HandleKey(ev.KeyEvent()) {
				return ed.Text(), true
			}
		case backend.EventResize:
		case backend.EventNone:
			// The backend is shutting down.
			return ed.Text(), false
		default:
			deferred = append(deferred, ev)
			if b.cancel != nil && b.cancel(ev) {
				return ed.Text(), false
			}
			continue
		}
		b.draw(ed, title, message)
	}
}

func (b *Box) draw(ed *Editor, title, message string) {
	be := b.backend
	be.Clear()

	b.put(0, 0, CommitHint, b.text)

	// Border around the edit area, rows 1..rows+2.
	top, left := 1, 0
	bottom, right := top+b.rows+1, left+b.cols+1
	for x := left + 1; x < right; x++ {
		be.SetCell(x, top, core.NewStyledCell('─', b.text))
		be.SetCell(x, bottom, core.NewStyledCell('─', b.text))
	}
	for y := top + 1; y < bottom; y++ {
		be.SetCell(left, y, core.NewStyledCell('│', b.text))
		be.SetCell(right, y, core.NewStyledCell('│', b.text))
	}
	be.SetCell(left, top, core.NewStyledCell('┌', b.text))
	be.SetCell(right, top, core.NewStyledCell('┐', b.text))
	be.SetCell(left, bottom, core.NewStyledCell('└', b.text))
	be.SetCell(right, bottom, core.NewStyledCell('┘', b.text))

	for i, line := range ed.Lines() {
		b.put(top+1+i, left+1, line, b.text)
	}

	row := bottom + 2
	b.put(row, 0, "----"+title+"----", b.title)
	for i, line := range strings.Split(message, "\n") {
		b.put(row+1+i, 0, line, b.text)
	}

	be.Show()
}

func (b *Box) put(row, col int, s string, style core.Style) {
	for _, r := range s {
		b.backend.SetCell(col, row, core.NewStyledCell(r, style))
		col += max(runewidth.RuneWidth(r), 1)
	}
}
