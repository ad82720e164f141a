package prompt

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/goodhex/internal/input/key"
)

// Default box dimensions.
const (
	DefaultRows = 5
	DefaultCols = 30
)

// Editor is the text model behind a prompt box: a fixed number of lines of
// fixed width, edited at the end of the text.
type Editor struct {
	rows, cols int
	lines      [][]rune
}

// NewEditor creates an empty editor. Dimensions below 1 use the defaults.
func NewEditor(rows, cols int) *Editor {
	if rows < 1 {
		rows = DefaultRows
	}
	if cols < 1 {
		cols = DefaultCols
	}
	return &Editor{
		rows:  rows,
		cols:  cols,
		lines: [][]rune{{}},
	}
}

// HandleKey applies ev and reports whether it committed the text.
func (e *Editor) HandleKey(ev key.Event) (committed bool) {
	switch ev.Key {
	case key.KeyCtrlG:
		return true
	case key.KeyEnter:
		e.newline()
	case key.KeyBackspace, key.KeyDelete:
		e.backspace()
	case key.KeyRune:
		if ev.IsChar() {
			e.insert(ev.Rune)
		}
	}
	return false
}

func (e *Editor) insert(r rune) {
	last := len(e.lines) - 1
	if runewidth.StringWidth(string(e.lines[last]))+runewidth.RuneWidth(r) > e.cols {
		if len(e.lines) >= e.rows {
			return
		}
		e.lines = append(e.lines, nil)
		last++
	}
	e.lines[last] = append(e.lines[last], r)
}

func (e *Editor) newline() {
	if len(e.lines) < e.rows {
		e.lines = append(e.lines, nil)
	}
}

func (e *Editor) backspace() {
	last := len(e.lines) - 1
	if n := len(e.lines[last]); n > 0 {
		e.lines[last] = e.lines[last][:n-1]
		return
	}
	if last > 0 {
		e.lines = e.lines[:last]
	}
}

// Lines returns the current lines.
func (e *Editor) Lines() []string {
	out := make([]string, len(e.lines))
	for i, l := range e.lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the entered text, lines joined with newlines.
func (e *Editor) Text() string {
	return strings.Join(e.Lines(), "\n")
}

// Size returns the box dimensions.
func (e *Editor) Size() (rows, cols int) {
	return e.rows, e.cols
}
