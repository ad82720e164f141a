package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/goodhex/internal/view"
)

// Fixed layout geometry.
const (
	// WindowAlign is the alignment of the first displayed address.
	WindowAlign int64 = 0x100

	headerRows = 2
	footerRows = 2

	hexColumn   = 15 // first hex glyph
	asciiMargin = 20 // gap before the ASCII block, added to 3*width
	groupSize   = 8  // bytes per visual group in the hex block
	nameWidth   = 20 // footer set-name field
)

// ByteReader is the read side of a data source.
type ByteReader interface {
	ByteAt(addr int64) (byte, bool)
}

// Annotations is the read side of an annotation store.
type Annotations interface {
	ColorOf(addr int64, b byte, ok bool, cursor int64) int
	FirstLineOf(addr int64) (string, bool)
	Name() string
}

// Input is everything one frame is computed from.
type Input struct {
	View        view.Snapshot
	Source      ByteReader
	Annotations Annotations
	// Status is an optional message shown after the set name.
	Status string
	// Width and Height are the surface dimensions.
	Width, Height int
}

// Run is a piece of text placed at a screen position.
type Run struct {
	Row, Col int
	Text     string
	Role     Role
	// Tag is the annotation color for RoleTag runs.
	Tag int
	// Addr is the byte address for grid cells, -1 otherwise.
	Addr int64
}

// Frame is a fully laid out screen.
type Frame struct {
	Width, Height int
	// Start is the address of the first grid row.
	Start int64
	// Rows is the number of grid rows.
	Rows int
	Runs []Run
}

// WindowStart returns the first displayed address for a cursor position.
func WindowStart(cursor int64) int64 {
	return cursor &^ (WindowAlign - 1)
}

// HexColumn returns the screen column of the hex glyph for byte column c.
func HexColumn(c int) int {
	return hexColumn + 3*c + c/groupSize
}

// ASCIIColumn returns the screen column of the ASCII glyph for byte column
// c in a row of the given width.
func ASCIIColumn(width, c int) int {
	return asciiMargin + 3*width + c
}

// GridRows returns how many grid rows fit on a surface of the given height.
func GridRows(height int) int {
	return max(height-headerRows-footerRows, 0)
}

// HexGlyph returns the two-character hex form of a byte, or two spaces if
// the byte is absent.
func HexGlyph(b byte, ok bool) string {
	if !ok {
		return "  "
	}
	return fmt.Sprintf("%02x", b)
}

// SafeChar returns the ASCII-column form of a byte: printable ASCII as
// itself, other bytes as '.', and absent bytes as a space.
func SafeChar(b byte, ok bool) string {
	if !ok {
		return " "
	}
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return "."
}

// Layout computes the frame for in.
func Layout(in Input) Frame {
	v := in.View
	width := max(v.Width, 1)

	f := Frame{
		Width:  in.Width,
		Height: in.Height,
		Start:  WindowStart(v.Cursor),
		Rows:   GridRows(in.Height),
	}

	f.Runs = append(f.Runs, headerRunsFor(v, in.Width)...)

	for r := 0; r < f.Rows; r++ {
		row := r + headerRows
		off := int64(width) * int64(r)
		if off/int64(width) != int64(r) || f.Start > math.MaxInt64-off {
			// Past the end of the address space.
			f.Runs = append(f.Runs, Run{Row: row, Text: strings.Repeat(" ", in.Width), Role: RoleText, Addr: -1})
			continue
		}
		base := f.Start + off
		f.Runs = append(f.Runs, Run{Row: row, Col: 0, Text: fmt.Sprintf("%08x", base), Role: RoleText, Addr: -1})

		for c := 0; c < width; c++ {
			if base > math.MaxInt64-int64(c) {
				break
			}
			addr := base + int64(c)
			b, ok := in.Source.ByteAt(addr)

			role, tag := RoleTag, in.Annotations.ColorOf(addr, b, ok, v.Cursor)
			if v.Marking && addr == v.Marker {
				role = RoleMarker
			}
			if addr == v.Cursor {
				role = RoleCursor
			}

			f.Runs = append(f.Runs,
				Run{Row: row, Col: HexColumn(c), Text: HexGlyph(b, ok), Role: role, Tag: tag, Addr: addr},
				Run{Row: row, Col: ASCIIColumn(width, c), Text: SafeChar(b, ok), Role: role, Tag: tag, Addr: addr},
			)
		}
	}

	if in.Height > headerRows {
		f.Runs = append(f.Runs, footerRunsFor(in, v.Cursor)...)
	}
	return f
}

func headerRunsFor(v view.Snapshot, screenWidth int) []Run {
	runs := []Run{{
		Row:  0,
		Text: fmt.Sprintf("%08x -- width: %x %10s Mode", v.Cursor, v.Width, v.Mode.String()),
		Role: RoleHeader,
		Addr: -1,
	}}

	if v.Marking {
		distance := v.Marker - v.Cursor
		if distance < 0 {
			distance = -distance
		}
		runs = append(runs, Run{
			Row:  1,
			Text: fmt.Sprintf("Marker @ %08x -- Distance: %08x", v.Marker, distance),
			Role: RoleHeader,
			Addr: -1,
		})
	} else {
		runs = append(runs, Run{Row: 1, Text: strings.Repeat(" ", screenWidth), Role: RoleText, Addr: -1})
	}
	return runs
}

func footerRunsFor(in Input, cursor int64) []Run {
	status := fmt.Sprintf("%-*s", nameWidth, in.Annotations.Name())
	if in.Status != "" {
		status += " " + in.Status
	}

	note, _ := in.Annotations.FirstLineOf(cursor)
	note = runewidth.Truncate(note, in.Width, "")

	return []Run{
		{Row: in.Height - 2, Text: pad(status, in.Width), Role: RoleText, Addr: -1},
		{Row: in.Height - 1, Text: pad(note, in.Width), Role: RoleText, Addr: -1},
	}
}

// pad extends s with spaces to width so stale text from a previous frame is
// overwritten.
func pad(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
