package renderer

import "github.com/dshills/goodhex/internal/renderer/core"

// TagCount is the number of annotation color tags (0-9).
const TagCount = 10

// Role identifies what a run of text is, and so which palette entry styles it.
type Role uint8

const (
	// RoleText is plain text: addresses, footer.
	RoleText Role = iota
	// RoleHeader is the status header.
	RoleHeader
	// RoleTag is a byte colored by its annotation tag.
	RoleTag
	// RoleMarker is the byte at the range marker.
	RoleMarker
	// RoleCursor is the byte at the cursor.
	RoleCursor
)

// Palette maps roles and annotation tags to styles. The tag palette is
// independent of the header, marker and cursor highlights.
type Palette struct {
	Text   core.Style
	Header core.Style
	Marker core.Style
	Cursor core.Style
	Tags   [TagCount]core.Style
}

// DefaultPalette returns the classic curses-style palette: tag 0 is the
// terminal default and tags 1-9 use the foreground/background pairs below.
func DefaultPalette() Palette {
	pair := core.NewStyle
	return Palette{
		Text:   core.DefaultStyle(),
		Header: pair(core.ColorRed, core.ColorBlack),
		Marker: pair(core.ColorYellow, core.ColorBlue),
		Cursor: pair(core.ColorBlack, core.ColorWhite),
		Tags: [TagCount]core.Style{
			core.DefaultStyle(),
			pair(core.ColorRed, core.ColorBlack),
			pair(core.ColorGreen, core.ColorBlack),
			pair(core.ColorYellow, core.ColorBlack),
			pair(core.ColorCyan, core.ColorBlack),
			pair(core.ColorMagenta, core.ColorBlack),
			pair(core.ColorYellow, core.ColorBlue),
			pair(core.ColorBlue, core.ColorWhite),
			pair(core.ColorBlack, core.ColorCyan),
			pair(core.ColorBlack, core.ColorWhite),
		},
	}
}

// Style returns the style for a role. tag is only consulted for RoleTag;
// out-of-range tags use tag 0.
func (p Palette) Style(role Role, tag int) core.Style {
	switch role {
	case RoleHeader:
		return p.Header
	case RoleMarker:
		return p.Marker
	case RoleCursor:
		return p.Cursor
	case RoleTag:
		if tag < 0 || tag >= TagCount {
			tag = 0
		}
		return p.Tags[tag]
	default:
		return p.Text
	}
}
