// Package mode defines the key-interpretation modes of the viewer.
//
// The viewer is always in exactly one of four modes:
//   - Command: navigation, paging, goto and mode switches (initial mode)
//   - Insert: reserved; reachable but binds no keys of its own
//   - ASCII: printable keys are written into the data source at the cursor
//   - Annotate: digit keys tag colors, "n" edits the note at the cursor
//
// # Mode Lifecycle
//
//	            i / a / A
//	┌─────────┐ ─────────▶ ┌────────────────────────┐
//	│ Command │            │ Insert / Annotate / ASCII │
//	└─────────┘ ◀───────── └────────────────────────┘
//	            Esc Esc
//
// Mode is a closed enumeration; the session looks up key bindings by
// (mode, key) so adding a mode means adding a value here and a table there.
package mode
