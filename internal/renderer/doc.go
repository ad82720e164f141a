// Package renderer draws the hex/ASCII grid of the viewer.
//
// Rendering is split in two steps. Layout is a pure function from the view
// snapshot, the data source and the annotation store to a Frame: a list of
// positioned text runs, each tagged with the role that decides its style.
// Renderer.Render then resolves roles through a Palette and writes the runs
// to a Surface.
//
// Screen layout:
//
//	row 0      00000110 -- width: 10    Command Mode
//	row 1      Marker @ 00000100 -- Distance: 00000010
//	rows 2..   00000100       00 01 02 03 04 05 06 07  08 09 ...     ........
//	row h-2    default             <status>
//	row h-1    first line of the note at the cursor
//
// The grid always starts at the cursor rounded down to a multiple of 0x100,
// so the row boundaries stay put while the cursor moves within a window.
// Every frame is recomputed from scratch.
package renderer
