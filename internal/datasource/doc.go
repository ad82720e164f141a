// Package datasource provides the random-access byte storage the viewer
// displays and edits.
//
// A Source resolves one address at a time. Addresses it cannot resolve (past
// the end of a file, negative) read as absent rather than failing; the viewer
// draws them as blank cells. Writes report failure explicitly with a
// *WriteError so callers can surface it without aborting.
//
// Sources are owned by a single session and are not safe for concurrent use.
package datasource
