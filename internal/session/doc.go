// Package session interprets key presses against the viewer state.
//
// A Session owns the navigation state, the annotation store and the data
// source of one viewing session. HandleKey looks a key up in the global
// binding table first; only when no global binding matches does the table
// of the current mode get a chance. After every key the cursor is clamped
// to be non-negative and the key is remembered, which is how a double
// Escape is recognized.
package session
