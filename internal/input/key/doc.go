// Package key provides the key event type consumed by the session dispatcher.
//
// Events are plain comparable values: two presses of the same key compare
// equal with ==, which is what double-press detection (Escape, Escape) relies on.
// Character keys use KeyRune with the character in Event.Rune; everything else
// is a named special key.
package key
