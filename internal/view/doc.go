// Package view holds the navigation state of a viewer session: the cursor
// address, the row width, the current mode, the optional range marker and
// the last key pressed.
//
// All mutators keep the width at least 1. The cursor may be driven negative
// by arithmetic; Clamp pulls it back to zero and is called after every key.
// There is no upper bound on the cursor below math.MaxInt64, where forward
// moves stop.
package view
