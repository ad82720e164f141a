// Package prompt provides the modal multi-line text entry box used for
// notes and the goto-address prompt.
//
// A prompt takes over the screen and the key stream until the commit key
// (Ctrl+G) is pressed, then returns whatever was typed. There is no cancel:
// committing an empty box returns the empty string.
package prompt
