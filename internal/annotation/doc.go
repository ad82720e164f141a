// Package annotation holds per-address color tags and notes.
//
// Annotations are grouped into named sets. A Store carries an ordered,
// fixed list of sets of which exactly one is active; the viewer reads and
// writes only the active set and cycles through the list with Tab.
//
// Color tags are small integers in [MinColor, MaxColor]. An address with no
// stored tag takes its color from the store's ColorPolicy, which lets a
// derived default (for example highlighting non-printable bytes) be layered
// in without storing anything.
package annotation
