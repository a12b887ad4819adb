// Package pointfile reads and writes vertex positions as plain text, one
// comma-separated "x,y" pair per line:
//
//	0,0
//	10,0
//	3.5,-2
//
// Blank lines are skipped and whitespace around numbers is ignored. Anything
// else that is not exactly two finite numbers is rejected with
// errors.ErrCodeMalformedInput and the offending line number.
//
// File coordinates are arbitrary. [Normalize] maps them into a pane by
// shifting the bounding box to the origin and scaling uniformly so the larger
// relative span fills the pane.
package pointfile
