// Package paths decides whether a path-shaped candidate refers to something
// on this machine, and resolves it to the absolute form used as a hyperlink
// target.
//
// The asymmetry between the rules is deliberate: absolute and home-relative
// candidates are trusted by shape alone (tool output overwhelmingly prints
// them correctly, and checking them would cost a stat per candidate), while
// relative candidates are only accepted when their first component names a
// real entry in the working directory, because bare words collide with
// filenames far too often.
package paths
