// Package outline models vector font glyphs as closed contours of line,
// quadratic and cubic Bezier segments, and extracts them from TTF/OTF
// font files.
//
// Coordinates are em-normalized design units (one em == 1.0) with y
// increasing upward. A Glyph is immutable once extracted; the assembly
// session in the root package only reads it.
//
// Extraction backends are pluggable: the default backend parses fonts
// with golang.org/x/image/font/sfnt, and a "gotext" backend backed by
// go-text/typesetting can be selected per source or registered under a
// custom name with RegisterParser.
package outline
