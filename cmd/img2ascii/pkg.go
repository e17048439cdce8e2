// This package implements the command line tool that uses the library API.
// It converts an image on the filesystem into ascii art on stdout:
//
//	img2ascii <image> [width] [inv]
//
// Width defaults to 120 characters; 'inv' (or 'invert') inverts the
// brightness mapping so dark pixels render as light glyphs. The art goes
// to stdout only; diagnostics go to stderr. Supported formats: png, jpg,
// jpeg, gif, bmp, tiff and webp
// (see github.com/0xAstaaa/ImageToAscii).
package main
