// Package imagetoascii converts raster images into ascii art. Every
// output character covers a rectangle of source pixels; the rectangle's
// area-averaged luminance picks a glyph from a dark-to-light ramp.
//
// Start by calling New() or NewDefault(), passing options from
// options.go, then hand an image.Image to Convert() or Render(). See
// LoadFile() for decoding images from disk.
package imagetoascii

import (
	"bytes"
	"image"
	"io"
	"math"
	"strings"
)

const (
	// DefaultWidth is the output width in characters, used whenever a
	// requested width is missing or non-positive.
	DefaultWidth = 120

	// DefaultCharAspect is the height/width ratio of a terminal
	// character cell. Values around 0.5-0.6 keep the art proportionate
	// on common terminal fonts.
	DefaultCharAspect = 0.55
)

type Converter struct {
	// TargetWidth is the output width in characters. Non-positive
	// values fall back to DefaultWidth.
	TargetWidth int

	// CharAspect compensates for character cells being taller than
	// wide. Non-positive values fall back to DefaultCharAspect.
	CharAspect float64

	// Ramp is the glyph ramp, ordered dark -> light. Empty falls back
	// to RampDefault.
	Ramp string

	// Invert reverses the ramp, so dark pixels render as light glyphs.
	Invert bool
}

// NewDefault initializes a Converter with the standard parameters:
// 120 characters wide, 0.55 cell aspect, RampDefault, no inversion.
func NewDefault() *Converter {
	return &Converter{
		TargetWidth: DefaultWidth,
		CharAspect:  DefaultCharAspect,
		Ramp:        RampDefault,
	}
}

// New initializes a Converter with default parameters, then applies
// options.
func New(opts ...Option) *Converter {
	c := NewDefault()
	for _, o := range opts {
		o(c)
	}
	return c
}

// outputSize returns the character grid dimensions for a source image
// of the given pixel dimensions. The height follows the width's scale
// factor corrected by CharAspect, rounded half away from zero and never
// below one row.
func (c *Converter) outputSize(width, height int) (int, int) {
	outW := c.TargetWidth
	if outW <= 0 {
		outW = DefaultWidth
	}
	aspect := c.CharAspect
	if aspect <= 0 {
		aspect = DefaultCharAspect
	}
	outH := int(math.Round(float64(height) * (float64(outW) / float64(width)) * aspect))
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

// cellSpan maps output cell index o on an axis of outN cells onto the
// half-open source pixel range [s0,s1) over n pixels. Flooring the low
// bound and ceiling the high one covers every source pixel even when
// outN does not divide n; adjacent spans may then overlap by one pixel,
// which is accepted rather than corrected with fractional weights.
func cellSpan(o, outN, n int) (int, int) {
	s0 := int(math.Floor(float64(o) * float64(n) / float64(outN)))
	s1 := int(math.Ceil(float64(o+1) * float64(n) / float64(outN)))
	return min(n, max(0, s0)), min(n, max(0, s1))
}

func (c *Converter) ramp() string {
	ramp := c.Ramp
	if ramp == "" {
		ramp = RampDefault
	}
	if c.Invert {
		ramp = reverseRamp(ramp)
	}
	return ramp
}

/*
Convert renders img as an ascii art string: outHeight rows of
TargetWidth glyphs, each row newline-terminated.
*/
func (c *Converter) Convert(img image.Image) string {
	var sb strings.Builder
	c.Render(&sb, img)
	return sb.String()
}

/*
Render writes the ascii art for img to w, row by row. It returns the
first write error; nothing written by a row is ever partial, since rows
are written whole.
*/
func (c *Converter) Render(w io.Writer, img image.Image) error {
	buf := newPixelBuffer(img)
	outW, outH := c.outputSize(buf.width, buf.height)
	ramp := c.ramp()

	line := make([]byte, outW+1)
	line[outW] = '\n'
	for oy := 0; oy < outH; oy++ {
		sy0, sy1 := cellSpan(oy, outH, buf.height)
		for ox := 0; ox < outW; ox++ {
			sx0, sx1 := cellSpan(ox, outW, buf.width)
			line[ox] = glyphAt(buf.averageLuminance(sx0, sy0, sx1, sy1), ramp)
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

/*
ConvertReader decodes an image from r and converts it. Formats
supported are png, jpeg, gif, bmp, tiff and webp; additional formats
can be registered by blank-importing their decoder packages, since the
decoding goes through image.Decode().
*/
func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", err
	}
	return c.Convert(img), nil
}

// ConvertBytes decodes an image from b and converts it. See
// ConvertReader for the supported formats.
func (c *Converter) ConvertBytes(b []byte) (string, error) {
	return c.ConvertReader(bytes.NewReader(b))
}
