package imagetoascii

import "math"

// Built-in glyph ramps, ordered dark -> light.
const (
	RampDefault = "@%#*+=-:. "
	RampInvert  = " .:-=+*#%@"
)

/*
glyphAt quantizes a normalized luminance onto a ramp.

Luminance 0 maps to the first (darkest) glyph and 1 to the last
(lightest). The index is rounded half-up and clamped, so values outside
[0,1] land on the nearest end of the ramp instead of panicking.
*/
func glyphAt(lum float64, ramp string) byte {
	idx := int(math.Floor(lum*float64(len(ramp)-1) + 0.5))
	return ramp[min(len(ramp)-1, max(0, idx))]
}

func reverseRamp(ramp string) string {
	b := []byte(ramp)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
