package imagetoascii

type Option func(*Converter)

/*
WithWidth specifies the output width in characters. Non-positive widths
silently fall back to DefaultWidth; a missing or malformed width is a
recoverable input, not an error.
*/
func WithWidth(width int) Option {
	if width <= 0 {
		width = DefaultWidth
	}
	return func(c *Converter) {
		c.TargetWidth = width
	}
}

/*
WithCharAspect specifies the height/width ratio of a character cell used
for aspect correction. Non-positive values fall back to
DefaultCharAspect.
*/
func WithCharAspect(aspect float64) Option {
	if aspect <= 0 {
		aspect = DefaultCharAspect
	}
	return func(c *Converter) {
		c.CharAspect = aspect
	}
}

// WithInvert enables/disables inverted brightness mapping. Inversion
// reverses whichever ramp is configured, so it composes with WithRamp
// regardless of option order.
func WithInvert(invert bool) Option {
	return func(c *Converter) {
		c.Invert = invert
	}
}

/*
WithRamp specifies a custom glyph ramp, ordered dark -> light. The ramp
must be non-empty ASCII; an empty ramp keeps RampDefault.
*/
func WithRamp(ramp string) Option {
	return func(c *Converter) {
		if ramp != "" {
			c.Ramp = ramp
		}
	}
}
