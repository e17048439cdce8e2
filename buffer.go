package imagetoascii

import (
	"image"

	"github.com/disintegration/imaging"
)

// Luma weights from ITU-R BT.709.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// pixelBuffer is a flat, read-only view of a decoded image. channels is
// 1 for grayscale sources and 4 for everything else; the alpha byte is
// carried along but never read.
type pixelBuffer struct {
	width    int
	height   int
	channels int
	pix      []byte
}

func newPixelBuffer(img image.Image) *pixelBuffer {
	if g, ok := img.(*image.Gray); ok {
		b := g.Bounds()
		w, h := b.Dx(), b.Dy()
		pix := make([]byte, w*h)
		for y := 0; y < h; y++ {
			row := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(pix[y*w:(y+1)*w], row[:w])
		}
		return &pixelBuffer{width: w, height: h, channels: 1, pix: pix}
	}

	// Clone normalizes any color model into NRGBA with a zero origin.
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(pix[y*w*4:(y+1)*w*4], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+w*4])
	}
	return &pixelBuffer{width: w, height: h, channels: 4, pix: pix}
}

/*
averageLuminance computes the mean luminance over the half-open pixel
rectangle [sx0,sx1) x [sy0,sy1), normalized to [0,1].

Single-channel buffers treat the one byte as r=g=b. An empty rectangle
(possible after clamping at an image edge) averages to 0, the darkest
value, rather than dividing by zero.
*/
func (p *pixelBuffer) averageLuminance(sx0, sy0, sx1, sy1 int) float64 {
	sum := 0.0
	count := 0
	for sy := sy0; sy < sy1; sy++ {
		for sx := sx0; sx < sx1; sx++ {
			i := (sy*p.width + sx) * p.channels
			var r, g, b byte
			if p.channels == 1 {
				r, g, b = p.pix[i], p.pix[i], p.pix[i]
			} else {
				r, g, b = p.pix[i], p.pix[i+1], p.pix[i+2]
			}
			sum += (lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)) / 255.0
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
