package imagetoascii

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

/*
LoadFile decodes an image from disk and applies its EXIF orientation,
if any, so camera photos convert upright. The file handle is closed on
every path; decode failures are wrapped with the offending path.
*/
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	orient := exifOrient(f)

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return orientImage(orient, img), nil
}

// exifOrient reads the EXIF Orientation tag, defaulting to 1 (upright)
// when the tag or the whole EXIF block is absent.
func exifOrient(r io.Reader) int {
	x, err := exif.Decode(r)
	if err == nil && x != nil {
		tag, err := x.Get(exif.Orientation)
		if err == nil && tag != nil && tag.Count != 0 {
			if i, err := tag.Int(0); err == nil {
				return i
			}
		}
	}
	return 1
}

// orientImage undoes the capture-time transform described by an EXIF
// orientation value (1-8).
func orientImage(orient int, img image.Image) image.Image {
	switch orient {
	case 2:
		return imaging.FlipV(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.Rotate180(imaging.FlipV(img))
	case 5:
		return imaging.Rotate270(imaging.FlipV(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Rotate90(imaging.FlipV(img))
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}
