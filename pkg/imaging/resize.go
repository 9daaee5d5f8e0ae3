package imaging

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/brandforge/brandforge/pkg/errors"
)

// decoded pairs a decoded image with its origin for error reporting.
type decoded struct {
	img  image.Image
	path string
}

// loadPNG reads and decodes a PNG from the filesystem abstraction.
func (e *Engine) loadPNG(path string) (*decoded, error) {
	data, err := e.FS.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrImageDecode, "cannot decode %s", path)
	}
	return &decoded{img: img, path: path}, nil
}

// resizeSquare scales src to a size x size raster with a Catmull-Rom
// kernel. The master logo is square by convention; a non-square source is
// stretched rather than letterboxed.
func resizeSquare(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// encodePNG encodes img into PNG bytes.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, errors.ErrImageEncode, "png encode failed")
	}
	return buf.Bytes(), nil
}
