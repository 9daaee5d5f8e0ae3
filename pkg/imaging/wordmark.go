package imaging

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/brandforge/brandforge/pkg/errors"
)

// Wordmark rendering constants. The face and color are fixed; only the
// text varies per brand.
const (
	wordmarkPointSize = 96
	wordmarkPadding   = 24
	wordmarkColor     = "#FFFFFF"
)

// renderWordmark rasterizes the brand's shorter name in the fixed display
// font onto a transparent canvas sized to fit the text.
func (e *Engine) renderWordmark(text, outPath string) error {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot parse wordmark font")
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    wordmarkPointSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot build wordmark font face")
	}
	defer func() { _ = face.Close() }()

	// Measure first to size the canvas to the text.
	probe := gg.NewContext(1, 1)
	probe.SetFontFace(face)
	textW, textH := probe.MeasureString(text)

	width := int(textW) + 2*wordmarkPadding
	height := int(textH) + 2*wordmarkPadding

	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	dc.SetHexColor(wordmarkColor)
	dc.DrawStringAnchored(text, float64(width)/2, float64(height)/2, 0.5, 0.5)

	data, err := encodePNG(dc.Image())
	if err != nil {
		return err
	}
	if err := e.FS.WriteFile(outPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", outPath)
	}
	return nil
}
