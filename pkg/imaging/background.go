package imaging

import (
	"bytes"
	"image"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/brandforge/brandforge/pkg/errors"
)

// renderBackground rasterizes the brand's vector install-background
// document to a PNG at the document's native resolution.
func (e *Engine) renderBackground(svgPath, outPath string) error {
	data, err := e.FS.ReadFile(svgPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", svgPath)
	}

	width, height, err := nativeSize(data)
	if err != nil {
		return errors.Wrapf(err, errors.ErrImageDecode, "cannot determine native size of %s", svgPath)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return errors.Wrapf(err, errors.ErrImageDecode, "cannot parse %s", svgPath)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	out, err := encodePNG(img)
	if err != nil {
		return err
	}
	if err := e.FS.WriteFile(outPath, out, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", outPath)
	}
	return nil
}

// nativeSize reads the document's declared width/height attributes,
// falling back to the viewBox dimensions when they are absent.
func nativeSize(data []byte) (int, int, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return 0, 0, err
	}
	root := doc.SelectElement("svg")
	if root == nil {
		return 0, 0, errors.New(errors.ErrImageDecode, "document has no svg root element")
	}

	w := parseLength(root.SelectAttrValue("width", ""))
	h := parseLength(root.SelectAttrValue("height", ""))
	if w > 0 && h > 0 {
		return w, h, nil
	}

	if vb := root.SelectAttrValue("viewBox", ""); vb != "" {
		parts := strings.Fields(vb)
		if len(parts) == 4 {
			vw := parseLength(parts[2])
			vh := parseLength(parts[3])
			if vw > 0 && vh > 0 {
				return vw, vh, nil
			}
		}
	}
	return 0, 0, errors.New(errors.ErrImageDecode, "document declares no usable dimensions")
}

// parseLength parses an SVG length attribute, tolerating a px suffix and
// fractional values. Returns 0 when unparsable.
func parseLength(s string) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0
	}
	return int(f)
}
