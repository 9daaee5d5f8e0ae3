package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"

	"github.com/brandforge/brandforge/pkg/errors"
)

// packICO assembles a Windows multi-resolution icon container from the
// per-size logo rasters in sourceDir and writes it to outPath. Entries
// carry PNG payloads, which every Windows version since Vista accepts.
func (e *Engine) packICO(sourceDir, outPath string, sizes []int) error {
	pngs := make([][]byte, 0, len(sizes))
	for _, size := range sizes {
		path := filepath.Join(sourceDir, fmt.Sprintf("logo%d.png", size))
		data, err := e.FS.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot read raster %s for icon packing", path)
		}
		pngs = append(pngs, data)
	}

	if err := e.FS.WriteFile(outPath, encodeICO(sizes, pngs), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", outPath)
	}
	return nil
}

// encodeICO builds an ICO file from PNG-encoded images.
func encodeICO(sizes []int, pngs [][]byte) []byte {
	n := len(sizes)
	dataOffset := 6 + n*16 // header + directory entries

	var buf bytes.Buffer
	// Header: reserved, type (1=ICO), count.
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(n)})

	// Directory entries. A width/height byte of 0 means 256 or larger.
	offset := uint32(dataOffset)
	for i, size := range sizes {
		w := uint8(size)
		if size >= 256 {
			w = 0
		}
		buf.Write([]byte{w, w, 0, 0})                                   // width, height, palette, reserved
		_ = binary.Write(&buf, binary.LittleEndian, uint16(1))          // color planes
		_ = binary.Write(&buf, binary.LittleEndian, uint16(32))         // bits per pixel
		_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pngs[i]))) // data size
		_ = binary.Write(&buf, binary.LittleEndian, offset)             // data offset
		offset += uint32(len(pngs[i]))
	}

	// Image data.
	for _, p := range pngs {
		buf.Write(p)
	}
	return buf.Bytes()
}
