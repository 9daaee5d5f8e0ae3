package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"

	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/filesystem"
)

// icnsType maps a raster size to its PNG-capable icns chunk OSType.
var icnsType = map[int]string{
	16:  "icp4",
	32:  "icp5",
	64:  "icp6",
	128: "ic07",
	256: "ic08",
	512: "ic09",
}

// packICNS assembles a macOS icon bundle from the per-size logo rasters in
// sourceDir. Rasters are staged through the shared scratch directory,
// which is cleared first so stale state from an aborted run never leaks
// into a new bundle.
func (e *Engine) packICNS(sourceDir, outPath string) error {
	if err := filesystem.EnsureEmpty(e.FS, e.Scratch); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot prepare scratch directory %s", e.Scratch)
	}

	var chunks bytes.Buffer
	for _, size := range icnsSizes {
		src := filepath.Join(sourceDir, fmt.Sprintf("logo%d.png", size))
		staged := filepath.Join(e.Scratch, fmt.Sprintf("icon_%dx%d.png", size, size))
		if err := filesystem.CopyFile(e.FS, src, staged); err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot stage raster %s", src)
		}

		data, err := e.FS.ReadFile(staged)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot read staged raster %s", staged)
		}
		chunks.WriteString(icnsType[size])
		_ = binary.Write(&chunks, binary.BigEndian, uint32(8+len(data)))
		chunks.Write(data)
	}

	// File header: magic plus total length including the 8 header bytes.
	var out bytes.Buffer
	out.WriteString("icns")
	_ = binary.Write(&out, binary.BigEndian, uint32(8+chunks.Len()))
	out.Write(chunks.Bytes())

	if err := e.FS.WriteFile(outPath, out.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", outPath)
	}
	return nil
}
