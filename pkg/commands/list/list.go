// Package list implements the brand listing command.
package list

import (
	"github.com/brandforge/brandforge/pkg/brand"
	"github.com/brandforge/brandforge/pkg/filesystem"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/paths"
	"github.com/brandforge/brandforge/pkg/types"
)

// Options defines the options for the Brands command.
type Options struct {
	// Paths resolves the workspace layout.
	Paths *paths.Paths

	// FS is the filesystem to operate on; nil means the OS filesystem.
	FS types.FS
}

// Brands returns the brand identifiers available in the workspace.
func Brands(opts Options) ([]string, error) {
	logger := logging.GetLogger("commands.list")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	brands, err := brand.List(fsys, opts.Paths)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(brands)).Msg("listed brands")
	return brands, nil
}
