// Package brand covers the brand source trees: validating that a brand's
// inputs are complete before any output is produced, and listing the
// brands present in a workspace.
package brand

import (
	"path/filepath"
	"strings"

	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/filesystem"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/paths"
	"github.com/brandforge/brandforge/pkg/types"
)

// Source asset names inside a brand directory
const (
	// LogoFile is the master logo every brand must provide
	LogoFile = "logo.png"

	// BackgroundFile is the vector install-background document,
	// required when building darwin assets
	BackgroundFile = "background.svg"
)

// RequiredAssets returns the mandatory source files for a platform.
// The install background is only consumed on darwin, so it is only
// mandatory there.
func RequiredAssets(platform types.Platform) []string {
	assets := []string{LogoFile}
	if platform == types.PlatformDarwin {
		assets = append(assets, BackgroundFile)
	}
	return assets
}

// Validate confirms the brand's source directory exists and contains every
// mandatory asset. It must succeed before any stage writes to the output
// tree; it never writes anything itself.
func Validate(fsys types.FS, p *paths.Paths, brandID string, platform types.Platform) error {
	logger := logging.GetLogger("brand")

	brandDir := p.BrandDir(brandID)
	info, err := fsys.Stat(brandDir)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrBrandNotFound, "brand %q has no configuration directory at %s", brandID, brandDir).
			WithDetail("brand", brandID)
	}

	var missing []string
	for _, name := range RequiredAssets(platform) {
		if !filesystem.Exists(fsys, filepath.Join(brandDir, name)) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.Newf(errors.ErrAssetMissing, "brand %q is missing required assets: %s", brandID, strings.Join(missing, ", ")).
			WithDetail("brand", brandID).
			WithDetail("missing", missing)
	}

	logger.Debug().Str("brand", brandID).Str("dir", brandDir).Msg("brand sources validated")
	return nil
}

// List returns the brand identifiers present in the workspace, derived
// from the immediate subdirectories of the brands root.
func List(fsys types.FS, p *paths.Paths) ([]string, error) {
	brands, err := filesystem.ListDirs(fsys, p.BrandsDir())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot list brands in %s", p.BrandsDir())
	}
	return brands, nil
}
