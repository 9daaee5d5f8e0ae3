// Package paths provides centralized path handling for brandforge.
// It resolves the branding workspace layout and XDG Base Directory
// locations, giving the rest of the codebase one API for path questions.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/brandforge/brandforge/pkg/errors"
)

// Environment variable names
const (
	// EnvWorkspaceRoot is the primary environment variable for the
	// branding workspace location
	EnvWorkspaceRoot = "BRANDFORGE_ROOT"

	// EnvCacheDir overrides the XDG cache directory for brandforge
	EnvCacheDir = "BRANDFORGE_CACHE_DIR"
)

// Workspace layout constants. These define the fixed structure of a
// branding workspace and are not user-configurable.
const (
	// BrandsDirName holds one subdirectory per brand
	BrandsDirName = "brands"

	// AssetsDirName holds the trees bundled with the engine
	AssetsDirName = "assets"

	// UpstreamDirName is the stock, unbranded asset tree under assets/
	UpstreamDirName = "default"

	// OptionalDirName is the template subtree under assets/
	OptionalDirName = "optional"

	// OutputDirName is the per-brand branding store root
	OutputDirName = "out"

	// WorkspaceConfigFile carries the global product identity
	WorkspaceConfigFile = "brandforge.toml"

	// BrandConfigFile carries per-brand overrides
	BrandConfigFile = "brand.toml"

	// ScratchDirName is the shared scratch directory for icon bundling
	ScratchDirName = "brandforge-iconset"
)

// Paths provides centralized path management for a branding workspace
type Paths struct {
	root string
}

// New creates a Paths rooted at root. An empty root falls back to
// BRANDFORGE_ROOT and then the current directory.
func New(root string) (*Paths, error) {
	if root == "" {
		root = os.Getenv(EnvWorkspaceRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot resolve workspace root %q", root)
	}
	return &Paths{root: abs}, nil
}

// Root returns the workspace root directory
func (p *Paths) Root() string {
	return p.root
}

// BrandsDir returns the directory holding all brand source trees
func (p *Paths) BrandsDir() string {
	return filepath.Join(p.root, BrandsDirName)
}

// BrandDir returns the source tree for one brand
func (p *Paths) BrandDir(brandID string) string {
	return filepath.Join(p.BrandsDir(), brandID)
}

// BrandConfigPath returns the per-brand override config file
func (p *Paths) BrandConfigPath(brandID string) string {
	return filepath.Join(p.BrandDir(brandID), BrandConfigFile)
}

// WorkspaceConfigPath returns the global workspace config file
func (p *Paths) WorkspaceConfigPath() string {
	return filepath.Join(p.root, WorkspaceConfigFile)
}

// UpstreamDir returns the bundled stock asset tree
func (p *Paths) UpstreamDir() string {
	return filepath.Join(p.root, AssetsDirName, UpstreamDirName)
}

// OptionalDir returns the bundled template subtree
func (p *Paths) OptionalDir() string {
	return filepath.Join(p.root, AssetsDirName, OptionalDirName)
}

// OutputDir returns the branding store entry for one brand
func (p *Paths) OutputDir(brandID string) string {
	return filepath.Join(p.root, OutputDirName, brandID)
}

// CacheDir returns the cache directory for the content-hash manifest
func (p *Paths) CacheDir() string {
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.CacheHome, "brandforge")
}

// ScratchDir returns the temporary staging directory used while
// assembling the macOS icon bundle. It is shared across runs and must
// be cleared before reuse.
func (p *Paths) ScratchDir() string {
	return filepath.Join(os.TempDir(), ScratchDirName)
}
