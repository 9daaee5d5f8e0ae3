package brand

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/filesystem"
	"github.com/brandforge/brandforge/pkg/paths"
	"github.com/brandforge/brandforge/pkg/types"
)

func setup(t *testing.T) (types.FS, *paths.Paths) {
	t.Helper()
	fsys := filesystem.NewMemory()
	p, err := paths.New(t.TempDir())
	require.NoError(t, err)
	return fsys, p
}

func addBrand(t *testing.T, fsys types.FS, p *paths.Paths, id string, files ...string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(p.BrandDir(id), 0755))
	for _, f := range files {
		require.NoError(t, fsys.WriteFile(filepath.Join(p.BrandDir(id), f), []byte("data"), 0644))
	}
}

func TestValidateComplete(t *testing.T) {
	fsys, p := setup(t)
	addBrand(t, fsys, p, "acme", LogoFile)

	assert.NoError(t, Validate(fsys, p, "acme", types.PlatformLinux))
}

func TestValidateMissingBrandDir(t *testing.T) {
	fsys, p := setup(t)

	err := Validate(fsys, p, "ghost", types.PlatformLinux)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBrandNotFound))
}

func TestValidateMissingLogo(t *testing.T) {
	fsys, p := setup(t)
	addBrand(t, fsys, p, "acme", "brand.toml")

	err := Validate(fsys, p, "acme", types.PlatformLinux)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAssetMissing))
	// The error must name every missing file
	assert.Contains(t, err.Error(), LogoFile)
}

func TestValidateDarwinRequiresBackground(t *testing.T) {
	fsys, p := setup(t)
	addBrand(t, fsys, p, "acme", LogoFile)

	// Complete for linux, incomplete for darwin
	assert.NoError(t, Validate(fsys, p, "acme", types.PlatformLinux))

	err := Validate(fsys, p, "acme", types.PlatformDarwin)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAssetMissing))
	assert.Contains(t, err.Error(), BackgroundFile)
}

func TestValidateWritesNothing(t *testing.T) {
	fsys, p := setup(t)
	addBrand(t, fsys, p, "acme", "brand.toml")

	_ = Validate(fsys, p, "acme", types.PlatformLinux)

	assert.False(t, filesystem.Exists(fsys, p.OutputDir("acme")))
}

func TestList(t *testing.T) {
	fsys, p := setup(t)
	addBrand(t, fsys, p, "acme", LogoFile)
	addBrand(t, fsys, p, "zephyr", LogoFile)

	brands, err := List(fsys, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "zephyr"}, brands)
}
