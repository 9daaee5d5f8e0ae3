// Package testutil provides helpers for building throwaway branding
// workspaces in tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandforge/brandforge/pkg/filesystem"
	"github.com/brandforge/brandforge/pkg/paths"
	"github.com/brandforge/brandforge/pkg/types"
)

// TestSVG is a minimal install-background document with a 100x50 native
// resolution.
const TestSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100px" height="50px" viewBox="0 0 100 50"><rect width="100" height="50" fill="#112233"/></svg>`

// Workspace is a real on-disk branding workspace rooted in a temp dir.
type Workspace struct {
	Root  string
	Paths *paths.Paths
	FS    types.FS
}

// NewWorkspace creates a workspace with a minimal consistent upstream
// tree and template subtree, and isolates the hash cache in the temp dir.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()

	root := t.TempDir()
	p, err := paths.New(root)
	require.NoError(t, err)
	t.Setenv(paths.EnvCacheDir, filepath.Join(root, "cache"))

	w := &Workspace{Root: root, Paths: p, FS: filesystem.NewOS()}

	// Upstream default tree
	w.WriteFile(t, "assets/default/branding.nsi", "!define BrandFullName \"Stock Browser\"\n")
	w.WriteFile(t, "assets/default/content/aboutDialog.css", "background: #130829;\n")
	w.WriteFile(t, "assets/default/locales/brand.properties", "brandShortName=Stock\n")

	// Optional template subtree
	w.WriteFile(t, "assets/optional/locales/brand.ftl", "brand-full-name = {{brandFullName}}\n")

	return w
}

// WriteFile writes content at rel under the workspace root.
func (w *Workspace) WriteFile(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(w.Root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// AddBrand creates a brand source directory with a master logo and,
// optionally, an install-background document and config overrides.
func (w *Workspace) AddBrand(t *testing.T, id string, withBackground bool, brandTOML string) {
	t.Helper()
	dir := w.Paths.BrandDir(id)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), LogoPNG(t, 64), 0644))
	if withBackground {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "background.svg"), []byte(TestSVG), 0644))
	}
	if brandTOML != "" {
		require.NoError(t, os.WriteFile(w.Paths.BrandConfigPath(id), []byte(brandTOML), 0644))
	}
}

// LogoPNG returns a solid-color square PNG of the given size.
func LogoPNG(t *testing.T, size int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: 0xC0, G: 0x20, B: 0x40, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
