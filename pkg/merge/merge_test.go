package merge

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/filesystem"
	"github.com/brandforge/brandforge/pkg/types"
)

var testConfig = types.BrandingConfig{
	BackgroundColor:     "#112233",
	BrandShorterName:    "Acme",
	BrandShortName:      "Acme",
	BrandFullName:       "Acme Browser",
	BrandingGenericName: "Web Browser",
	BrandingVendor:      "Acme Corp",
}

func write(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

func read(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// upstream builds a minimal consistent upstream tree.
func upstream(t *testing.T) types.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	write(t, fsys, "default/branding.nsi", "!define BrandFullName \"Stock Browser\"\n")
	write(t, fsys, "default/content/aboutDialog.css", "background: #130829;\n")
	write(t, fsys, "default/locales/brand.properties", "brandShortName=Stock\n")
	require.NoError(t, fsys.MkdirAll("out", 0755))
	return fsys
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassInstallerScript, Classify("branding.nsi"))
	assert.Equal(t, ClassInstallerScript, Classify("some/dir/branding.nsi"))
	assert.Equal(t, ClassStylesheet, Classify("aboutDialog.css"))
	assert.Equal(t, ClassGeneric, Classify("brand.properties"))
	assert.Equal(t, ClassGeneric, Classify("logo.png"))
}

func TestMergeGenericCopy(t *testing.T) {
	fsys := upstream(t)

	require.NoError(t, Merge(fsys, "default", "out", testConfig))

	assert.Equal(t, "brandShortName=Stock\n", read(t, fsys, "out/locales/brand.properties"))
}

func TestMergeStylesheetPatch(t *testing.T) {
	fsys := upstream(t)

	require.NoError(t, Merge(fsys, "default", "out", testConfig))

	got := read(t, fsys, "out/content/aboutDialog.css")
	assert.NotContains(t, got, "#130829")
	assert.NotContains(t, got, "hsla(263, 68%, 10%, 1)")
	assert.Contains(t, got, "background: var(--theme-bg);")

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, ":root { --theme-bg: #112233 }", lines[len(lines)-1])
}

func TestMergeStylesheetPatchHSLA(t *testing.T) {
	fsys := upstream(t)
	write(t, fsys, "default/content/browser.css", "body { background: hsla(263, 68%, 10%, 1); }")

	require.NoError(t, Merge(fsys, "default", "out", testConfig))

	got := read(t, fsys, "out/content/browser.css")
	assert.Equal(t, "body { background: var(--theme-bg); }\n:root { --theme-bg: #112233 }\n", got)
}

func TestMergeInstallerSynthesis(t *testing.T) {
	fsys := upstream(t)

	require.NoError(t, Merge(fsys, "default", "out", testConfig))

	got := read(t, fsys, "out/branding.nsi")
	// Wholly regenerated: no trace of the upstream copy
	assert.NotContains(t, got, "Stock Browser")
	assert.Contains(t, got, `!define BrandFullName         "Acme Browser"`)
	assert.Contains(t, got, `!define CompanyName           "Acme Corp"`)
	assert.Contains(t, got, "URLInfoAbout")
}

func TestMergeFirstWriterWins(t *testing.T) {
	fsys := upstream(t)
	// An earlier stage already produced this path
	write(t, fsys, "out/locales/brand.properties", "brandShortName=Acme\n")

	require.NoError(t, Merge(fsys, "default", "out", testConfig))

	assert.Equal(t, "brandShortName=Acme\n", read(t, fsys, "out/locales/brand.properties"))
}

func TestMergeNoInstallerIsFatal(t *testing.T) {
	fsys := upstream(t)
	require.NoError(t, fsys.Remove("default/branding.nsi"))

	err := Merge(fsys, "default", "out", testConfig)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUpstreamInconsistent))
}

func TestMergeDuplicateInstallerIsFatal(t *testing.T) {
	fsys := upstream(t)
	write(t, fsys, "default/extra/branding.nsi", "duplicate\n")

	err := Merge(fsys, "default", "out", testConfig)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUpstreamInconsistent))
}

func TestPatchStylesheetAddsTrailingNewline(t *testing.T) {
	got := PatchStylesheet("a { background: #130829 }", "#abcdef")
	assert.True(t, strings.HasSuffix(got, ":root { --theme-bg: #abcdef }\n"))
}

func TestSynthesizeInstallerScriptAlignment(t *testing.T) {
	got := SynthesizeInstallerScript(testConfig)
	// Defines align values in a single column
	assert.Contains(t, got, `!define BrandShortName        "Acme"`)
	assert.Contains(t, got, `!define BrandFullName         "Acme Browser"`)
}
