package brandforge

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge/brandforge/pkg/testutil"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	w := testutil.NewWorkspace(t)
	w.AddBrand(t, "acme", false, "")

	out, err := runCommand(t, "--root", w.Root, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "acme")
}

func TestListCommandNoBrandsDir(t *testing.T) {
	w := testutil.NewWorkspace(t)

	_, err := runCommand(t, "--root", w.Root, "list")
	assert.Error(t, err)
}

func TestApplyCommand(t *testing.T) {
	w := testutil.NewWorkspace(t)
	w.AddBrand(t, "acme", false, "")

	out, err := runCommand(t, "--root", w.Root, "apply", "--platform", "linux", "acme")
	require.NoError(t, err)
	assert.Contains(t, out, "applied acme")
	assert.FileExists(t, filepath.Join(w.Paths.OutputDir("acme"), "default512.png"))
}

func TestApplyCommandUnknownBrand(t *testing.T) {
	w := testutil.NewWorkspace(t)

	_, err := runCommand(t, "--root", w.Root, "apply", "--platform", "linux", "ghost")
	assert.Error(t, err)
}

func TestApplyCommandRequiresBrand(t *testing.T) {
	w := testutil.NewWorkspace(t)

	_, err := runCommand(t, "--root", w.Root, "apply")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "brandforge version")
}
