package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge/brandforge/pkg/testutil"
)

func TestBrands(t *testing.T) {
	w := testutil.NewWorkspace(t)
	w.AddBrand(t, "acme", false, "")
	w.AddBrand(t, "zephyr", false, "")

	brands, err := Brands(Options{Paths: w.Paths})
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "zephyr"}, brands)
}

func TestBrandsMissingRoot(t *testing.T) {
	w := testutil.NewWorkspace(t)

	_, err := Brands(Options{Paths: w.Paths})
	assert.Error(t, err)
}
