// Package apply implements the per-brand branding pipeline: validate the
// brand's sources, resolve its configuration, then materialize the full
// branding store entry.
package apply

import (
	"context"
	"runtime"

	"github.com/brandforge/brandforge/pkg/brand"
	"github.com/brandforge/brandforge/pkg/config"
	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/filesystem"
	"github.com/brandforge/brandforge/pkg/hashcache"
	"github.com/brandforge/brandforge/pkg/imaging"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/merge"
	"github.com/brandforge/brandforge/pkg/paths"
	"github.com/brandforge/brandforge/pkg/templates"
	"github.com/brandforge/brandforge/pkg/types"
)

// Options defines the options for the Apply command.
type Options struct {
	// Paths resolves the workspace layout.
	Paths *paths.Paths

	// BrandID names the brand to apply.
	BrandID string

	// Platform selects the build target; empty means the host platform.
	Platform types.Platform

	// FS is the filesystem to operate on; nil means the OS filesystem.
	FS types.FS
}

// Apply materializes the branding store entry for one brand:
// validate -> resolve config -> recreate output tree -> derive images ->
// expand templates -> merge upstream.
//
// Any stage failure aborts the remaining sequence. The output tree is
// left in whatever partial state the failing stage produced; the next
// Apply clears it in the recreate step. Concurrent applies of the same
// brand are not supported.
func Apply(ctx context.Context, opts Options) error {
	logger := logging.GetLogger("commands.apply")
	done := logging.LogOperationStart(logger, "apply "+opts.BrandID)
	defer done()

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	platform := opts.Platform
	if platform == "" {
		platform = types.Platform(runtime.GOOS)
	}
	p := opts.Paths

	// Validation runs before anything writes, so an invalid brand never
	// leaves a partially-populated output tree behind.
	if err := brand.Validate(fsys, p, opts.BrandID, platform); err != nil {
		return err
	}

	cfg, err := config.Resolve(p, opts.BrandID)
	if err != nil {
		return err
	}

	outputDir := p.OutputDir(opts.BrandID)
	if err := filesystem.EnsureEmpty(fsys, outputDir); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot recreate output tree %s", outputDir)
	}

	cache, err := hashcache.Open(fsys, p.CacheDir())
	if err != nil {
		return err
	}

	engine := &imaging.Engine{
		FS:       fsys,
		Cache:    cache,
		Platform: platform,
		Scratch:  p.ScratchDir(),
	}
	if err := engine.Derive(ctx, p.BrandDir(opts.BrandID), outputDir, cfg); err != nil {
		return err
	}

	if err := templates.Expand(fsys, p.OptionalDir(), outputDir, cfg); err != nil {
		return err
	}

	if err := merge.Merge(fsys, p.UpstreamDir(), outputDir, cfg); err != nil {
		return err
	}

	logger.Info().
		Str("brand", opts.BrandID).
		Str("platform", string(platform)).
		Str("output", outputDir).
		Msg("brand applied")
	return nil
}
