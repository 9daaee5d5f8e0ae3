// Package imaging derives the full platform image matrix for a brand from
// its single master logo: the fixed set of square rasters, the Windows
// icon containers, the macOS icon bundle, the "about" art, the rendered
// wordmark, and the rasterized install background.
package imaging

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/brandforge/brandforge/pkg/brand"
	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/hashcache"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/types"
)

// RasterSizes is the fixed resize matrix derived from the master logo.
var RasterSizes = []int{16, 22, 24, 32, 48, 64, 128, 256, 512}

// icoSizes are the raster sizes packed into the general application icon.
// 22px is an X11 tray size and is never packed into ICO containers.
var icoSizes = []int{16, 24, 32, 48, 64, 128, 256, 512}

// icoSmallSizes are the raster sizes packed into the small-default icon.
var icoSmallSizes = []int{16, 24, 32, 48, 64}

// icnsSizes are the raster sizes assembled into the macOS icon bundle.
var icnsSizes = []int{16, 32, 64, 128, 256, 512}

// Output file names inside the branding store entry
const (
	ICOFile       = "app.ico"
	ICOSmallFile  = "app64.ico"
	ICNSFile      = "app.icns"
	ContentDir    = "content"
	AboutLogoFile = "about-logo.png"
	About2xFile   = "about-logo@2x.png"
	WordmarkFile  = "about-wordmark.png"
	BackgroundOut = "background.png"
)

// Engine derives all image assets for one brand.
type Engine struct {
	FS       types.FS
	Cache    *hashcache.Cache
	Platform types.Platform

	// Scratch is the staging directory for icon-bundle assembly. It is
	// shared across runs and cleared before each use.
	Scratch string
}

// Derive produces every derived image for the brand rooted at sourceDir
// into outputDir. Steps run in a fixed order because later steps consume
// earlier outputs; any decode, resize, or render failure aborts the whole
// derivation.
func (e *Engine) Derive(ctx context.Context, sourceDir, outputDir string, cfg types.BrandingConfig) error {
	logger := logging.GetLogger("imaging")
	done := logging.LogOperationStart(logger, "derive images")
	defer done()

	logoPath := filepath.Join(sourceDir, brand.LogoFile)
	master, err := e.loadPNG(logoPath)
	if err != nil {
		return err
	}

	// Step 1: the per-size resize batch. All sizes are independent, so
	// they run as a joined parallel group; everything after this point
	// depends on every size being present.
	g, _ := errgroup.WithContext(ctx)
	for _, size := range RasterSizes {
		size := size
		g.Go(func() error {
			return e.writeResized(master, size, sourceDir, outputDir)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Step 2: Windows icon containers, packed from the per-size rasters
	// the resize batch copied back into the source tree.
	if err := e.packICO(sourceDir, filepath.Join(outputDir, ICOFile), icoSizes); err != nil {
		return err
	}
	if err := e.packICO(sourceDir, filepath.Join(outputDir, ICOSmallFile), icoSmallSizes); err != nil {
		return err
	}

	// Step 3: macOS icon bundle
	if e.Platform == types.PlatformDarwin {
		if err := e.packICNS(sourceDir, filepath.Join(outputDir, ICNSFile)); err != nil {
			return err
		}
	}

	// Step 4: about art
	contentDir := filepath.Join(outputDir, ContentDir)
	if err := e.FS.MkdirAll(contentDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", contentDir)
	}
	if err := e.writeScaled(master, 512, filepath.Join(contentDir, AboutLogoFile)); err != nil {
		return err
	}
	if err := e.writeScaled(master, 1024, filepath.Join(contentDir, About2xFile)); err != nil {
		return err
	}

	// Step 5: wordmark
	if err := e.renderWordmark(cfg.BrandShorterName, filepath.Join(contentDir, WordmarkFile)); err != nil {
		return err
	}

	// Step 6: register the master logo with the incremental-build cache
	if err := e.Cache.Register(logoPath); err != nil {
		return err
	}

	// Step 7: install background. The source document is optional off
	// darwin, where install art is never consumed.
	backgroundPath := filepath.Join(sourceDir, brand.BackgroundFile)
	if e.Platform == types.PlatformDarwin {
		if err := e.renderBackground(backgroundPath, filepath.Join(contentDir, BackgroundOut)); err != nil {
			return err
		}
		if err := e.Cache.Register(backgroundPath); err != nil {
			return err
		}
	}

	logger.Info().
		Str("source", sourceDir).
		Str("output", outputDir).
		Int("sizes", len(RasterSizes)).
		Msg("derived image assets")
	return nil
}

// writeResized resizes the master to size, writes default<size>.png into
// the output tree, and copies the raster back into the source tree as
// logo<size>.png so icon packaging and external tooling can address
// per-size rasters by a stable name.
func (e *Engine) writeResized(master *decoded, size int, sourceDir, outputDir string) error {
	data, err := encodePNG(resizeSquare(master.img, size))
	if err != nil {
		return err
	}
	outPath := filepath.Join(outputDir, fmt.Sprintf("default%d.png", size))
	if err := e.FS.WriteFile(outPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", outPath)
	}
	backPath := filepath.Join(sourceDir, fmt.Sprintf("logo%d.png", size))
	if err := e.FS.WriteFile(backPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", backPath)
	}
	return nil
}

// writeScaled writes a single scaled raster of the master to path.
func (e *Engine) writeScaled(master *decoded, size int, path string) error {
	data, err := encodePNG(resizeSquare(master.img, size))
	if err != nil {
		return err
	}
	if err := e.FS.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}
