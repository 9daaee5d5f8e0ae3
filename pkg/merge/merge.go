// Package merge overlays the upstream default branding tree into a
// brand's output tree. Files already produced by earlier stages are never
// overwritten; the rest are patched or copied according to their class.
package merge

import (
	"path/filepath"

	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/filesystem"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/types"
)

// candidate is one upstream file considered for the merge.
type candidate struct {
	path  string
	rel   string
	class FileClass
}

// Merge walks the upstream tree at upstreamDir and materializes it into
// outputDir: stylesheets get the background-color patch, the installer
// definitions file is regenerated from cfg, and everything else is copied
// byte for byte. A relative path that already exists under outputDir is
// skipped entirely (first writer wins).
//
// Finding any number of installer-script files other than exactly one in
// the upstream tree is a fatal consistency error: it means the bundled
// tree is corrupted or mismatched, and must not be silently tolerated.
func Merge(fsys types.FS, upstreamDir, outputDir string, cfg types.BrandingConfig) error {
	logger := logging.GetLogger("merge")

	var candidates []candidate
	installerTotal := 0
	err := filesystem.WalkFiles(fsys, upstreamDir, func(path string) error {
		rel, err := filepath.Rel(upstreamDir, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "cannot relativize %s", path)
		}
		class := Classify(path)
		if class == ClassInstallerScript {
			installerTotal++
		}
		candidates = append(candidates, candidate{path: path, rel: filepath.ToSlash(rel), class: class})
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot walk upstream tree %s", upstreamDir)
	}

	if installerTotal != 1 {
		return errors.Newf(errors.ErrUpstreamInconsistent,
			"upstream tree %s has %d installer-script definitions files, expected exactly 1", upstreamDir, installerTotal).
			WithDetail("count", installerTotal)
	}

	written, skipped := 0, 0
	for _, c := range candidates {
		dest := filepath.Join(outputDir, filepath.FromSlash(c.rel))

		// Collision filter: earlier stages own this path.
		if filesystem.Exists(fsys, dest) {
			skipped++
			continue
		}

		if err := fsys.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", dest)
		}

		switch c.class {
		case ClassStylesheet:
			data, err := fsys.ReadFile(c.path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead, "cannot read stylesheet %s", c.path)
			}
			patched := PatchStylesheet(string(data), cfg.BackgroundColor)
			if err := fsys.WriteFile(dest, []byte(patched), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dest)
			}
		case ClassInstallerScript:
			script := SynthesizeInstallerScript(cfg)
			if err := fsys.WriteFile(dest, []byte(script), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dest)
			}
		default:
			if err := filesystem.CopyFile(fsys, c.path, dest); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot copy %s", c.path)
			}
		}
		written++
	}

	logger.Debug().
		Str("upstream", upstreamDir).
		Int("written", written).
		Int("skipped", skipped).
		Msg("merged upstream tree")
	return nil
}
