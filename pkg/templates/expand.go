// Package templates expands the bundled "optional branding" template
// subtree against a resolved branding configuration, reproducing the
// subtree's relative layout under the output tree.
package templates

import (
	"path/filepath"
	"strings"

	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/filesystem"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/types"
)

// Expand walks the template subtree at templateDir and writes each file,
// with its {{key}} placeholders substituted from cfg, at the same relative
// path under outputDir. Unrecognized placeholders are left verbatim.
// Re-running with the same config produces byte-identical output.
func Expand(fsys types.FS, templateDir, outputDir string, cfg types.BrandingConfig) error {
	logger := logging.GetLogger("templates")

	replacer := newReplacer(cfg)
	count := 0

	err := filesystem.WalkFiles(fsys, templateDir, func(path string) error {
		rel, err := relativeTo(templateDir, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "cannot relativize %s", path)
		}

		data, err := fsys.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot read template %s", path)
		}

		out := filepath.Join(outputDir, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", out)
		}
		if err := fsys.WriteFile(out, []byte(replacer.Replace(string(data))), 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", out)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug().Str("templates", templateDir).Int("files", count).Msg("expanded template subtree")
	return nil
}

// newReplacer builds the placeholder replacer for a configuration.
func newReplacer(cfg types.BrandingConfig) *strings.Replacer {
	pairs := make([]string, 0, 12)
	for key, value := range cfg.Placeholders() {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...)
}

// relativeTo computes path's position under root with separators
// normalized to forward slashes, so the relative-path strip is correct
// regardless of host path conventions.
func relativeTo(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
