// Package config resolves the layered branding configuration for a brand.
//
// Three layers merge shallowly, lowest to highest precedence:
//
//  1. embedded built-in defaults
//  2. global product identity from the workspace brandforge.toml
//  3. the brand's own brand.toml overrides
//
// Later layers fully replace identically-named fields of earlier ones.
// No field-content validation happens here; downstream consumers must
// tolerate malformed values or fail clearly.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/paths"
	"github.com/brandforge/brandforge/pkg/types"
)

// Resolve builds the immutable BrandingConfig for brandID.
// It is a pure function of the configuration files on disk; it performs
// no writes and no validation of field contents.
func Resolve(p *paths.Paths, brandID string) (types.BrandingConfig, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return types.BrandingConfig{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. Workspace config: product identity overrides generic name and vendor
	workspacePath := p.WorkspaceConfigPath()
	if _, err := os.Stat(workspacePath); err == nil {
		if err := k.Load(file.Provider(workspacePath), toml.Parser()); err != nil {
			return types.BrandingConfig{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load workspace config from %s", workspacePath)
		}
		if name := k.String("product.name"); name != "" {
			if err := k.Set("branding.generic_name", name); err != nil {
				return types.BrandingConfig{}, errors.Wrap(err, errors.ErrInternal, "failed to apply product name")
			}
		}
		if vendor := k.String("product.vendor"); vendor != "" {
			if err := k.Set("branding.vendor", vendor); err != nil {
				return types.BrandingConfig{}, errors.Wrap(err, errors.ErrInternal, "failed to apply product vendor")
			}
		}
	}

	// 3. Brand overrides, highest precedence. The file may be absent: a
	// brand with no overrides inherits everything from the lower layers.
	brandPath := p.BrandConfigPath(brandID)
	if _, err := os.Stat(brandPath); err == nil {
		if err := k.Load(file.Provider(brandPath), toml.Parser()); err != nil {
			return types.BrandingConfig{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load brand config from %s", brandPath)
		}
	}

	var cfg types.BrandingConfig
	if err := k.Unmarshal("branding", &cfg); err != nil {
		return types.BrandingConfig{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal branding config")
	}

	logger.Debug().
		Str("brand", brandID).
		Str("fullName", cfg.BrandFullName).
		Str("backgroundColor", cfg.BackgroundColor).
		Msg("resolved branding config")

	return cfg, nil
}

// DefaultsContent returns the embedded defaults, for genconfig-style
// introspection.
func DefaultsContent() string {
	return string(defaultConfig)
}
