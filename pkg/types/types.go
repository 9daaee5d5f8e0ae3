// Package types holds the shared data types and interfaces used across
// brandforge packages. Keeping them here avoids import cycles between the
// pipeline stages.
package types

// BrandingConfig is the resolved branding configuration for one brand.
// It is built once per apply by the config resolver and passed read-only
// through every downstream stage.
type BrandingConfig struct {
	BackgroundColor     string `koanf:"background_color"`
	BrandShorterName    string `koanf:"brand_shorter_name"`
	BrandShortName      string `koanf:"brand_short_name"`
	BrandFullName       string `koanf:"brand_full_name"`
	BrandingGenericName string `koanf:"generic_name"`
	BrandingVendor      string `koanf:"vendor"`
}

// Placeholders returns the template placeholder map for this configuration.
// Keys match the {{key}} tokens recognized by the template expander.
func (c BrandingConfig) Placeholders() map[string]string {
	return map[string]string{
		"backgroundColor":     c.BackgroundColor,
		"brandShorterName":    c.BrandShorterName,
		"brandShortName":      c.BrandShortName,
		"brandFullName":       c.BrandFullName,
		"brandingGenericName": c.BrandingGenericName,
		"brandingVendor":      c.BrandingVendor,
	}
}

// Platform identifies the build target for platform-specific assets.
// Values follow GOOS naming ("linux", "darwin", "windows").
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "windows"
)
