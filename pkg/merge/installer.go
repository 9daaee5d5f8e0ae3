package merge

import (
	"fmt"
	"strings"

	"github.com/brandforge/brandforge/pkg/types"
)

// Fixed installer constants: product URLs, identifiers, and installer UI
// layout values shared by every brand.
var installerConstants = []struct {
	key, value string
}{
	{"URLInfoAbout", "https://www.brandforge.dev"},
	{"URLUpdateInfo", "https://www.brandforge.dev/releases"},
	{"HelpLink", "https://support.brandforge.dev"},
	{"URLSystemRequirements", "https://www.brandforge.dev/requirements"},
	{"InstallerIcon", "app.ico"},
	{"HeaderImageWidth", "150"},
	{"HeaderImageHeight", "57"},
	{"FontDir", "fonts"},
}

// SynthesizeInstallerScript generates the installer-script definitions
// file for a brand. The file is wholly regenerated from the branding
// configuration; nothing from the upstream copy survives.
func SynthesizeInstallerScript(cfg types.BrandingConfig) string {
	var b strings.Builder
	b.WriteString("# NSIS branding defines. Generated for each brand; do not edit.\n\n")

	writeDefine(&b, "BrandShortName", cfg.BrandShortName)
	writeDefine(&b, "BrandFullName", cfg.BrandFullName)
	writeDefine(&b, "BrandGenericName", cfg.BrandingGenericName)
	writeDefine(&b, "CompanyName", cfg.BrandingVendor)
	for _, c := range installerConstants {
		writeDefine(&b, c.key, c.value)
	}
	return b.String()
}

// writeDefine emits one aligned !define line.
func writeDefine(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "!define %-21s \"%s\"\n", key, value)
}
