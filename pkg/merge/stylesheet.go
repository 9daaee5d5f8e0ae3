package merge

import (
	"fmt"
	"strings"
)

// Legacy hard-coded background-color literals still present in upstream
// stylesheets. Both spellings of the same color are replaced by the theme
// custom property.
const (
	legacyHexColor  = "#130829"
	legacyHSLAColor = "hsla(263, 68%, 10%, 1)"

	themeVar = "--theme-bg"
)

// PatchStylesheet replaces every legacy background-color literal with a
// reference to the theme custom property and appends a :root rule binding
// that property to the brand's background color. The :root binding is
// always the final line of the output.
func PatchStylesheet(text, backgroundColor string) string {
	patched := strings.ReplaceAll(text, legacyHexColor, fmt.Sprintf("var(%s)", themeVar))
	patched = strings.ReplaceAll(patched, legacyHSLAColor, fmt.Sprintf("var(%s)", themeVar))

	if patched != "" && !strings.HasSuffix(patched, "\n") {
		patched += "\n"
	}
	return patched + fmt.Sprintf(":root { %s: %s }\n", themeVar, backgroundColor)
}
