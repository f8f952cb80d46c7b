package colorize

import (
	"strings"

	"github.com/Stephen-Psaradellis/avatarforge/internal/avatar"
)

// ColorizeSVG replaces every {{token}} occurrence in the template with its
// palette value. Matching covers the full delimited span, so no token can
// corrupt another by prefix. Tokens the palette does not know stay in the
// output verbatim; the composer always supplies a complete palette, so a
// leftover placeholder points at a typo in the template.
func ColorizeSVG(svgTemplate string, p Palette) string {
	tokens := TokenMap(p)
	pairs := make([]string, 0, len(tokens)*2)
	for name, hex := range tokens {
		pairs = append(pairs, "{{"+name+"}}", hex)
	}
	return strings.NewReplacer(pairs...).Replace(svgTemplate)
}

// ColorizeSVGFromConfig generates the palette for cfg and colorizes the
// template with it in one step.
func ColorizeSVGFromConfig(svgTemplate string, cfg avatar.Configuration) string {
	return ColorizeSVG(svgTemplate, GeneratePalette(cfg))
}
