// Package compose assembles layered avatar parts into one SVG document,
// and pairs that with the two-tier cache as a render service.
package compose

import (
	"fmt"
	"strings"

	"github.com/Stephen-Psaradellis/avatarforge/internal/avatar"
	"github.com/Stephen-Psaradellis/avatarforge/internal/colorize"
	"github.com/Stephen-Psaradellis/avatarforge/internal/registry"
)

// Layer orders, back to front. The portrait view composes the head-centric
// subset only; full body stacks clothing and body behind the head group.
var (
	portraitLayers = []string{
		registry.LayerNeck,
		registry.LayerEars,
		registry.LayerHeadShape,
		registry.LayerEyes,
		registry.LayerEyebrows,
		registry.LayerNose,
		registry.LayerMouth,
		registry.LayerHairFront,
		registry.LayerGlasses,
		registry.LayerHeadwear,
	}
	fullBodyLayers = []string{
		registry.LayerBody,
		registry.LayerBottom,
		registry.LayerTop,
		registry.LayerNeck,
		registry.LayerEars,
		registry.LayerHeadShape,
		registry.LayerEyes,
		registry.LayerEyebrows,
		registry.LayerNose,
		registry.LayerMouth,
		registry.LayerHairFront,
		registry.LayerGlasses,
		registry.LayerHeadwear,
	}
)

// Composer renders complete avatars from registry parts and a palette.
type Composer struct {
	reg *registry.Registry
}

// New returns a Composer over the given registry.
func New(reg *registry.Registry) *Composer {
	return &Composer{reg: reg}
}

// Layers returns the layer order for a view.
func Layers(view avatar.View) []string {
	if view == avatar.ViewFullBody {
		return fullBodyLayers
	}
	return portraitLayers
}

// Render composes the configured part of every layer for the view,
// colorized with the configuration's palette, into one SVG document.
// A layer whose configured part is unknown falls back to the placeholder;
// a layer with no parts at all is skipped.
func (c *Composer) Render(cfg avatar.Configuration, view avatar.View) string {
	palette := colorize.GeneratePalette(cfg)
	height := 200
	if view == avatar.ViewFullBody {
		height = 400
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 %d">`, height)
	for _, layer := range Layers(view) {
		tpl, ok := c.reg.PartSVG(layer, partID(cfg, layer))
		if !ok {
			tpl, ok = c.reg.PartSVG(layer, registry.DefaultPartID)
		}
		if !ok {
			continue
		}
		sb.WriteString(colorize.ColorizeSVG(tpl, palette))
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

// partID maps a layer name to its configuration field; empty selects the
// placeholder.
func partID(cfg avatar.Configuration, layer string) string {
	var id string
	switch layer {
	case registry.LayerHeadShape:
		id = cfg.HeadShape
	case registry.LayerEyes:
		id = cfg.Eyes
	case registry.LayerEyebrows:
		id = cfg.Eyebrows
	case registry.LayerNose:
		id = cfg.Nose
	case registry.LayerMouth:
		id = cfg.Mouth
	case registry.LayerHairFront:
		id = cfg.HairFront
	case registry.LayerBody:
		id = cfg.Body
	case registry.LayerTop:
		id = cfg.Top
	case registry.LayerBottom:
		id = cfg.Bottom
	case registry.LayerGlasses:
		id = cfg.Glasses
	case registry.LayerEars:
		id = cfg.Ears
	case registry.LayerNeck:
		id = cfg.Neck
	case registry.LayerHeadwear:
		id = cfg.Headwear
	}
	if id == "" {
		id = registry.DefaultPartID
	}
	return id
}
