package registry

// Layer names the composer understands. Coordinates in the placeholder
// fragments assume a 200-wide canvas: the head centered at (100,100) for
// portraits, the body below it for full-body renders.
const (
	LayerHeadShape = "headShape"
	LayerEyes      = "eyes"
	LayerEyebrows  = "eyebrows"
	LayerNose      = "nose"
	LayerMouth     = "mouth"
	LayerHairFront = "hairFront"
	LayerBody      = "body"
	LayerTop       = "top"
	LayerBottom    = "bottom"
	LayerGlasses   = "glasses"
	LayerEars      = "ears"
	LayerNeck      = "neck"
	LayerHeadwear  = "headwear"
)

// DefaultPartID is the placeholder part registered for every layer.
const DefaultPartID = "default"

// placeholders are intentionally crude geometry; they exist so every layer
// renders before real art assets are registered.
var placeholders = map[string]string{
	LayerHeadShape: `<ellipse cx="100" cy="100" rx="58" ry="68" fill="{{skin}}"/><ellipse cx="100" cy="126" rx="40" ry="30" fill="{{skinShadow1}}" opacity="0.25"/>`,
	LayerEars:      `<ellipse cx="44" cy="102" rx="10" ry="16" fill="{{skin}}"/><ellipse cx="156" cy="102" rx="10" ry="16" fill="{{skin}}"/><ellipse cx="44" cy="104" rx="5" ry="8" fill="{{skinAO}}"/><ellipse cx="156" cy="104" rx="5" ry="8" fill="{{skinAO}}"/>`,
	LayerNeck:      `<rect x="86" y="150" width="28" height="34" fill="{{skin}}"/><rect x="86" y="150" width="28" height="10" fill="{{skinShadow2}}"/>`,
	LayerEyes:      `<circle cx="76" cy="92" r="10" fill="{{eyeWhite}}"/><circle cx="124" cy="92" r="10" fill="{{eyeWhite}}"/><circle cx="76" cy="92" r="6" fill="{{eye}}" stroke="{{eyeDark}}" stroke-width="1.5"/><circle cx="124" cy="92" r="6" fill="{{eye}}" stroke="{{eyeDark}}" stroke-width="1.5"/><circle cx="76" cy="92" r="2.5" fill="{{eyePupil}}"/><circle cx="124" cy="92" r="2.5" fill="{{eyePupil}}"/>`,
	LayerEyebrows:  `<rect x="64" y="74" width="24" height="5" rx="2.5" fill="{{eyebrow}}"/><rect x="112" y="74" width="24" height="5" rx="2.5" fill="{{eyebrow}}"/>`,
	LayerNose:      `<ellipse cx="100" cy="110" rx="7" ry="10" fill="{{skinShadow1}}"/><ellipse cx="100" cy="116" rx="4" ry="3" fill="{{skinAO}}"/>`,
	LayerMouth:     `<ellipse cx="100" cy="134" rx="14" ry="6" fill="{{lip}}"/><ellipse cx="100" cy="136" rx="14" ry="3" fill="{{lipShadow}}"/>`,
	LayerHairFront: `<path d="M 42 96 Q 44 34 100 30 Q 156 34 158 96 Q 150 54 100 50 Q 50 54 42 96 Z" fill="{{hair}}"/><path d="M 58 58 Q 80 44 100 44 Q 120 44 142 58 Q 118 52 100 52 Q 82 52 58 58 Z" fill="{{hairHighlight}}"/>`,
	LayerGlasses:   `<circle cx="76" cy="92" r="14" fill="none" stroke="{{accessory}}" stroke-width="2.5"/><circle cx="124" cy="92" r="14" fill="none" stroke="{{accessory}}" stroke-width="2.5"/><line x1="90" y1="92" x2="110" y2="92" stroke="{{accessory}}" stroke-width="2.5"/>`,
	LayerHeadwear:  `<path d="M 40 62 Q 100 10 160 62 L 160 52 Q 100 0 40 52 Z" fill="{{headwear}}"/><rect x="40" y="58" width="120" height="8" rx="4" fill="{{headwearShadow}}"/>`,
	LayerBody:      `<rect x="70" y="180" width="60" height="80" rx="18" fill="{{skin}}"/>`,
	LayerTop:       `<rect x="62" y="184" width="76" height="86" rx="14" fill="{{top}}"/><rect x="62" y="184" width="76" height="16" rx="8" fill="{{topShadow}}"/><rect x="70" y="240" width="60" height="8" fill="{{topDeep}}"/>`,
	LayerBottom:    `<rect x="70" y="268" width="26" height="96" fill="{{bottom}}"/><rect x="104" y="268" width="26" height="96" fill="{{bottom}}"/><rect x="70" y="268" width="60" height="12" fill="{{bottomShadow}}"/>`,
}

// SeedDefaults registers the placeholder part for every layer. Safe to call
// more than once; re-seeding simply overwrites the same entries.
func (r *Registry) SeedDefaults() {
	for layer, tpl := range placeholders {
		r.Register(layer, DefaultPartID, tpl)
	}
}

// SeededLayers returns the layer names covered by placeholder parts.
func SeededLayers() []string {
	names := make([]string, 0, len(placeholders))
	for name := range placeholders {
		names = append(names, name)
	}
	return names
}
