// Package colorize turns avatar configurations into concrete color
// palettes and substitutes them into SVG part templates.
package colorize

import (
	"github.com/Stephen-Psaradellis/avatarforge/internal/avatar"
	"github.com/Stephen-Psaradellis/avatarforge/internal/color"
)

// Palette is the fully expanded color set for one avatar: every value a
// part template can reference through a {{token}} placeholder. It is
// derived on demand from a configuration and never persisted.
type Palette struct {
	Skin           color.RGB
	SkinShadow1    color.RGB
	SkinShadow2    color.RGB
	SkinShadow3    color.RGB
	SkinHighlight1 color.RGB
	SkinHighlight2 color.RGB
	SkinBlush      color.RGB
	SkinAO         color.RGB

	Hair          color.RGB
	HairShadow1   color.RGB
	HairShadow2   color.RGB
	HairHighlight color.RGB

	FacialHair       color.RGB
	FacialHairShadow color.RGB

	Eye      color.RGB
	EyeDark  color.RGB
	EyeWhite color.RGB
	EyePupil color.RGB

	Eyebrow color.RGB

	Lip       color.RGB
	LipShadow color.RGB
	LipAccent color.RGB
	LipDeep   color.RGB

	Top       color.RGB
	TopShadow color.RGB
	TopAccent color.RGB
	TopDeep   color.RGB

	Bottom       color.RGB
	BottomShadow color.RGB
	BottomAccent color.RGB
	BottomDeep   color.RGB

	Headwear       color.RGB
	HeadwearShadow color.RGB

	Accessory color.RGB
}

// accessoryBase is the frame color for glasses and similar props.
var accessoryBase = color.MustHex("#2D2D2D")

// GeneratePalette expands a configuration into the full palette. Eyebrows
// derive from hair, lips from skin, and headwear defaults to matching the
// top clothing color. Pure function; results are deterministic.
func GeneratePalette(cfg avatar.Configuration) Palette {
	skin := color.GenerateSkinShades(color.SkinTone(cfg.SkinTone))
	hair := color.GenerateHairShades(color.HairColor(cfg.HairColor))
	facial := color.GenerateHairShades(color.HairColor(cfg.FacialHairColor))
	eyes := color.GenerateEyeShades(color.EyeColor(cfg.EyeColor))
	lips := color.GenerateLipShades(skin.Base)
	top := color.GenerateClothShades(color.ClothingColor(cfg.TopColor))
	bottom := color.GenerateClothShades(color.ClothingColor(cfg.BottomColor))

	return Palette{
		Skin:           skin.Base,
		SkinShadow1:    skin.Shadow1,
		SkinShadow2:    skin.Shadow2,
		SkinShadow3:    skin.Shadow3,
		SkinHighlight1: skin.Highlight1,
		SkinHighlight2: skin.Highlight2,
		SkinBlush:      skin.Blush,
		SkinAO:         skin.AO,

		Hair:          hair.Base,
		HairShadow1:   hair.Shadow1,
		HairShadow2:   hair.Shadow2,
		HairHighlight: hair.Highlight,

		FacialHair:       facial.Base,
		FacialHairShadow: facial.Shadow1,

		Eye:      eyes.Base,
		EyeDark:  eyes.Dark,
		EyeWhite: eyes.White,
		EyePupil: eyes.Pupil,

		Eyebrow: color.Darken(hair.Base, 10),

		Lip:       lips.Base,
		LipShadow: lips.Shadow,
		LipAccent: lips.Accent,
		LipDeep:   lips.Deep,

		Top:       top.Base,
		TopShadow: top.Shadow,
		TopAccent: top.Accent,
		TopDeep:   top.Deep,

		Bottom:       bottom.Base,
		BottomShadow: bottom.Shadow,
		BottomAccent: bottom.Accent,
		BottomDeep:   bottom.Deep,

		Headwear:       top.Base,
		HeadwearShadow: top.Shadow,

		Accessory: accessoryBase,
	}
}

// TokenMap maps every supported placeholder name to its hex value.
func TokenMap(p Palette) map[string]string {
	return map[string]string{
		"skin":           p.Skin.Hex(),
		"skinShadow1":    p.SkinShadow1.Hex(),
		"skinShadow2":    p.SkinShadow2.Hex(),
		"skinShadow3":    p.SkinShadow3.Hex(),
		"skinHighlight1": p.SkinHighlight1.Hex(),
		"skinHighlight2": p.SkinHighlight2.Hex(),
		"skinBlush":      p.SkinBlush.Hex(),
		"skinAO":         p.SkinAO.Hex(),

		"hair":          p.Hair.Hex(),
		"hairShadow1":   p.HairShadow1.Hex(),
		"hairShadow2":   p.HairShadow2.Hex(),
		"hairHighlight": p.HairHighlight.Hex(),

		"facialHair":       p.FacialHair.Hex(),
		"facialHairShadow": p.FacialHairShadow.Hex(),

		"eye":      p.Eye.Hex(),
		"eyeDark":  p.EyeDark.Hex(),
		"eyeWhite": p.EyeWhite.Hex(),
		"eyePupil": p.EyePupil.Hex(),

		"eyebrow": p.Eyebrow.Hex(),

		"lip":       p.Lip.Hex(),
		"lipShadow": p.LipShadow.Hex(),
		"lipAccent": p.LipAccent.Hex(),
		"lipDeep":   p.LipDeep.Hex(),

		"top":       p.Top.Hex(),
		"topShadow": p.TopShadow.Hex(),
		"topAccent": p.TopAccent.Hex(),
		"topDeep":   p.TopDeep.Hex(),

		"bottom":       p.Bottom.Hex(),
		"bottomShadow": p.BottomShadow.Hex(),
		"bottomAccent": p.BottomAccent.Hex(),
		"bottomDeep":   p.BottomDeep.Hex(),

		"headwear":       p.Headwear.Hex(),
		"headwearShadow": p.HeadwearShadow.Hex(),

		"accessory": p.Accessory.Hex(),
	}
}
