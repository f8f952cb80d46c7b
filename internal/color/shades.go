package color

// Shade generation: each material gets a self-consistent family of shades
// derived from one base color. All functions are pure; callers may invoke
// them concurrently.

// SkinShades is the full shade family for skin rendering.
type SkinShades struct {
	Base       RGB
	Shadow1    RGB
	Shadow2    RGB
	Shadow3    RGB
	Highlight1 RGB
	Highlight2 RGB
	Blush      RGB
	AO         RGB
}

// HairShades covers mass shading, strand separation and one highlight.
type HairShades struct {
	Base      RGB
	Shadow1   RGB
	Shadow2   RGB
	Highlight RGB
}

// EyeShades covers the iris, limbal ring, sclera and pupil.
type EyeShades struct {
	Base  RGB
	Dark  RGB
	White RGB
	Pupil RGB
}

// ClothShades is the generic 4-shade family used for clothing and lips.
type ClothShades struct {
	Base   RGB
	Shadow RGB
	Accent RGB
	Deep   RGB
}

// Hair highlights shrink once the base is already light; threshold is the
// average channel value above which hair counts as light.
const lightHairThreshold = 180

// GenerateSkinShades derives the skin family. Shadows get progressively
// warmer with depth; highlights cool off slightly; AO grays out hard.
func GenerateSkinShades(base RGB) SkinShades {
	return SkinShades{
		Base:       base,
		Shadow1:    Warm(Darken(base, 8), 4),
		Shadow2:    Warm(Darken(base, 16), 7),
		Shadow3:    Warm(Darken(base, 26), 10),
		Highlight1: Cool(Lighten(base, 10), 3),
		Highlight2: Cool(Lighten(base, 18), 5),
		Blush:      Saturate(Warm(base, 25), 20),
		AO:         Desaturate(Darken(base, 45), 30),
	}
}

// GenerateHairShades derives the hair family.
func GenerateHairShades(base RGB) HairShades {
	avg := (int(base.R) + int(base.G) + int(base.B)) / 3
	lift := 25.0
	if avg > lightHairThreshold {
		lift = 12.0
	}
	return HairShades{
		Base:      base,
		Shadow1:   Darken(base, 12),
		Shadow2:   Darken(base, 24),
		Highlight: Desaturate(Lighten(base, lift), 10),
	}
}

// GenerateEyeShades derives the eye family. Sclera and pupil are fixed.
func GenerateEyeShades(base RGB) EyeShades {
	return EyeShades{
		Base:  base,
		Dark:  Saturate(Darken(base, 35), 15),
		White: RGB{R: 255, G: 255, B: 255},
		Pupil: RGB{},
	}
}

// GenerateClothShades derives the clothing family.
func GenerateClothShades(base RGB) ClothShades {
	return ClothShades{
		Base:   base,
		Shadow: Darken(base, 16),
		Accent: Lighten(base, 10),
		Deep:   Darken(base, 26),
	}
}

// LipBase derives a lip color from the skin tone. Darker skin gets a small
// warm shift, lighter skin a stronger pink shift.
func LipBase(skin RGB) RGB {
	_, _, l := skin.HSL()
	if l < 40 {
		return AddChannels(skin, 10, -6, -2)
	}
	return AddChannels(skin, 24, -14, -8)
}

// GenerateLipShades derives the lip family from the skin tone.
func GenerateLipShades(skin RGB) ClothShades {
	return GenerateClothShades(LipBase(skin))
}
