package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkinShadeMonotonicity(t *testing.T) {
	for name, base := range SkinTones {
		s := GenerateSkinShades(base)

		assert.Less(t, s.Shadow1.Luminance(), s.Base.Luminance(), "%s shadow1", name)
		assert.Less(t, s.Shadow2.Luminance(), s.Shadow1.Luminance(), "%s shadow2", name)
		assert.Less(t, s.Shadow3.Luminance(), s.Shadow2.Luminance(), "%s shadow3", name)

		assert.Greater(t, s.Highlight1.Luminance(), s.Base.Luminance(), "%s highlight1", name)
		assert.Greater(t, s.Highlight2.Luminance(), s.Highlight1.Luminance(), "%s highlight2", name)
	}
}

func TestSkinShadowWarmth(t *testing.T) {
	base := SkinTones["Medium"]
	s := GenerateSkinShades(base)

	// Deeper shadows shift warmer: red holds up better than blue.
	plainDark := Darken(base, 26)
	assert.Greater(t, int(s.Shadow3.R)-int(s.Shadow3.B), int(plainDark.R)-int(plainDark.B))
}

func TestSkinAOGraysOut(t *testing.T) {
	base := SkinTones["Fair"]
	s := GenerateSkinShades(base)

	_, sat, _ := s.AO.HSL()
	_, baseSat, _ := base.HSL()
	assert.Less(t, sat, baseSat)
	assert.Less(t, s.AO.Luminance(), s.Shadow3.Luminance())
}

func TestHairShadeMonotonicity(t *testing.T) {
	for name, base := range HairColors {
		s := GenerateHairShades(base)
		assert.Less(t, s.Shadow1.Luminance(), s.Base.Luminance(), "%s shadow1", name)
		assert.Less(t, s.Shadow2.Luminance(), s.Shadow1.Luminance(), "%s shadow2", name)
		assert.Greater(t, s.Highlight.Luminance(), s.Base.Luminance(), "%s highlight", name)
	}
}

func TestLightHairGetsSmallerHighlightLift(t *testing.T) {
	dark := GenerateHairShades(HairColors["Black"])
	light := GenerateHairShades(HairColors["Platinum"])

	darkLift := dark.Highlight.Luminance() - dark.Base.Luminance()
	lightLift := light.Highlight.Luminance() - light.Base.Luminance()
	assert.Less(t, lightLift, darkLift)
}

func TestEyeShades(t *testing.T) {
	s := GenerateEyeShades(EyeColors["Blue"])

	assert.Less(t, s.Dark.Luminance(), s.Base.Luminance())
	assert.Equal(t, RGB{255, 255, 255}, s.White)
	assert.Equal(t, RGB{}, s.Pupil)
}

func TestClothShades(t *testing.T) {
	base := ClothingColors["Teal"]
	s := GenerateClothShades(base)

	assert.Less(t, s.Shadow.Luminance(), s.Base.Luminance())
	assert.Greater(t, s.Accent.Luminance(), s.Base.Luminance())
	assert.Less(t, s.Deep.Luminance(), s.Shadow.Luminance())
}

func TestLipBaseClassifiesSkinDepth(t *testing.T) {
	light := SkinTones["Light"]
	lipLight := LipBase(light)
	assert.Equal(t, int(light.G)-14, int(lipLight.G))
	assert.Equal(t, int(light.B)-8, int(lipLight.B))

	deep := SkinTones["Deep"]
	lipDeep := LipBase(deep)
	assert.Equal(t, int(deep.R)+10, int(lipDeep.R))
	assert.Equal(t, int(deep.G)-6, int(lipDeep.G))
}

func TestShadeGenerationIsDeterministic(t *testing.T) {
	base := SkinTones["Tan"]
	assert.Equal(t, GenerateSkinShades(base), GenerateSkinShades(base))
	assert.Equal(t, GenerateHairShades(base), GenerateHairShades(base))
}
