package color

// Named base-color tables the avatar builder exposes. Lookups fall back to
// the first entry so an unknown name still renders something sensible.

// SkinTones maps builder names to base skin colors.
var SkinTones = map[string]RGB{
	"Light":  MustHex("#FFDBB4"),
	"Fair":   MustHex("#F1C27D"),
	"Medium": MustHex("#E0AC69"),
	"Tan":    MustHex("#C68642"),
	"Brown":  MustHex("#8D5524"),
	"Deep":   MustHex("#5C3A1E"),
}

// HairColors maps builder names to base hair colors.
var HairColors = map[string]RGB{
	"Black":     MustHex("#241C11"),
	"DarkBrown": MustHex("#4A312C"),
	"Brown":     MustHex("#6F4E37"),
	"Auburn":    MustHex("#922724"),
	"Red":       MustHex("#B55239"),
	"Blonde":    MustHex("#E6C590"),
	"Platinum":  MustHex("#F2E7D5"),
	"Gray":      MustHex("#AAA9AD"),
	"White":     MustHex("#EAEAEA"),
}

// EyeColors maps builder names to iris colors.
var EyeColors = map[string]RGB{
	"Brown": MustHex("#634E34"),
	"Hazel": MustHex("#AE7748"),
	"Amber": MustHex("#B5651D"),
	"Green": MustHex("#3D6B35"),
	"Blue":  MustHex("#2E536F"),
	"Gray":  MustHex("#7D7C7A"),
}

// ClothingColors maps builder names to clothing base colors, shared by
// tops, bottoms and headwear.
var ClothingColors = map[string]RGB{
	"Red":    MustHex("#C0392B"),
	"Orange": MustHex("#D35400"),
	"Yellow": MustHex("#F1C40F"),
	"Green":  MustHex("#27AE60"),
	"Teal":   MustHex("#16A085"),
	"Blue":   MustHex("#2980B9"),
	"Navy":   MustHex("#2C3E50"),
	"Purple": MustHex("#8E44AD"),
	"Pink":   MustHex("#E66FA4"),
	"White":  MustHex("#F5F5F5"),
	"Gray":   MustHex("#95A5A6"),
	"Black":  MustHex("#2D2D2D"),
}

// Default names used when a configuration field is empty or unknown.
const (
	DefaultSkinTone = "Light"
	DefaultHair     = "Brown"
	DefaultEye      = "Brown"
	DefaultClothing = "Blue"
)

// SkinTone resolves a named skin tone, falling back to DefaultSkinTone.
func SkinTone(name string) RGB { return lookup(SkinTones, name, DefaultSkinTone) }

// HairColor resolves a named hair color, falling back to DefaultHair.
func HairColor(name string) RGB { return lookup(HairColors, name, DefaultHair) }

// EyeColor resolves a named eye color, falling back to DefaultEye.
func EyeColor(name string) RGB { return lookup(EyeColors, name, DefaultEye) }

// ClothingColor resolves a named clothing color, falling back to DefaultClothing.
func ClothingColor(name string) RGB { return lookup(ClothingColors, name, DefaultClothing) }

func lookup(table map[string]RGB, name, fallback string) RGB {
	if c, ok := table[name]; ok {
		return c
	}
	return table[fallback]
}
