package avatar

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// View selects which subset of layers is composed.
type View string

const (
	ViewPortrait View = "portrait"
	ViewFullBody View = "fullBody"
)

// Views lists every supported rendering mode.
var Views = []View{ViewPortrait, ViewFullBody}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	return v == ViewPortrait || v == ViewFullBody
}

// Configuration describes one avatar's appearance. It is a plain value:
// the pipeline never mutates it, and two configurations are equal iff
// every field is equal.
type Configuration struct {
	SkinTone        string `json:"skinTone"`
	HairColor       string `json:"hairColor"`
	EyeColor        string `json:"eyeColor"`
	TopColor        string `json:"topColor"`
	BottomColor     string `json:"bottomColor"`
	FacialHairColor string `json:"facialHairColor"`

	HeadShape string `json:"headShape"`
	Eyes      string `json:"eyes"`
	Eyebrows  string `json:"eyebrows"`
	Nose      string `json:"nose"`
	Mouth     string `json:"mouth"`
	HairFront string `json:"hairFront"`
	Body      string `json:"body"`
	Top       string `json:"top"`
	Bottom    string `json:"bottom"`
	Glasses   string `json:"glasses"`
	Ears      string `json:"ears"`
	Neck      string `json:"neck"`
	Headwear  string `json:"headwear"`
}

// CanonicalForm serializes the configuration deterministically. Struct
// fields marshal in declaration order, so the same configuration always
// produces the same bytes regardless of how it was built.
func CanonicalForm(cfg Configuration) string {
	b, err := json.Marshal(cfg)
	if err != nil {
		// Configuration is a flat struct of strings; Marshal cannot fail.
		panic(err)
	}
	return string(b)
}
