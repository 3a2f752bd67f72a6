package render

import "image/color"

// ColorPair holds the cytoplasm and nucleus colors of an agent.
type ColorPair struct {
	Cytoplasm string
	Nucleus   string
}

// Coloring maps an agent type id to its display colors.
type Coloring func(typeID int) ColorPair

// DefaultPair is used for types a scenario does not color explicitly.
var DefaultPair = ColorPair{Cytoplasm: "limegreen", Nucleus: "green"}

// Solid returns a pair with both parts in one color.
func Solid(name string) ColorPair { return ColorPair{Cytoplasm: name, Nucleus: name} }

var named = map[string]color.RGBA{
	"black":     {A: 255},
	"white":     {R: 255, G: 255, B: 255, A: 255},
	"grey":      {R: 128, G: 128, B: 128, A: 255},
	"gray":      {R: 128, G: 128, B: 128, A: 255},
	"red":       {R: 255, A: 255},
	"blue":      {B: 255, A: 255},
	"green":     {G: 128, A: 255},
	"limegreen": {R: 50, G: 205, B: 50, A: 255},
	"yellow":    {R: 255, G: 255, A: 255},
	"orange":    {R: 255, G: 165, A: 255},
}

// RGBA resolves a color name. Unknown names map to magenta so they stand
// out in output.
func RGBA(name string) color.RGBA {
	if c, ok := named[name]; ok {
		return c
	}
	return color.RGBA{R: 255, B: 255, A: 255}
}
