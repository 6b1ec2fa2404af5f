package palette

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Pair is a primary colour with its fixed darker companion.
type Pair struct {
	Color1 color.RGBA `json:"color1"`
	Color2 color.RGBA `json:"color2"`
}

// KitColor fills the pieces of the standard rectangle and triangle kits.
var KitColor = colornames.Yellowgreen

// FindAreaColors fill "find the area" backgrounds.
var FindAreaColors = []color.RGBA{
	colornames.Lightskyblue,
	colornames.Hotpink,
	colornames.Mediumpurple,
	colornames.Orange,
	colornames.Seagreen,
}

// BuildColors fill single-colour build example solutions.
var BuildColors = []color.RGBA{
	colornames.Yellowgreen,
	colornames.Mediumpurple,
	colornames.Orange,
	colornames.Royalblue,
}

// ColorPairs colour two-tone (proportional) build challenges.
var ColorPairs = []Pair{
	{Color1: colornames.Yellowgreen, Color2: colornames.Darkgreen},
	{Color1: colornames.Mediumpurple, Color2: colornames.Indigo},
	{Color1: colornames.Orange, Color2: colornames.Chocolate},
	{Color1: colornames.Lightskyblue, Color2: colornames.Darkblue},
}

// NewFindAreaChooser cycles FindAreaColors.
func NewFindAreaChooser(rng Shuffler) (*Chooser[color.RGBA], error) {
	return NewChooser(rng, FindAreaColors...)
}

// NewBuildChooser cycles BuildColors.
func NewBuildChooser(rng Shuffler) (*Chooser[color.RGBA], error) {
	return NewChooser(rng, BuildColors...)
}

// NewPairChooser cycles ColorPairs.
func NewPairChooser(rng Shuffler) (*Chooser[Pair], error) {
	return NewChooser(rng, ColorPairs...)
}
