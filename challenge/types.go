package challenge

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/areabuilder/perimeter"
	"github.com/katalvlaran/areabuilder/shapekit"
)

// Kind discriminates the two challenge variants.
type Kind int

const (
	KindInvalid Kind = iota
	KindBuild
	KindFindArea
)

func (k Kind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindFindArea:
		return "findArea"
	}
	return "invalid"
}

// ToolSpec lists the optional controls offered to the player.
type ToolSpec struct {
	GridControl                bool `json:"gridControl"`
	DimensionsControl          bool `json:"dimensionsControl"`
	DecompositionToggleControl bool `json:"decompositionToggleControl"`
}

// Proportions asks for a two-colour build where Color1 covers
// Color1Proportion of the area and Color2 the rest.
type Proportions struct {
	Color1           color.RGBA `json:"color1"`
	Color2           color.RGBA `json:"color2"`
	Color1Proportion Fraction   `json:"color1Proportion"`
}

// BuildSpec is the numeric target of a build challenge. Perimeter == 0 means
// no perimeter requirement.
type BuildSpec struct {
	Area        int          `json:"area"`
	Perimeter   int          `json:"perimeter,omitempty"`
	Proportions *Proportions `json:"proportions,omitempty"`
}

// RequiresPerimeter reports whether a perimeter target is part of the spec.
func (b BuildSpec) RequiresPerimeter() bool { return b.Perimeter > 0 }

// Challenge is one puzzle description.
type Challenge struct {
	BuildSpec       *BuildSpec       `json:"buildSpec,omitempty"`
	BackgroundShape *perimeter.Shape `json:"backgroundShape,omitempty"`
	UserShapes      []shapekit.Item  `json:"userShapes,omitempty"`
	ExampleSolution SolutionSpec     `json:"exampleSolution,omitempty"`
	ToolSpec        ToolSpec         `json:"toolSpec"`
}

// Kind reports the variant, or KindInvalid if the tag invariant is broken.
func (c Challenge) Kind() Kind {
	switch {
	case c.BuildSpec != nil && c.BackgroundShape == nil:
		return KindBuild
	case c.BuildSpec == nil && c.BackgroundShape != nil:
		return KindFindArea
	}
	return KindInvalid
}

// Validate checks the tagged-union invariant.
func (c Challenge) Validate() error {
	if c.Kind() == KindInvalid {
		return fmt.Errorf("Validate: %w", ErrAmbiguousKind)
	}
	return nil
}

// NewBuildChallenge assembles a build challenge with every control enabled.
func NewBuildChallenge(spec BuildSpec, kit []shapekit.Item, solution SolutionSpec) Challenge {
	return Challenge{
		BuildSpec:       &spec,
		UserShapes:      kit,
		ExampleSolution: solution,
		ToolSpec: ToolSpec{
			GridControl:                true,
			DimensionsControl:          true,
			DecompositionToggleControl: true,
		},
	}
}

// NewFindAreaChallenge assembles a find-the-area challenge over background.
func NewFindAreaChallenge(background perimeter.Shape, kit []shapekit.Item) Challenge {
	return Challenge{
		BackgroundShape: &background,
		UserShapes:      kit,
		ToolSpec: ToolSpec{
			GridControl:       true,
			DimensionsControl: true,
		},
	}
}
