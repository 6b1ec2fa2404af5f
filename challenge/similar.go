package challenge

// IsSimilar reports whether a student would perceive a and b as the same
// puzzle:
//
//   - two proportional build challenges with equal ratio denominators that
//     both do, or both do not, ask for a perimeter;
//   - two non-proportional build challenges with equal target areas;
//   - two find-area challenges whose backgrounds have equal unit areas.
//
// Challenges of different kinds are never similar, and neither is a
// proportional build paired with a non-proportional one.
func IsSimilar(a, b Challenge) bool {
	switch {
	case a.BuildSpec != nil && b.BuildSpec != nil:
		pa, pb := a.BuildSpec.Proportions, b.BuildSpec.Proportions
		switch {
		case pa != nil && pb != nil:
			return pa.Color1Proportion.Denominator == pb.Color1Proportion.Denominator &&
				a.BuildSpec.RequiresPerimeter() == b.BuildSpec.RequiresPerimeter()
		case pa == nil && pb == nil:
			return a.BuildSpec.Area == b.BuildSpec.Area
		}
	case a.BackgroundShape != nil && b.BackgroundShape != nil:
		return a.BackgroundShape.UnitArea() == b.BackgroundShape.UnitArea()
	}
	return false
}
