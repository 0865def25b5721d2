package cssom

import (
	"fmt"

	"golang.org/x/net/html"
)

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C]:
// A counts IDs, B counts classes, attributes and pseudo-classes,
// C counts type selectors and pseudo-elements.
type Specificity struct {
	A, B, C int
}

// Compare compares two specificities lexicographically. It returns -1 if
// s < other, +1 if s > other and 0 if both are equal.
func (s Specificity) Compare(other Specificity) int {
	for _, d := range [3]int{s.A - other.A, s.B - other.B, s.C - other.C} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}

// Less returns true if s < other (strictly), false otherwise.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.A, s.B, s.C)
}

// MatchWithSpecificity returns true if one of the selectors of a selector
// list matches element n. In this case, the greatest specificity among
// the matching selectors is returned.
func MatchWithSpecificity(selectors []Selector, n *html.Node) (bool, Specificity) {
	var (
		maxSpec Specificity
		found   bool
	)
	for _, sel := range selectors {
		if sel.Match(n) {
			if !found || maxSpec.Less(sel.Specificity()) {
				maxSpec = sel.Specificity()
			}
			found = true
		}
	}
	return found, maxSpec
}

// PrecedenceKey orders declarations in the cascade. Ordering is by
// importance first (important declarations form a strictly higher tier),
// then by origin, specificity, and finally source order (stylesheet
// position, rule order, declaration position).
type PrecedenceKey struct {
	Important   bool
	Origin      Origin
	Specificity Specificity
	Sheet       int
	Rule        int
	Decl        int
}

// Less is true if a declaration with key k loses against one with key other.
func (k PrecedenceKey) Less(other PrecedenceKey) bool {
	if k.Important != other.Important {
		return !k.Important
	}
	if k.Origin != other.Origin {
		return k.Origin < other.Origin
	}
	if c := k.Specificity.Compare(other.Specificity); c != 0 {
		return c < 0
	}
	if k.Sheet != other.Sheet {
		return k.Sheet < other.Sheet
	}
	if k.Rule != other.Rule {
		return k.Rule < other.Rule
	}
	return k.Decl < other.Decl
}
