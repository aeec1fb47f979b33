package slc

import (
	"fmt"
	"math"
)

// CenterRule decides the center of a merge node from its two children.
type CenterRule string

const (
	// CenterMidpoint places the node halfway between the children's centers,
	// regardless of how many leaves each child holds.
	CenterMidpoint CenterRule = "midpoint"

	// CenterWeighted places the node at the mean of all leaves under it.
	CenterWeighted CenterRule = "weighted"
)

// combine returns the center of the node joining left and right.
// Both rules keep the result within [left.Center, right.Center] and stay
// finite for any finite children.
func (r CenterRule) combine(left, right *Node) float64 {
	l, h := left.Center, right.Center
	sameSign := (l < 0) == (h < 0)

	var c float64
	switch r {
	case CenterWeighted:
		w := float64(right.Size) / float64(left.Size+right.Size)
		if sameSign {
			c = l + (h-l)*w
		} else {
			c = l*(1-w) + h*w
		}
	default:
		// h-l overflows only for opposite signs, l+h only for equal signs.
		if sameSign {
			c = l + (h-l)/2
		} else {
			c = (l + h) / 2
		}
	}
	return math.Max(l, math.Min(c, h))
}

// ParseCenterRule converts a name such as "midpoint" or "weighted" to a rule.
func ParseCenterRule(s string) (CenterRule, error) {
	switch r := CenterRule(s); r {
	case CenterMidpoint, CenterWeighted:
		return r, nil
	default:
		return "", fmt.Errorf("slc: unknown center rule %q", s)
	}
}
