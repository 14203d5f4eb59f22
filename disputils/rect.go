package disputils

import (
	"golang.org/x/exp/slices"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

func IsValid(rect sdm.Rect) bool {
	return rect.Right > rect.Left && rect.Bottom > rect.Top
}

func IsCongruent(a sdm.Rect, b sdm.Rect) bool {
	return a.Left == b.Left && a.Top == b.Top && a.Right == b.Right && a.Bottom == b.Bottom
}

// Intersection returns the overlap of two rects, or the zero rect when they
// do not overlap.
func Intersection(a sdm.Rect, b sdm.Rect) sdm.Rect {
	if !IsValid(a) || !IsValid(b) {
		return sdm.Rect{}
	}

	out := sdm.Rect{
		Left:   max(a.Left, b.Left),
		Top:    max(a.Top, b.Top),
		Right:  min(a.Right, b.Right),
		Bottom: min(a.Bottom, b.Bottom),
	}
	if !IsValid(out) {
		return sdm.Rect{}
	}
	return out
}

// Union returns the smallest rect covering both inputs. An empty input
// contributes nothing.
func Union(a sdm.Rect, b sdm.Rect) sdm.Rect {
	if !IsValid(a) {
		return b
	}
	if !IsValid(b) {
		return a
	}

	return sdm.Rect{
		Left:   min(a.Left, b.Left),
		Top:    min(a.Top, b.Top),
		Right:  max(a.Right, b.Right),
		Bottom: max(a.Bottom, b.Bottom),
	}
}

// EqualRegions reports whether two regions hold congruent rects in the same
// order.
func EqualRegions(a []sdm.Rect, b []sdm.Rect) bool {
	return slices.EqualFunc(a, b, IsCongruent)
}
