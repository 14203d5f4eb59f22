package sdm

import "fmt"

// Rect describes an axis-aligned rectangle in layer or display space. Sub-pixel
// coordinates are legal in source space, which is why the fields are floats.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

func (r Rect) Width() float32 {
	return r.Right - r.Left
}

func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

func (r Rect) String() string {
	return fmt.Sprintf("(l %.1f, t %.1f, r %.1f, b %.1f)", r.Left, r.Top, r.Right, r.Bottom)
}
