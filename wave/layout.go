package wave

import "image"

// Layout places Count dots of diameter Dot in a row, Spacing pixels apart,
// with Padding pixels of clearance on every side.
type Layout struct {
	Dot     int // dot diameter, px
	Spacing int // gap between neighbouring dots, px
	Padding int // border around the row, px
	Count   int
}

func (l Layout) Width() int {
	return l.Count*l.Dot + (l.Count-1)*l.Spacing + 2*l.Padding
}

func (l Layout) Height() int {
	return l.Dot + 2*l.Padding
}

func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Width(), l.Height())
}

// DotRect returns the bounding square of dot i.
func (l Layout) DotRect(i int) image.Rectangle {
	x := l.Padding + i*(l.Dot+l.Spacing)
	y := l.Padding
	return image.Rect(x, y, x+l.Dot, y+l.Dot)
}
