package walkthrough

import "io"

// Rectangle is an aggregate of two named dimensions, in pixels.
type Rectangle struct {
	Width  int
	Height int
}

// Area returns the exact product of the two dimensions.
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// CanHold reports whether other fits strictly inside r. Matching either
// dimension exactly does not count as holding.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Square is a constructor function: it needs no existing Rectangle and
// returns one with both dimensions set to size.
func Square(size int) Rectangle {
	return Rectangle{Width: size, Height: size}
}

// Methods demonstrates attaching behavior to a struct type: value
// receiver methods and a constructor function.
func Methods(w io.Writer) error {
	rect1 := Rectangle{Width: 30, Height: 50}
	rect2 := Rectangle{Width: 50, Height: 100}

	// 1. Method with a second instance as argument. rect1's width does
	// not strictly exceed rect2's, so this reports false.
	if err := printf(w, "Can rect1 hold rect2? %t\n", rect1.CanHold(rect2)); err != nil {
		return err
	}

	// 2. Method reading the receiver's own fields.
	if err := printf(w, "The area of the rectangle is %d square pixels.\n", rect1.Area()); err != nil {
		return err
	}

	// 3. Constructor function producing a new instance.
	sq := Square(2)
	return printf(w, "Square width and height are %dx%d.\n", sq.Width, sq.Height)
}
