package chamfer

import (
	"image"
	"image/color"
)

// Binary is a 2D binary image. Zero pixels are background; any nonzero
// value is foreground.
type Binary struct {
	width  int
	height int
	data   []uint8
}

// NewBinary creates a binary image with the given dimensions.
// All pixels start as background. Negative sizes are treated as 0.
func NewBinary(width, height int) *Binary {
	width, height = max(width, 0), max(height, 0)
	return &Binary{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewBinaryFromData wraps a row-major pixel slice without copying it.
func NewBinaryFromData(width, height int, data []uint8) (*Binary, error) {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil, ErrInvalidDimensions
	}
	return &Binary{width: width, height: height, data: data}, nil
}

// NewBinaryFromImage creates a binary image from img. A pixel is foreground
// when its gray level is nonzero. The result's origin is at (0, 0).
func NewBinaryFromImage(img image.Image) *Binary {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b := NewBinary(w, h)

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			row := g.Pix[y*g.Stride : y*g.Stride+w]
			for x, v := range row {
				if v != 0 {
					b.data[y*w+x] = 255
				}
			}
		}
		return b
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.Gray16Model.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray16)
			if c.Y != 0 {
				b.data[y*w+x] = 255
			}
		}
	}
	return b
}

// Bounds returns the image dimensions as an image.Rectangle.
func (b *Binary) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Width returns the image width.
func (b *Binary) Width() int { return b.width }

// Height returns the image height.
func (b *Binary) Height() int { return b.height }

// At returns the pixel value at (x, y).
// Returns 0 for coordinates outside the image.
func (b *Binary) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[y*b.width+x]
}

// IsForeground reports whether (x, y) is a foreground pixel.
func (b *Binary) IsForeground(x, y int) bool { return b.At(x, y) != 0 }

// Set sets the pixel value at (x, y).
// Coordinates outside the image are ignored.
func (b *Binary) Set(x, y int, value uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.data[y*b.width+x] = value
}

// Fill sets every pixel to value.
func (b *Binary) Fill(value uint8) {
	for i := range b.data {
		b.data[i] = value
	}
}

// FillRect sets the pixels of r, clipped to the image, to value.
func (b *Binary) FillRect(r image.Rectangle, value uint8) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.data[y*b.width+x] = value
		}
	}
}

// Invert swaps background and foreground. Foreground becomes 0 and
// background becomes 255.
func (b *Binary) Invert() {
	for i, v := range b.data {
		if v == 0 {
			b.data[i] = 255
		} else {
			b.data[i] = 0
		}
	}
}

// Foreground returns the number of foreground pixels.
func (b *Binary) Foreground() int {
	n := 0
	for _, v := range b.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone creates a copy of the image.
func (b *Binary) Clone() *Binary {
	clone := NewBinary(b.width, b.height)
	copy(clone.data, b.data)
	return clone
}

// Data returns the underlying row-major pixel slice.
func (b *Binary) Data() []uint8 {
	return b.data
}

// ToGray returns the image as an *image.Gray with foreground at 255.
func (b *Binary) ToGray() *image.Gray {
	g := image.NewGray(b.Bounds())
	for i, v := range b.data {
		if v != 0 {
			g.Pix[i] = 255
		}
	}
	return g
}
