// Package imageio loads binary input images and writes distance map
// renderings for the chamfer command.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrInvalidScale is returned by Scale for factors below 1.
	ErrInvalidScale = errors.New("imageio: scale factor must be at least 1")
)

// Load loads an image from the given file path. The format is chosen from
// the extension and falls back to content sniffing.
// Supported formats: PNG, JPEG, BMP, TIFF.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return decodeWith("PNG", png.Decode, f)
	case ".jpg", ".jpeg":
		return decodeWith("JPEG", jpeg.Decode, f)
	case ".bmp":
		return decodeWith("BMP", bmp.Decode, f)
	case ".tif", ".tiff":
		return decodeWith("TIFF", tiff.Decode, f)
	default:
		return Decode(f)
	}
}

// LoadFromBytes decodes an image from a byte slice, auto-detecting the format.
func LoadFromBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return img, nil
}

func decodeWith(name string, decode func(io.Reader) (image.Image, error), r io.Reader) (image.Image, error) {
	img, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", name, err)
	}
	return img, nil
}

// SavePNG saves img as a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes img as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling,
// into a 16-bit gray image. Factor 1 returns img unchanged.
func Scale(img image.Image, factor int) (image.Image, error) {
	if factor < 1 {
		return nil, ErrInvalidScale
	}
	if factor == 1 {
		return img, nil
	}
	b := img.Bounds()
	dst := image.NewGray16(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}
