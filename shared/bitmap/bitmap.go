// Package bitmap is the raster abstraction levels are authored in. Each
// pixel is a 24-bit 0xRRGGBB value whose channels carry independent codes.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	// Registered decoders for Decode.
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Bitmap exposes per-pixel 24-bit channel access.
type Bitmap interface {
	Width() int
	Height() int
	Pixel(x, y int) uint32
}

// Pixels is an in-memory row-major bitmap.
type Pixels struct {
	W, H int
	Data []uint32
}

// New returns a zeroed (all solid) bitmap.
func New(w, h int) *Pixels {
	return &Pixels{W: w, H: h, Data: make([]uint32, w*h)}
}

func (p *Pixels) Width() int  { return p.W }
func (p *Pixels) Height() int { return p.H }

// Pixel returns the pixel at (x, y). Out-of-range coordinates read as 0.
func (p *Pixels) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return 0
	}
	return p.Data[y*p.W+x] & 0xFFFFFF
}

// Set stores a pixel value.
func (p *Pixels) Set(x, y int, v uint32) {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return
	}
	p.Data[y*p.W+x] = v & 0xFFFFFF
}

// Clone returns a deep copy of any Bitmap.
func Clone(b Bitmap) *Pixels {
	out := New(b.Width(), b.Height())
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			out.Data[y*out.W+x] = b.Pixel(x, y)
		}
	}
	return out
}

// FromImage converts a decoded image to 0xRRGGBB pixels, dropping alpha.
func FromImage(img image.Image) *Pixels {
	bounds := img.Bounds()
	out := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Data[y*out.W+x] = (r>>8)<<16 | (g>>8)<<8 | b>>8
		}
	}
	return out
}

// Decode reads a PNG or BMP level image.
func Decode(r io.Reader) (*Pixels, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode level image: %w", err)
	}
	if format != "png" && format != "bmp" {
		return nil, fmt.Errorf("decode level image: unsupported format %q", format)
	}
	return FromImage(img), nil
}

// ErrRaggedRows is returned by Parse when rows differ in length.
var ErrRaggedRows = errors.New("bitmap rows differ in length")

// Parse builds a bitmap from text rows, mapping each rune through legend.
// Runes missing from the legend are an error.
func Parse(legend map[rune]uint32, rows ...string) (*Pixels, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	w := len([]rune(rows[0]))
	out := New(w, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("row %d: %w", y, ErrRaggedRows)
		}
		for x, r := range runes {
			v, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("row %d col %d: no legend entry for %q", y, x, r)
			}
			out.Set(x, y, v)
		}
	}
	return out, nil
}

// MustParse is Parse for fixtures and tools; it panics on error.
func MustParse(legend map[rune]uint32, rows ...string) *Pixels {
	p, err := Parse(legend, rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the bitmap's low bytes as hex, one row per line.
func (p *Pixels) String() string {
	var sb strings.Builder
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02x", p.Pixel(x, y)&0xFF)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
