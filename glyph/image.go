package glyph

import (
	"fmt"
	"image"
	"io"

	// Decoders for Decode.
	_ "image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/flavioheleno/ssd1322fb/image4bit"
)

// FromImage converts img to a Bitmap the size of its bounds, using the
// Gray4 color model.
func FromImage(img image.Image) Bitmap {
	b := img.Bounds()
	values := make([]uint8, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			values = append(values, image4bit.Gray4Model.Convert(img.At(x, y)).(image4bit.Gray4).Y)
		}
	}
	return Bitmap{Pix: Pack(values), W: b.Dx(), H: b.Dy()}
}

// Scale resamples img to w×h with a Catmull-Rom filter and converts it to a
// Bitmap.
func Scale(img image.Image, w, h int) Bitmap {
	if w <= 0 || h <= 0 {
		return Bitmap{}
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// Fit scales img to the largest size that fits in w×h while keeping its
// aspect ratio.
func Fit(img image.Image, w, h int) Bitmap {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Bitmap{}
	}
	fw, fh := w, b.Dy()*w/b.Dx()
	if fh > h {
		fw, fh = b.Dx()*h/b.Dy(), h
	}
	return Scale(img, fw, fh)
}

// Decode reads a PNG or BMP image from r and converts it to a Bitmap at its
// native size.
func Decode(r io.Reader) (Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Bitmap{}, fmt.Errorf("glyph: decode image: %w", err)
	}
	return FromImage(img), nil
}

// DecodeFit reads a PNG or BMP image from r and scales it to fit w×h.
func DecodeFit(r io.Reader, w, h int) (Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Bitmap{}, fmt.Errorf("glyph: decode image: %w", err)
	}
	return Fit(img, w, h), nil
}
