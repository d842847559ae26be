package image4bit

import (
	"image"
	"testing"
)

func TestHLineStopExclusive(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 8, 4))
	img.HLine(2, 5, 3, Gray4{Y: 7})

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := uint8(0)
			if y == 3 && x >= 2 && x < 5 {
				want = 7
			}
			if got := img.Gray4At(x, y).Y; got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestVLineStopExclusive(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 6))
	img.VLine(1, 4, 3, Gray4{Y: 9})

	for y := 0; y < 6; y++ {
		want := uint8(0)
		if y >= 1 && y < 4 {
			want = 9
		}
		if got := img.Gray4At(3, y).Y; got != want {
			t.Errorf("pixel (3, %d) = %d, want %d", y, got, want)
		}
		if got := img.Gray4At(2, y).Y; got != 0 {
			t.Errorf("pixel (2, %d) = %d, want 0", y, got)
		}
	}
}

func TestLineEmptyRange(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 4))
	img.HLine(3, 3, 0, Gray4{Y: 1})
	img.HLine(3, 1, 0, Gray4{Y: 1})
	img.VLine(2, 2, 0, Gray4{Y: 1})
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X, want 0", i, b)
		}
	}
}

func TestStrokeRect(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 6, 5))
	img.StrokeRect(1, 1, 4, 3, Gray4{Y: 5})

	want := []string{
		"......",
		".####.",
		".#..#.",
		".####.",
		"......",
	}
	for y, row := range want {
		for x, ch := range row {
			on := img.Gray4At(x, y).Y == 5
			if on != (ch == '#') {
				t.Errorf("pixel (%d, %d) set = %v, want %v", x, y, on, ch == '#')
			}
		}
	}
}

func TestFillRect(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 6, 4))
	img.FillRect(1, 1, 3, 2, Gray4{Y: 0xC})

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := uint8(0)
			if x >= 1 && x < 4 && y >= 1 && y < 3 {
				want = 0xC
			}
			if got := img.Gray4At(x, y).Y; got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestNibble(t *testing.T) {
	src := []byte{0x12, 0x34}
	for k, want := range []uint8{1, 2, 3, 4} {
		if got := Nibble(src, k); got != want {
			t.Errorf("Nibble(src, %d) = %d, want %d", k, got, want)
		}
	}
}

func TestBitmap4NibblePhaseCarriesAcrossRows(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 8, 4))
	src := []byte{0x12, 0x34, 0x56}
	img.Bitmap4(2, 1, src, 3, 2)

	// Row 0 of the bitmap takes nibbles 1 2 3, row 1 continues with 4 5 6
	// (starting on a low nibble) instead of restarting at 0x34's high nibble.
	want := map[image.Point]uint8{
		{2, 1}: 1, {3, 1}: 2, {4, 1}: 3,
		{2, 2}: 4, {3, 2}: 5, {4, 2}: 6,
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if got := img.Gray4At(x, y).Y; got != want[image.Point{x, y}] {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want[image.Point{x, y}])
			}
		}
	}
}

func TestBitmap4EvenWidth(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 2))
	img.Bitmap4(0, 0, []byte{0xAB, 0xCD, 0xEF, 0x01}, 4, 2)
	want := []byte{0xAB, 0xCD, 0xEF, 0x01}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], want[i])
		}
	}
}

func TestBitmap4ShortSource(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 2))
	img.Fill(Gray4{Y: 0xF})
	img.Bitmap4(0, 0, []byte{0x00}, 4, 2)

	if img.Pix[0] != 0x00 {
		t.Errorf("Pix[0] = 0x%02X, want 0x00", img.Pix[0])
	}
	for i := 1; i < len(img.Pix); i++ {
		if img.Pix[i] != 0xFF {
			t.Errorf("Pix[%d] = 0x%02X, want 0xFF (beyond source)", i, img.Pix[i])
		}
	}
}

func TestBitmap4Clipped(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 2, 2))
	// The nibble counter still advances for clipped pixels.
	img.Bitmap4(1, 0, []byte{0x12, 0x34}, 2, 2)
	if got := img.Gray4At(1, 0).Y; got != 1 {
		t.Errorf("pixel (1, 0) = %d, want 1", got)
	}
	if got := img.Gray4At(1, 1).Y; got != 3 {
		t.Errorf("pixel (1, 1) = %d, want 3", got)
	}
}

func TestBitmap8TruncatesToHighNibble(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 3, 2))
	img.Bitmap8(0, 0, []byte{0x1F, 0x2E, 0x3D, 0x4C, 0x5B, 0x6A}, 3, 2)

	want := [][]uint8{{1, 2, 3}, {4, 5, 6}}
	for y, row := range want {
		for x, v := range row {
			if got := img.Gray4At(x, y).Y; got != v {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, v)
			}
		}
	}
}
