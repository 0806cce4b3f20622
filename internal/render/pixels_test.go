package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}

func TestFillMaskRGBA(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	tint := color.RGBA{R: 200, G: 40, B: 40, A: 96}
	fillMaskRGBA(buf, []uint8{0, 1}, tint)
	want := []byte{0, 0, 0, 0, 200, 40, 40, 96}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}
