package render

import (
	"image/color"
	"testing"
)

func TestFillBinary(t *testing.T) {
	buf := make([]byte, 8)
	Fill(buf, []uint8{0, 3}, nil, color.White, color.Black)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %d want %d", i, buf[i], want[i])
		}
	}
}

func TestFillPaletteClampsToLastEntry(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	Fill(buf, []uint8{0, 1, 7}, palette, color.White, color.Black)
	if buf[0] != 1 || buf[3] != 255 {
		t.Fatalf("cell 0 painted %v", buf[0:4])
	}
	if buf[5] != 2 || buf[9] != 2 {
		t.Fatalf("cells 1 and 2 painted %v and %v", buf[4:8], buf[8:12])
	}
}
