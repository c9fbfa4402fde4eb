package raster

import "testing"

func TestFramebufferRoundTrip(t *testing.T) {
	fb := NewFramebuffer[uint32](4, 3)
	fb.Plot(1, 2, 0xff00ff)
	if got := fb.At(1, 2); got != 0xff00ff {
		t.Fatalf("At(1,2) = %#x, want 0xff00ff", got)
	}
}

func TestFramebufferYFlip(t *testing.T) {
	// Plotting at the bottom row (y=0) must land in the last row of the
	// physical backing slice, not the first.
	fb := NewFramebuffer[uint32](2, 2)
	fb.Plot(0, 0, 1)
	raw := fb.Raw()
	if raw[2] != 1 {
		t.Fatalf("Plot(0,0) should land at physical index 2 (bottom row), raw=%v", raw)
	}
	fb.Plot(0, 1, 2)
	if raw[0] != 2 {
		t.Fatalf("Plot(0,1) should land at physical index 0 (top row), raw=%v", raw)
	}
}

func TestFramebufferFillAndResize(t *testing.T) {
	fb := NewFramebuffer[float64](2, 2)
	fb.Fill(1)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if fb.At(x, y) != 1 {
				t.Fatalf("expected all cells filled to 1")
			}
		}
	}
	fb.Resize(3, 3, 5)
	if fb.Width() != 3 || fb.Height() != 3 {
		t.Fatalf("Resize did not update dimensions")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if fb.At(x, y) != 5 {
				t.Fatalf("Resize did not fill new buffer")
			}
		}
	}
}
