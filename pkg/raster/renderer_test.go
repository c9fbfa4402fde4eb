package raster

import (
	"testing"

	"github.com/taigrr/softraster/pkg/math3d"
)

// colorVertex is a minimal VIn carrying a clip-space position and a flat
// per-vertex color, used across the scenario tests below.
type colorVertex struct {
	Pos   math3d.Vec4
	Color math3d.Vec3
}

// flatShader passes the clip-space position through untouched and carries
// the vertex color as the sole varying.
type flatShader struct{}

func (flatShader) Vertex(v *colorVertex) (math3d.Vec4, math3d.Vec3) {
	return v.Pos, v.Color
}

func (flatShader) Fragment(v math3d.Vec3) UVec3 {
	return RGB(uint8(v.X*255+0.5), uint8(v.Y*255+0.5), uint8(v.Z*255+0.5))
}

func TestDrawFullscreenTriangleIsSolidColor(t *testing.T) {
	r := NewRenderer(8, 8)
	r.Clear(0)

	// (-1,-1), (3,-1), (-1,3) covers the whole [-1,1] NDC square.
	verts := []colorVertex{
		{Pos: math3d.V4(-1, -1, 0, 1), Color: math3d.V3(1, 0, 0)},
		{Pos: math3d.V4(3, -1, 0, 1), Color: math3d.V3(1, 0, 0)},
		{Pos: math3d.V4(-1, 3, 0, 1), Color: math3d.V3(1, 0, 0)},
	}
	Draw[colorVertex, math3d.Vec3](r, flatShader{}, verts, []uint32{0, 1, 2})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := r.Color().At(x, y); got != pack(RGB(255, 0, 0)) {
				t.Fatalf("pixel (%d,%d) = %#x, want red", x, y, got)
			}
		}
	}
}

func TestDrawDepthTestKeepsNearestFragment(t *testing.T) {
	r := NewRenderer(10, 10)
	r.Clear(0)

	far := []colorVertex{
		{Pos: math3d.V4(-2, -2, 0.8, 1), Color: math3d.V3(1, 0, 0)},
		{Pos: math3d.V4(2, -2, 0.8, 1), Color: math3d.V3(1, 0, 0)},
		{Pos: math3d.V4(0, 2, 0.8, 1), Color: math3d.V3(1, 0, 0)},
	}
	near := []colorVertex{
		{Pos: math3d.V4(-2, -2, -0.8, 1), Color: math3d.V3(0, 1, 0)},
		{Pos: math3d.V4(2, -2, -0.8, 1), Color: math3d.V3(0, 1, 0)},
		{Pos: math3d.V4(0, 2, -0.8, 1), Color: math3d.V3(0, 1, 0)},
	}

	// Draw the far (greater NDC z) triangle first, then the near one; the
	// near one must win regardless of draw order.
	Draw[colorVertex, math3d.Vec3](r, flatShader{}, far, []uint32{0, 1, 2})
	Draw[colorVertex, math3d.Vec3](r, flatShader{}, near, []uint32{0, 1, 2})

	got := r.Color().At(5, 5)
	if got != pack(RGB(0, 255, 0)) {
		t.Fatalf("expected nearer green triangle to win depth test, got %#x", got)
	}

	// Drawing the far triangle again afterwards must not overwrite the
	// nearer, already-written depth.
	Draw[colorVertex, math3d.Vec3](r, flatShader{}, far, []uint32{0, 1, 2})
	got = r.Color().At(5, 5)
	if got != pack(RGB(0, 255, 0)) {
		t.Fatalf("far triangle drawn after should not overwrite nearer depth, got %#x", got)
	}
}

func TestDrawDegenerateTriangleIsNoOp(t *testing.T) {
	r := NewRenderer(10, 10)
	r.Clear(0xabcdef)

	verts := []colorVertex{
		{Pos: math3d.V4(0, 0, 0, 1), Color: math3d.V3(1, 0, 0)},
		{Pos: math3d.V4(0, 0, 0, 1), Color: math3d.V3(1, 0, 0)},
		{Pos: math3d.V4(0, 0, 0, 1), Color: math3d.V3(1, 0, 0)},
	}
	Draw[colorVertex, math3d.Vec3](r, flatShader{}, verts, []uint32{0, 1, 2})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if r.Color().At(x, y) != 0xabcdef {
				t.Fatalf("degenerate triangle must not touch the color buffer, pixel (%d,%d)=%#x", x, y, r.Color().At(x, y))
			}
		}
	}
}

func TestDrawWireframeTouchesOnlyEdges(t *testing.T) {
	r := NewRenderer(20, 20)
	r.Clear(0)
	r.SetMode(ModeWireframe)

	verts := []colorVertex{
		{Pos: math3d.V4(-0.8, -0.8, 0, 1), Color: math3d.V3(1, 1, 1)},
		{Pos: math3d.V4(0.8, -0.8, 0, 1), Color: math3d.V3(1, 1, 1)},
		{Pos: math3d.V4(0, 0.8, 0, 1), Color: math3d.V3(1, 1, 1)},
	}
	Draw[colorVertex, math3d.Vec3](r, flatShader{}, verts, []uint32{0, 1, 2})

	// The centroid must stay untouched: wireframe mode draws edges, not
	// fill.
	if got := r.Color().At(10, 6); got != 0 {
		t.Fatalf("wireframe mode should not fill the interior, got %#x at centroid-ish pixel", got)
	}

	touched := false
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if r.Color().At(x, y) != 0 {
				touched = true
			}
		}
	}
	if !touched {
		t.Fatalf("wireframe draw touched no pixels at all")
	}
}

func TestDrawVaryingInterpolationAtCentroid(t *testing.T) {
	r := NewRenderer(4, 4)
	r.Clear(0)

	// On a 4x4 buffer these vertices land on screen pixels (0,0), (3,0) and
	// (0,3), so the centroid is exactly pixel (1,1).
	verts := []colorVertex{
		{Pos: math3d.V4(-1, -1, 0, 1), Color: math3d.V3(1, 0, 0)},
		{Pos: math3d.V4(1, -1, 0, 1), Color: math3d.V3(0, 1, 0)},
		{Pos: math3d.V4(-1, 1, 0, 1), Color: math3d.V3(0, 0, 1)},
	}
	Draw[colorVertex, math3d.Vec3](r, flatShader{}, verts, []uint32{0, 1, 2})

	got := r.Color().At(1, 1)
	// At the centroid each channel is an even blend of the three vertex
	// colors, i.e. (85,85,85) in byte terms, within one LSB of rounding.
	for _, ch := range []uint32{(got >> 16) & 0xff, (got >> 8) & 0xff, got & 0xff} {
		if ch < 84 || ch > 86 {
			t.Fatalf("centroid pixel = %#x, want each channel within one of 85", got)
		}
	}
}
