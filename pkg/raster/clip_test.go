package raster

import (
	"math"
	"testing"

	"github.com/taigrr/softraster/pkg/math3d"
)

func TestClipTriangleFullyInsideIsUnchanged(t *testing.T) {
	pos := [3]math3d.Vec4{
		math3d.V4(-0.5, -0.5, 0, 1),
		math3d.V4(0.5, -0.5, 0, 1),
		math3d.V4(0, 0.5, 0, 1),
	}
	vary := [3]math3d.Vec3{
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
		math3d.V3(0, 0, 1),
	}
	tris, varyings := ClipTriangle(pos, vary)
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(tris))
	}
	if tris[0] != pos {
		t.Fatalf("inside triangle should pass through unchanged, got %v", tris[0])
	}
	if varyings[0] != vary {
		t.Fatalf("varyings should pass through unchanged, got %v", varyings[0])
	}
}

func TestClipTriangleFullyOutsideIsEmpty(t *testing.T) {
	pos := [3]math3d.Vec4{
		math3d.V4(2, 2, 0, 1),
		math3d.V4(3, 2, 0, 1),
		math3d.V4(2, 3, 0, 1),
	}
	vary := [3]math3d.Vec3{{}, {}, {}}
	tris, varyings := ClipTriangle(pos, vary)
	if tris != nil || varyings != nil {
		t.Fatalf("expected nil, nil for a fully-outside triangle, got %v %v", tris, varyings)
	}
}

func TestClipTriangleAcrossNearPlaneStaysInsideFrustum(t *testing.T) {
	// One vertex behind the eye (w<0), two vertices comfortably inside.
	pos := [3]math3d.Vec4{
		math3d.V4(0, 0, -1, -1),
		math3d.V4(-0.5, -0.5, 0, 1),
		math3d.V4(0.5, -0.5, 0, 1),
	}
	vary := [3]math3d.Vec3{
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
		math3d.V3(0, 0, 1),
	}
	tris, varyings := ClipTriangle(pos, vary)
	if len(tris) == 0 {
		t.Fatalf("expected at least one surviving triangle")
	}
	for _, tri := range tris {
		for _, v := range tri {
			if v.W <= 0 {
				t.Fatalf("clipped vertex has non-positive w: %v", v)
			}
			const eps = 1e-9
			if math.Abs(v.X) > v.W+eps || math.Abs(v.Y) > v.W+eps || math.Abs(v.Z) > v.W+eps {
				t.Fatalf("clipped vertex outside frustum: %v", v)
			}
		}
	}
	if len(tris) != len(varyings) {
		t.Fatalf("triangle and varying counts disagree: %d vs %d", len(tris), len(varyings))
	}
}

func TestClipTriangleDegenerateSharedVertexDoesNotPanic(t *testing.T) {
	pos := [3]math3d.Vec4{
		math3d.V4(0, 0, 0, 1),
		math3d.V4(0, 0, 0, 1),
		math3d.V4(0, 0, 0, 1),
	}
	vary := [3]math3d.Vec3{{}, {}, {}}
	ClipTriangle(pos, vary)
}
