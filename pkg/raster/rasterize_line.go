package raster

import (
	"math"

	"github.com/taigrr/softraster/pkg/math3d"
)

// rasterizeLine draws a wireframe edge between two screen-space points using
// a driving-axis Bresenham walk: whichever axis spans more pixels becomes
// the outer loop, and the other is stepped by sign(dy) whenever an
// accumulated integer error term crosses zero - no floating-point slope is
// carried between pixels. No depth is passed in and no depth test is
// performed. Varyings are
// interpolated by the true sub-pixel line parameter t, measured against the
// original pre-rounding endpoints rather than the integer pixel grid, so
// interpolation doesn't drift with the rounding error of long, shallow
// lines. Coincident endpoints are a no-op: there is no direction to walk.
func rasterizeLine[VOut Barycentric[VOut]](r *Renderer, p0, p1 math3d.Vec2, v0, v1 VOut, frag func(VOut) UVec3) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y
	if x0 == x1 && y0 == y1 {
		return
	}

	w, h := r.color.Width(), r.color.Height()

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		v0, v1 = v1, v0
	}

	// Original (pre-rounding) driving-axis endpoints, kept so t tracks the
	// true line rather than the integer pixel grid it gets walked on.
	origX0, origY0 := x0, y0
	origX1, origY1 := x1, y1
	lineLength := math.Hypot(origX1-origX0, origY1-origY0)
	if lineLength == 0 {
		lineLength = 1
	}

	ix0 := int(math.Round(x0))
	iy0 := int(math.Round(y0))
	ix1 := int(math.Round(x1))
	iy1 := int(math.Round(y1))

	dx := ix1 - ix0
	dy := iy1 - iy0
	dyAbs := dy
	if dyAbs < 0 {
		dyAbs = -dyAbs
	}
	sign := 1
	if dy < 0 {
		sign = -1
	}
	eps := dyAbs - dx

	y := iy0
	for x := ix0; x <= ix1; x++ {
		px, py := x, y
		if steep {
			px, py = y, x
		}

		if px >= 0 && px < w && py >= 0 && py < h {
			t := math.Hypot(float64(x)-origX0, float64(y)-origY0) / lineLength
			if t > 1 {
				t = 1
			}
			vary := v0.LineInterpolated(math3d.V2(1-t, t), v1)
			r.color.Plot(px, py, pack(frag(vary)))
		}

		if eps >= 0 {
			y += sign
			eps -= dx
		}
		eps += dyAbs
	}
}
