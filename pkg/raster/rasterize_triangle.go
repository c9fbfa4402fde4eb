package raster

import (
	"math"

	"github.com/taigrr/softraster/pkg/math3d"
)

func signedArea(a, b, point math3d.Vec2) float64 {
	return b.Sub(a).PerpDot(point.Sub(a))
}

func minF(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func maxF(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rasterizeTriangle walks the pixel bounding box of a CCW screen-space
// triangle, updating three incremental edge-function accumulators per
// pixel, and on coverage performs the depth test and conditional write of
// depth and color. Degenerate (zero-area) triangles are silently skipped.
func rasterizeTriangle[VOut Barycentric[VOut]](r *Renderer, p [3]math3d.Vec2, z [3]float64, v [3]VOut, frag func(VOut) UVec3) {
	area := signedArea(p[0], p[1], p[2])
	if area == 0 {
		return
	}

	w, h := r.color.Width(), r.color.Height()
	minX := clampInt(int(math.Floor(minF(p[0].X, p[1].X, p[2].X))), 0, w-1)
	maxX := clampInt(int(math.Ceil(maxF(p[0].X, p[1].X, p[2].X))), 0, w-1)
	minY := clampInt(int(math.Floor(minF(p[0].Y, p[1].Y, p[2].Y))), 0, h-1)
	maxY := clampInt(int(math.Ceil(maxF(p[0].Y, p[1].Y, p[2].Y))), 0, h-1)
	if minX > maxX || minY > maxY {
		return
	}

	start := math3d.V2(float64(minX), float64(minY))
	efa := signedArea(p[0], p[1], start)
	efb := signedArea(p[1], p[2], start)
	efc := signedArea(p[2], p[0], start)

	dxa, dya := p[0].X-p[1].X, p[0].Y-p[1].Y
	dxb, dyb := p[1].X-p[2].X, p[1].Y-p[2].Y
	dxc, dyc := p[2].X-p[0].X, p[2].Y-p[0].Y

	for y := minY; y <= maxY; y++ {
		a, b, c := efa, efb, efc
		for x := minX; x <= maxX; x++ {
			if a >= 0 && b >= 0 && c >= 0 {
				lambda := math3d.V3(b/area, c/area, a/area)
				depth := lambda.X*z[0] + lambda.Y*z[1] + lambda.Z*z[2]
				if depth < r.depth.At(x, y) {
					r.depth.Plot(x, y, depth)
					vary := v[0].Interpolated(lambda, v[1], v[2])
					r.color.Plot(x, y, pack(frag(vary)))
				}
			}
			a += dya
			b += dyb
			c += dyc
		}
		efa -= dxa
		efb -= dxb
		efc -= dxc
	}
}
