package raster

import "github.com/taigrr/softraster/pkg/math3d"

// clipVertex pairs a clip-space position with its interpolated varying
// record while it travels through the Sutherland-Hodgman passes below.
type clipVertex[VOut Barycentric[VOut]] struct {
	Pos  math3d.Vec4
	Vary VOut
}

// clipPlane identifies one of the six canonical-frustum half-spaces: axis
// in {0,1,2} selects x, y or z; sign selects the -w <= v[axis] (sign<0) or
// v[axis] <= w (sign>0) half-space.
type clipPlane struct {
	axis int
	sign float64
}

// clipPlanes is traversed in axis order x,y,z with sign order (-,+) for
// each, matching the spec; any fixed order covering all six planes is
// equivalent.
var clipPlanes = [6]clipPlane{
	{axis: 0, sign: -1},
	{axis: 0, sign: 1},
	{axis: 1, sign: -1},
	{axis: 1, sign: 1},
	{axis: 2, sign: -1},
	{axis: 2, sign: 1},
}

func component(v math3d.Vec4, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (p clipPlane) inside(v math3d.Vec4) bool {
	c := component(v, p.axis)
	if p.sign < 0 {
		return -v.W <= c
	}
	return c <= v.W
}

// edgeT computes the intersection parameter of the prev->curr edge with
// plane p, on the original (pre-divide) clip-space coordinates.
func (p clipPlane) edgeT(prev, curr math3d.Vec4) float64 {
	cc := p.sign*curr.W - component(curr, p.axis)
	cp := p.sign*prev.W - component(prev, p.axis)
	return cc / (cc - cp)
}

// interpolateEdge produces the clipped vertex at parameter t along the
// curr->prev segment, for both position and varying.
func interpolateEdge[VOut Barycentric[VOut]](prev, curr clipVertex[VOut], t float64) clipVertex[VOut] {
	pos := curr.Pos.Lerp(prev.Pos, t)
	vary := curr.Vary.LineInterpolated(math3d.V2(1-t, t), prev.Vary)
	return clipVertex[VOut]{Pos: pos, Vary: vary}
}

// clipAgainstPlane runs one Sutherland-Hodgman pass of poly against a
// single half-space, returning the (possibly empty, possibly larger)
// output polygon.
func clipAgainstPlane[VOut Barycentric[VOut]](poly []clipVertex[VOut], p clipPlane) []clipVertex[VOut] {
	n := len(poly)
	if n == 0 {
		return poly
	}
	out := make([]clipVertex[VOut], 0, n+1)
	for i := 0; i < n; i++ {
		curr := poly[i]
		prev := poly[(i-1+n)%n]
		currIn := p.inside(curr.Pos)
		prevIn := p.inside(prev.Pos)
		switch {
		case currIn && prevIn:
			out = append(out, curr)
		case currIn && !prevIn:
			t := p.edgeT(prev.Pos, curr.Pos)
			out = append(out, interpolateEdge(prev, curr, t))
			out = append(out, curr)
		case !currIn && prevIn:
			t := p.edgeT(prev.Pos, curr.Pos)
			out = append(out, interpolateEdge(prev, curr, t))
		}
	}
	return out
}

// ClipTriangle clips a single counter-clockwise clip-space triangle against
// the canonical frustum (-w <= x,y,z <= w on all three axes), returning the
// fan triangulation of the clipped polygon: 0 triangles, or up to 7 (each of
// the six passes adds at most one vertex, so the polygon has at most 9).
// Every returned vertex satisfies -w <= x,y,z <= w. Clipping must run before
// the perspective divide: a vertex with w < 0 cannot be safely divided, and
// the two z-axis passes together (-w <= z and z <= w imply w >= 0) are what
// remove it.
func ClipTriangle[VOut Barycentric[VOut]](pos [3]math3d.Vec4, vary [3]VOut) ([][3]math3d.Vec4, [][3]VOut) {
	poly := []clipVertex[VOut]{
		{Pos: pos[0], Vary: vary[0]},
		{Pos: pos[1], Vary: vary[1]},
		{Pos: pos[2], Vary: vary[2]},
	}
	for _, plane := range clipPlanes {
		poly = clipAgainstPlane(poly, plane)
		if len(poly) == 0 {
			return nil, nil
		}
	}
	if len(poly) < 3 {
		return nil, nil
	}

	n := len(poly) - 2
	tris := make([][3]math3d.Vec4, 0, n)
	varyings := make([][3]VOut, 0, n)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, [3]math3d.Vec4{poly[0].Pos, poly[i].Pos, poly[i+1].Pos})
		varyings = append(varyings, [3]VOut{poly[0].Vary, poly[i].Vary, poly[i+1].Vary})
	}
	return tris, varyings
}
