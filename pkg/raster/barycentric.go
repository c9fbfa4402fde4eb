package raster

import "github.com/taigrr/softraster/pkg/math3d"

// Barycentric is the contract a varying record (a shader's VOut type) must
// satisfy so the rasterizer can combine per-vertex outputs into a
// per-fragment input without ever reflecting on the concrete type.
//
// Interpolated computes the triangle-weighted combination of three values —
// self (the value at vertex 0), b (vertex 1) and c (vertex 2) — under
// barycentric weights lambda, which sum to 1. LineInterpolated computes the
// two-point combination used by the wireframe path: mu.X*self + mu.Y*b.
//
// Primitive implementations exist in package math3d for Scalar, Vec2, Vec3
// and Vec4. A user-defined varying struct implements Barycentric by
// recursing field-wise — write it by hand, or generate it with
// cmd/barygen.
type Barycentric[T any] interface {
	Interpolated(lambda math3d.Vec3, b, c T) T
	LineInterpolated(mu math3d.Vec2, b T) T
}

// Empty is the unit varying type, for shaders that carry no per-vertex
// output at all (e.g. a flat-color shader whose only uniform is the color
// itself). It trivially satisfies Barycentric[Empty].
type Empty struct{}

// Interpolated implements Barycentric[Empty]: there is nothing to combine.
func (Empty) Interpolated(_ math3d.Vec3, _, _ Empty) Empty { return Empty{} }

// LineInterpolated implements Barycentric[Empty]: there is nothing to combine.
func (Empty) LineInterpolated(_ math3d.Vec2, _ Empty) Empty { return Empty{} }
