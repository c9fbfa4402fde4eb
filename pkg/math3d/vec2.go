package math3d

import "math"

// Vec2 represents a 2D vector, used for texture coordinates and screen-space
// positions.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Zero2 returns the zero vector.
func Zero2() Vec2 {
	return Vec2{}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// PerpDot returns the 2D perpendicular dot product (a.X*b.Y - a.Y*b.X), the
// signed area of the parallelogram spanned by a and b.
func (a Vec2) PerpDot(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length (magnitude) of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// Interpolated implements raster.Barycentric[Vec2]: the triangle-weighted
// combination of a (self), b and c.
func (a Vec2) Interpolated(lambda Vec3, b, c Vec2) Vec2 {
	return Vec2{
		lambda.X*a.X + lambda.Y*b.X + lambda.Z*c.X,
		lambda.X*a.Y + lambda.Y*b.Y + lambda.Z*c.Y,
	}
}

// LineInterpolated implements raster.Barycentric[Vec2] for the two-point line
// case: mu.X*a + mu.Y*b.
func (a Vec2) LineInterpolated(mu Vec2, b Vec2) Vec2 {
	return Vec2{
		mu.X*a.X + mu.Y*b.X,
		mu.X*a.Y + mu.Y*b.Y,
	}
}
