package math3d

// Scalar is a named float64 so a single interpolated value (e.g. a fog
// factor or a fresnel term) can satisfy raster.Barycentric without wrapping
// it in a single-field struct. Go has no way to attach methods to the bare
// float64 type.
type Scalar float64

// Interpolated implements raster.Barycentric[Scalar].
func (a Scalar) Interpolated(lambda Vec3, b, c Scalar) Scalar {
	return Scalar(lambda.X*float64(a) + lambda.Y*float64(b) + lambda.Z*float64(c))
}

// LineInterpolated implements raster.Barycentric[Scalar] for the two-point
// line case.
func (a Scalar) LineInterpolated(mu Vec2, b Scalar) Scalar {
	return Scalar(mu.X*float64(a) + mu.Y*float64(b))
}
