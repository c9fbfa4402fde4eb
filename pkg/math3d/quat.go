package math3d

// QuatToMat4 builds a rotation matrix from a unit quaternion (x,y,z,w), the
// rotation representation glTF node transforms carry.
func QuatToMat4(x, y, z, w float64) Mat4 {
	x2 := x + x
	y2 := y + y
	z2 := z + z

	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2

	return Mat4{
		1 - (yy + zz), xy + wz, xz - wy, 0,
		xy - wz, 1 - (xx + zz), yz + wx, 0,
		xz + wy, yz - wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	}
}

// Mat4FromSlice copies 16 column-major floats into a Mat4, the form glTF's
// node.matrix field uses directly.
func Mat4FromSlice(s []float64) Mat4 {
	var m Mat4
	copy(m[:], s)
	return m
}
