package math

/**
 * @brief Returns the centre point of the extents.
 */
func (e Extents3D) Centre() Vec3 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

/**
 * @brief Returns the distance from the centre to each face.
 */
func (e Extents3D) HalfLengths() Vec3 {
	return e.Max.Sub(e.Min).MulScalar(0.5)
}

// RayIntersect runs RayAABB against the extents.
func (e Extents3D) RayIntersect(origin, direction Vec3, tmin, tmax float32) bool {
	return RayAABB(origin, direction, e.Min, e.Max, tmin, tmax)
}

// Transformed returns the extents enclosing all eight corners of e after m.
func (e Extents3D) Transformed(m Mat4) Extents3D {
	out := Extents3D{Min: Vec3{kInfinity, kInfinity, kInfinity}, Max: Vec3{kNegInfinity, kNegInfinity, kNegInfinity}}
	for i := 0; i < 8; i++ {
		corner := e.Min
		if i&1 != 0 {
			corner.X = e.Max.X
		}
		if i&2 != 0 {
			corner.Y = e.Max.Y
		}
		if i&4 != 0 {
			corner.Z = e.Max.Z
		}
		c := corner.Transform(m)
		out.Min = Vec3{Min(out.Min.X, c.X), Min(out.Min.Y, c.Y), Min(out.Min.Z, c.Z)}
		out.Max = Vec3{Max(out.Max.X, c.X), Max(out.Max.Y, c.Y), Max(out.Max.Z, c.Z)}
	}
	return out
}

/**
 * @brief Creates an oriented box from axis-aligned extents rotated about their centre.
 */
func NewOBBFromExtents(e Extents3D, rotation Quaternion) OBB {
	h := e.HalfLengths()
	return OBB{
		Centre: e.Centre(),
		Axes: [3]Vec3{
			rotation.RotateVec3(NewVec3Right()),
			rotation.RotateVec3(NewVec3Up()),
			rotation.RotateVec3(Vec3{0, 0, 1}),
		},
		HalfLengths: [3]float32{kabs(h.X), kabs(h.Y), kabs(h.Z)},
	}
}

// RayIntersect runs RayOBB against the box.
func (b OBB) RayIntersect(origin, direction Vec3) (hit bool, t float32, face int32) {
	return RayOBB(b, origin, direction)
}
