package math

/**
 * @brief Creates a quaternion from the given components.
 */
func NewQuaternion(w, x, y, z float32) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{W: 1.0}
}

/**
 * @brief Creates a quaternion from the given angle, in radians, around axis.
 * The axis is expected to be unit length.
 */
func NewQuatFromAxisRad(radians float32, axis Vec3) Quaternion {
	s := ksin(radians / 2.0)
	return Quaternion{
		W: kcos(radians / 2.0),
		X: s * axis.X,
		Y: s * axis.Y,
		Z: s * axis.Z,
	}
}

// NewQuatFromAxisDeg is NewQuatFromAxisRad with the angle in degrees.
func NewQuatFromAxisDeg(degrees float32, axis Vec3) Quaternion {
	return NewQuatFromAxisRad(DegToRad(degrees), axis)
}

/**
 * @brief Returns the length (norm) of the quaternion.
 */
func (q Quaternion) Length() float32 {
	return ksqrt(q.Dot(q))
}

/**
 * @brief Returns a normalized copy of the provided quaternion. A quaternion
 * whose squared length is already within K_QUAT_NORMAL_EPSILON of one is
 * returned untouched.
 */
func (q Quaternion) Normalize() Quaternion {
	sum := q.Dot(q)
	if kabs(1.0-sum) < K_QUAT_NORMAL_EPSILON {
		return q
	}
	return q.DivScalar(ksqrt(sum))
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

/**
 * @brief Returns an inverse copy of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Normalize()
}

func (q Quaternion) MulScalar(s float32) Quaternion {
	return Quaternion{W: q.W * s, X: q.X * s, Y: q.Y * s, Z: q.Z * s}
}

func (q Quaternion) DivScalar(s float32) Quaternion {
	return Quaternion{W: q.W / s, X: q.X / s, Y: q.Y / s, Z: q.Z / s}
}

/**
 * @brief Adds the quaternions component-wise and normalizes the result.
 */
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{
		W: other.W + q.W,
		X: other.X + q.X,
		Y: other.Y + q.Y,
		Z: other.Z + q.Z,
	}.Normalize()
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product q·other) and
 * normalizes the result, so composing rotations never drifts off unit length.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	a, b := q, other
	return Quaternion{
		W: b.W*a.W - b.X*a.X - b.Y*a.Y - b.Z*a.Z,
		X: b.W*a.X + b.X*a.W - b.Y*a.Z + b.Z*a.Y,
		Y: b.W*a.Y + b.X*a.Z + b.Y*a.W - b.Z*a.X,
		Z: b.W*a.Z - b.X*a.Y + b.Y*a.X + b.Z*a.W,
	}.Normalize()
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.W*other.W +
		q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z
}

// RotateVec3 rotates v by q, computing q·v·q⁻¹ in expanded form.
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	b := Vec3{q.X, q.Y, q.Z}
	b2 := b.LengthSquared()
	part_a := v.MulScalar(q.W*q.W - b2)
	part_b := b.MulScalar(v.Dot(b) * 2.0)
	part_c := b.Cross(v).MulScalar(q.W * 2.0)
	return part_a.Add(part_b.Add(part_c))
}

/**
 * @brief Creates a rotation matrix from the given quaternion, which
 * is assumed to be unit length. Prefer RotateVec3 when only a single
 * vector needs rotating.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	w, x, y, z := q.W, q.X, q.Y, q.Z

	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = 1.0 - 2.0*y*y - 2.0*z*z
	out_matrix.Data[1] = 2.0*x*y + 2.0*w*z
	out_matrix.Data[2] = 2.0*x*z - 2.0*w*y

	out_matrix.Data[4] = 2.0*x*y - 2.0*w*z
	out_matrix.Data[5] = 1.0 - 2.0*x*x - 2.0*z*z
	out_matrix.Data[6] = 2.0*y*z + 2.0*w*x

	out_matrix.Data[8] = 2.0*x*z + 2.0*w*y
	out_matrix.Data[9] = 2.0*y*z - 2.0*w*x
	out_matrix.Data[10] = 1.0 - 2.0*x*x - 2.0*y*y
	return out_matrix
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions, along the shortest arc.
 *
 * @param other The second quaternion.
 * @param t The interpolation factor, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	cos_half_theta := q.Dot(other)
	if cos_half_theta < 0.0 {
		q = q.MulScalar(-1.0)
		cos_half_theta = q.Dot(other)
	}
	if kabs(cos_half_theta) >= 1.0 {
		return q
	}

	sin_half_theta := ksqrt(1.0 - cos_half_theta*cos_half_theta)
	if kabs(sin_half_theta) < K_SLERP_EPSILON {
		// too close to tell apart; blend linearly without renormalizing
		return Quaternion{
			W: (1.0-t)*q.W + t*other.W,
			X: (1.0-t)*q.X + t*other.X,
			Y: (1.0-t)*q.Y + t*other.Y,
			Z: (1.0-t)*q.Z + t*other.Z,
		}
	}

	half_theta := kacos(cos_half_theta)
	a := ksin((1.0-t)*half_theta) / sin_half_theta
	b := ksin(t*half_theta) / sin_half_theta
	return Quaternion{
		W: q.W*a + other.W*b,
		X: q.X*a + other.X*b,
		Y: q.Y*a + other.Y*b,
		Z: q.Z*a + other.Z*b,
	}
}

// Compare reports whether every component of q is within tolerance of other.
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return kabs(q.W-other.W) <= tolerance &&
		kabs(q.X-other.X) <= tolerance &&
		kabs(q.Y-other.Y) <= tolerance &&
		kabs(q.Z-other.Z) <= tolerance
}
