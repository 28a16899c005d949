package math

import (
	"fmt"
	"strings"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other (mt·other), i.e. the
 * transform that applies other first and then mt.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row+i*4] * other.Data[i+col*4]
			}
			out_matrix.Data[row+col*4] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Applies mt to the column vector v.
 */
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	m := &mt.Data
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulVec3Point applies mt to p with an implied w of 1 and drops w.
func (mt Mat4) MulVec3Point(p Vec3) Vec3 {
	return mt.MulVec4(p.ToVec4(1.0)).ToVec3()
}

// cofactorTerms holds the 2x2 sub-determinant products shared by the
// determinant and the inverse.
type cofactorTerms [24]float32

func newCofactorTerms(m *[16]float32) cofactorTerms {
	return cofactorTerms{
		m[10] * m[15],
		m[14] * m[11],
		m[6] * m[15],
		m[14] * m[7],
		m[6] * m[11],
		m[10] * m[7],
		m[2] * m[15],
		m[14] * m[3],
		m[2] * m[11],
		m[10] * m[3],
		m[2] * m[7],
		m[6] * m[3],
		m[8] * m[13],
		m[12] * m[9],
		m[4] * m[13],
		m[12] * m[5],
		m[4] * m[9],
		m[8] * m[5],
		m[0] * m[13],
		m[12] * m[1],
		m[0] * m[9],
		m[8] * m[1],
		m[0] * m[5],
		m[4] * m[1],
	}
}

// firstCofactors returns the cofactors of the first row, stored as the
// first column of the adjugate.
func (t *cofactorTerms) firstCofactors(m *[16]float32) [4]float32 {
	return [4]float32{
		(t[0]*m[5] + t[3]*m[9] + t[4]*m[13]) - (t[1]*m[5] + t[2]*m[9] + t[5]*m[13]),
		(t[1]*m[1] + t[6]*m[9] + t[9]*m[13]) - (t[0]*m[1] + t[7]*m[9] + t[8]*m[13]),
		(t[2]*m[1] + t[7]*m[5] + t[10]*m[13]) - (t[3]*m[1] + t[6]*m[5] + t[11]*m[13]),
		(t[5]*m[1] + t[8]*m[5] + t[11]*m[9]) - (t[4]*m[1] + t[9]*m[5] + t[10]*m[9]),
	}
}

/**
 * @brief Returns the determinant of the matrix, expanded along the first row.
 */
func (mt Mat4) Determinant() float32 {
	m := &mt.Data
	t := newCofactorTerms(m)
	c := t.firstCofactors(m)
	return m[0]*c[0] + m[4]*c[1] + m[8]*c[2] + m[12]*c[3]
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 * A singular matrix (determinant of exactly zero) is returned unchanged.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	inv, _ := mt.InverseChecked()
	return inv
}

// InverseChecked returns the inverse and true, or the matrix itself and false
// when it is singular.
func (mt Mat4) InverseChecked() (Mat4, bool) {
	m := &mt.Data
	t := newCofactorTerms(m)
	c := t.firstCofactors(m)

	det := m[0]*c[0] + m[4]*c[1] + m[8]*c[2] + m[12]*c[3]
	if det == 0 {
		return mt, false
	}
	d := 1.0 / det

	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = d * c[0]
	o[1] = d * c[1]
	o[2] = d * c[2]
	o[3] = d * c[3]
	o[4] = d * ((t[1]*m[4] + t[2]*m[8] + t[5]*m[12]) - (t[0]*m[4] + t[3]*m[8] + t[4]*m[12]))
	o[5] = d * ((t[0]*m[0] + t[7]*m[8] + t[8]*m[12]) - (t[1]*m[0] + t[6]*m[8] + t[9]*m[12]))
	o[6] = d * ((t[3]*m[0] + t[6]*m[4] + t[11]*m[12]) - (t[2]*m[0] + t[7]*m[4] + t[10]*m[12]))
	o[7] = d * ((t[4]*m[0] + t[9]*m[4] + t[10]*m[8]) - (t[5]*m[0] + t[8]*m[4] + t[11]*m[8]))
	o[8] = d * ((t[12]*m[7] + t[15]*m[11] + t[16]*m[15]) - (t[13]*m[7] + t[14]*m[11] + t[17]*m[15]))
	o[9] = d * ((t[13]*m[3] + t[18]*m[11] + t[21]*m[15]) - (t[12]*m[3] + t[19]*m[11] + t[20]*m[15]))
	o[10] = d * ((t[14]*m[3] + t[19]*m[7] + t[22]*m[15]) - (t[15]*m[3] + t[18]*m[7] + t[23]*m[15]))
	o[11] = d * ((t[17]*m[3] + t[20]*m[7] + t[23]*m[11]) - (t[16]*m[3] + t[21]*m[7] + t[22]*m[11]))
	o[12] = d * ((t[14]*m[10] + t[17]*m[14] + t[13]*m[6]) - (t[16]*m[14] + t[12]*m[6] + t[15]*m[10]))
	o[13] = d * ((t[20]*m[14] + t[12]*m[2] + t[19]*m[10]) - (t[18]*m[10] + t[21]*m[14] + t[13]*m[2]))
	o[14] = d * ((t[18]*m[6] + t[23]*m[14] + t[15]*m[2]) - (t[22]*m[14] + t[14]*m[2] + t[19]*m[6]))
	o[15] = d * ((t[22]*m[10] + t[16]*m[2] + t[21]*m[6]) - (t[20]*m[6] + t[23]*m[10] + t[17]*m[2]))

	return out_matrix, true
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat4) Transpose() Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Data[row+4*col] = mt.Data[col+4*row]
		}
	}
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[5] = c
	out_matrix.Data[6] = s
	out_matrix.Data[9] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[2] = -s
	out_matrix.Data[8] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()

	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

// NewMat4RotXDeg rotates about +X by the given degrees (right-handed).
func NewMat4RotXDeg(degrees float32) Mat4 {
	return NewMat4EulerX(DegToRad(degrees))
}

// NewMat4RotYDeg rotates about +Y by the given degrees (right-handed).
func NewMat4RotYDeg(degrees float32) Mat4 {
	return NewMat4EulerY(DegToRad(degrees))
}

// NewMat4RotZDeg rotates about +Z by the given degrees (right-handed).
func NewMat4RotZDeg(degrees float32) Mat4 {
	return NewMat4EulerZ(DegToRad(degrees))
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations.
 * The z rotation is applied first, then y, then x.
 *
 * @param x_radians The x rotation.
 * @param y_radians The y rotation.
 * @param z_radians The z rotation.
 * @return A rotation matrix.
 */
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float32) Mat4 {
	rx := NewMat4EulerX(x_radians)
	ry := NewMat4EulerY(y_radians)
	rz := NewMat4EulerZ(z_radians)
	return rx.Mul(ry).Mul(rz)
}

/**
 * @brief Returns a forward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.Normalize()
}

/**
 * @brief Returns a upward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}.Normalize()
}

/**
 * @brief Returns a right vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}.Normalize()
}

// Compare reports whether every element of mt is within tolerance of other.
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// String prints the matrix row by row.
func (mt Mat4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "[%.2f][%.2f][%.2f][%.2f]\n",
			mt.Data[row], mt.Data[row+4], mt.Data[row+8], mt.Data[row+12])
	}
	return sb.String()
}
