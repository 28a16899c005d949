package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float32 = 1.0 / K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float32 = 0.70710678118654752440
	/** @brief A multiplier used to convert degrees to radians. */
	K_RAD_PER_DEG float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_DEG_PER_RAD float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief Tolerance used when deciding if a quaternion is already unit length. */
	K_QUAT_NORMAL_EPSILON float32 = 0.0001
	/** @brief Below this sin(theta/2) slerp falls back to a linear blend. */
	K_SLERP_EPSILON float32 = 0.001
)

var (
	kInfinity    = float32(m.Inf(1))
	kNegInfinity = float32(m.Inf(-1))
)

/**
 * Note that these are here in order to prevent converting to and
 * from float64 everywhere.
 */
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ktan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func kacos(x float32) float32 {
	return float32(m.Acos(float64(x)))
}

func katan2(y, x float32) float32 {
	return float32(m.Atan2(float64(y), float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_RAD_PER_DEG
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_DEG_PER_RAD
}

// WrapDegrees360 maps any finite angle into [0, 360).
func WrapDegrees360(degrees float32) float32 {
	if degrees >= 0 && degrees < 360 {
		return degrees
	}
	r := m.Mod(float64(degrees), 360)
	if r < 0 {
		r += 360
	}
	out := float32(r)
	// tiny negative inputs round up to exactly 360 in float32
	if out >= 360 {
		out = 0
	}
	return out
}

// AbsDiffDegrees returns the shortest angular distance between two
// headings, in [0, 180].
func AbsDiffDegrees(first, second float32) float32 {
	first = WrapDegrees360(first)
	second = WrapDegrees360(second)

	diff := kabs(first - second)
	if diff >= 180 {
		diff = kabs(diff - 360)
	}
	return diff
}

/**
 * @brief Converts the X,Z components of an un-normalized direction into a
 * heading in degrees. Heading 0 faces down -Z.
 */
func Vec3ToHeading(direction Vec3) float32 {
	return katan2(-direction.X, -direction.Z) * K_DEG_PER_RAD
}

/**
 * @brief Converts a heading (rotation about the y-axis, in degrees) into a
 * direction in the XZ plane.
 */
func HeadingToVec3(degrees float32) Vec3 {
	rad := degrees * K_RAD_PER_DEG
	return Vec3{-ksin(rad), 0, -kcos(rad)}
}
