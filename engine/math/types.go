package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

// IVec3 is an integer 3D index, e.g. a voxel or grid cell coordinate.
type IVec3 struct {
	X, Y, Z int32
}

/**
 * @brief A unit quaternion (versor), used to represent rotational orientation.
 * Stored as (w, x, y, z).
 */
type Quaternion struct {
	W, X, Y, Z float32
}

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are column-major: row r, column c lives at Data[r+4*c].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 3d object, i.e. an axis-aligned bounding box.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief An oriented bounding box. Axes are expected to be orthonormal and
 * are never re-orthonormalized by the functions operating on the box.
 */
type OBB struct {
	/** @brief Centre of the box in world space. */
	Centre Vec3
	/** @brief Unit direction of each side (u, v, w). */
	Axes [3]Vec3
	/** @brief Distance from the centre to each face along Axes. Must not be negative. */
	HalfLengths [3]float32
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the methods in transform.go
 * to ensure proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Mat4
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform
}
