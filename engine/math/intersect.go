package math

// RayPlane returns t, the distance along the infinite line of the ray from the
// ray origin to the plane (n·p + d = 0). A negative t is a miss behind the
// origin; the intersection point is origin + direction*t. A ray parallel to
// the plane yields ±Inf and is left for the caller to handle.
func RayPlane(origin, direction, plane_normal Vec3, plane_d float32) float32 {
	return -(origin.Dot(plane_normal) + plane_d) / direction.Dot(plane_normal)
}

/**
 * @brief Ray versus axis-aligned box slab test (Kensler's "new simple" test).
 * Zero direction components produce infinite slab distances which the test
 * tolerates.
 *
 * @param origin The ray origin.
 * @param direction The ray direction. Need not be normalized.
 * @param box_min The minimum corner of the box.
 * @param box_max The maximum corner of the box.
 * @param tmin Start of the accepted interval along the ray.
 * @param tmax End of the accepted interval along the ray.
 * @return True if the ray overlaps all three slabs inside [tmin, tmax].
 */
func RayAABB(origin, direction, box_min, box_max Vec3, tmin, tmax float32) bool {
	ro := [3]float32{origin.X, origin.Y, origin.Z}
	rd := [3]float32{direction.X, direction.Y, direction.Z}
	bmin := [3]float32{box_min.X, box_min.Y, box_min.Z}
	bmax := [3]float32{box_max.X, box_max.Y, box_max.Z}

	for i := 0; i < 3; i++ {
		invD := 1.0 / rd[i]
		t0 := (bmin[i] - ro[i]) * invD
		t1 := (bmax[i] - ro[i]) * invD
		if invD < 0.0 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmax <= tmin {
			return false
		}
	}
	return true
}

// RayOBBFace decodes a face number returned by RayOBB into the box axis
// index (0, 1 or 2) and whether t is where the ray enters the box. The sign
// does not tell which of the two planes of the slab was crossed.
func RayOBBFace(face int32) (axis int32, entering bool) {
	if face < 0 {
		return -face - 1, false
	}
	return face - 1, true
}

/**
 * @brief Ray versus oriented box slab test, after Real-Time Rendering.
 *
 * @param box The box. Its axes must be orthonormal.
 * @param origin The ray origin.
 * @param direction The ray direction.
 * @return hit reports an intersection; t is the distance along the ray to the
 * entry point, or to the exit point when the origin is inside the box; face is
 * ±(axis+1) for the slab that was hit, positive when entering through the slab
 * and negative when leaving through it. Axis 0 is offset by one so its sign
 * survives. A ray parallel to all three slabs, such as a zero direction,
 * never hits.
 */
func RayOBB(box OBB, origin, direction Vec3) (hit bool, t float32, face int32) {
	tmin := kNegInfinity
	tmax := kInfinity
	var imin, imax int32

	p := box.Centre.Sub(origin)
	for i := 0; i < 3; i++ {
		e := box.Axes[i].Dot(p)
		f := box.Axes[i].Dot(direction)
		h := box.HalfLengths[i]

		if kabs(f) > K_FLOAT_EPSILON {
			t1 := (e + h) / f
			t2 := (e - h) / f
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
				imin = int32(i) + 1
			}
			if t2 < tmax {
				tmax = t2
				imax = -(int32(i) + 1)
			}
			if tmin > tmax || tmax < 0 {
				return false, 0, 0
			}
		} else if -e-h > 0 || -e+h < 0 {
			// parallel to the slab and outside of it
			return false, 0, 0
		}
	}

	if tmax == kInfinity {
		// no slab bounded the ray
		return false, 0, 0
	}
	if tmin > 0 {
		return true, tmin, imin
	}
	return true, tmax, imax
}
