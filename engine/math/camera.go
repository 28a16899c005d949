package math

// Frustum corner indices, in the order produced by FrustumCorners.
const (
	FrustumNearBottomLeft = iota
	FrustumNearTopLeft
	FrustumNearTopRight
	FrustumNearBottomRight
	FrustumFarBottomLeft
	FrustumFarTopLeft
	FrustumFarTopRight
	FrustumFarBottomRight
)

// Frustum plane indices, in the order produced by FrustumPlanes.
const (
	FrustumPlaneRight = iota
	FrustumPlaneLeft
	FrustumPlaneTop
	FrustumPlaneBottom
	FrustumPlaneNear
	FrustumPlaneFar
)

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position. The result maps world
 * space into a right-handed view space looking down -Z.
 *
 * @param position The position of the camera.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	p := NewMat4Translation(position.MulScalar(-1))

	f := target.Sub(position).Normalize()
	r := f.Cross(up).Normalize()
	u := r.Cross(f).Normalize()

	ori := NewMat4Identity()
	ori.Data[0] = r.X
	ori.Data[4] = r.Y
	ori.Data[8] = r.Z
	ori.Data[1] = u.X
	ori.Data[5] = u.Y
	ori.Data[9] = u.Z
	ori.Data[2] = -f.X
	ori.Data[6] = -f.Y
	ori.Data[10] = -f.Z

	return ori.Mul(p)
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 * Clip space Z ends up in [-1, 1].
 *
 * @param fovy_degrees The vertical field of view in degrees.
 * @param aspect_ratio The aspect ratio (width / height).
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fovy_degrees, aspect_ratio, near_clip, far_clip float32) Mat4 {
	half_tan_fov := ktan(DegToRad(fovy_degrees) * 0.5)
	sy := 1.0 / half_tan_fov

	out_matrix := Mat4{}
	out_matrix.Data[0] = sy / aspect_ratio
	out_matrix.Data[5] = sy
	out_matrix.Data[10] = -((far_clip + near_clip) / (far_clip - near_clip))
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = -((2.0 * far_clip * near_clip) / (far_clip - near_clip))
	return out_matrix
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (near_clip - far_clip)

	out_matrix.Data[0] = -2.0 * lr
	out_matrix.Data[5] = -2.0 * bt
	out_matrix.Data[10] = 2.0 * nf

	out_matrix.Data[12] = (left + right) * lr
	out_matrix.Data[13] = (top + bottom) * bt
	out_matrix.Data[14] = (far_clip + near_clip) * nf
	return out_matrix
}

/**
 * @brief Creates an asymmetric perspective projection for a sub-window of a viewport.
 * The full viewport spans (0,0) to (vp_w, vp_h) pixels; the sub-window starts at
 * (sub_x, sub_y) with size (sub_w, sub_h). The returned matrix is M·P where M scales
 * and translates clip-space XY so that the sub-window covers all of [-1, 1]².
 * Near and far planes are left untouched.
 */
func NewMat4PerspectiveOffcentreViewport(vp_w, vp_h, sub_x, sub_y, sub_w, sub_h int, projection Mat4) Mat4 {
	sub_x_ndc := (float32(sub_x)/float32(vp_w))*2.0 - 1.0
	sub_y_ndc := (float32(sub_y)/float32(vp_h))*2.0 - 1.0
	sub_w_ndc := (float32(sub_w) / float32(vp_w)) * 2.0
	sub_h_ndc := (float32(sub_h) / float32(vp_h)) * 2.0

	m := Mat4{}
	m.Data[0] = 2.0 / sub_w_ndc
	m.Data[5] = 2.0 / sub_h_ndc
	m.Data[10] = 1.0
	m.Data[12] = -2.0*sub_x_ndc/sub_w_ndc - 1.0
	m.Data[13] = -2.0*sub_y_ndc/sub_h_ndc - 1.0
	m.Data[15] = 1.0

	return m.Mul(projection)
}

// FrustumCorners inverts any world-to-clip matrix and returns the eight
// world space corners of the clip volume, indexed by the Frustum* constants.
// Results carry small floating point error from the inversion.
func FrustumCorners(pv Mat4) [8]Vec3 {
	clip_to_world := pv.Inverse()

	// OpenGL clip space: near plane at z = -1.
	corners_clip := [8]Vec4{
		{-1, -1, -1, 1},
		{-1, 1, -1, 1},
		{1, 1, -1, 1},
		{1, -1, -1, 1},
		{-1, -1, 1, 1},
		{-1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, -1, 1, 1},
	}

	var corners [8]Vec3
	for i, c := range corners_clip {
		w := clip_to_world.MulVec4(c)
		corners[i] = w.DivScalar(w.W).ToVec3()
	}
	return corners
}

// FrustumPlanes derives the inward facing unit normals of the six frustum
// planes from corners in FrustumCorners order. Plane offsets are not produced.
func FrustumPlanes(corners [8]Vec3) [6]Vec3 {
	ftr_m_fbr := corners[FrustumFarTopRight].Sub(corners[FrustumFarBottomRight])
	nbr_m_fbr := corners[FrustumNearBottomRight].Sub(corners[FrustumFarBottomRight])
	ftl_m_fbl := corners[FrustumFarTopLeft].Sub(corners[FrustumFarBottomLeft])
	nbl_m_fbl := corners[FrustumNearBottomLeft].Sub(corners[FrustumFarBottomLeft])
	ntr_m_ntl := corners[FrustumNearTopRight].Sub(corners[FrustumNearTopLeft])
	ftl_m_ntl := corners[FrustumFarTopLeft].Sub(corners[FrustumNearTopLeft])
	nbr_m_nbl := corners[FrustumNearBottomRight].Sub(corners[FrustumNearBottomLeft])
	ntl_m_nbl := corners[FrustumNearTopLeft].Sub(corners[FrustumNearBottomLeft])
	fbr_m_fbl := corners[FrustumFarBottomRight].Sub(corners[FrustumFarBottomLeft])

	var planes [6]Vec3
	planes[FrustumPlaneRight] = nbr_m_fbr.Cross(ftr_m_fbr).Normalize()
	planes[FrustumPlaneLeft] = ftl_m_fbl.Cross(nbl_m_fbl).Normalize()
	planes[FrustumPlaneTop] = ftl_m_ntl.Cross(ntr_m_ntl).Normalize()
	planes[FrustumPlaneBottom] = nbl_m_fbl.Cross(fbr_m_fbl).Normalize()
	planes[FrustumPlaneNear] = ntl_m_nbl.Cross(nbr_m_nbl).Normalize()
	planes[FrustumPlaneFar] = fbr_m_fbl.Cross(ftl_m_fbl).Normalize()
	return planes
}
