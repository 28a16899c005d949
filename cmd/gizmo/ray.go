package main

import (
	"flag"
	"fmt"
	m "math"
	"strconv"
	"strings"

	"github.com/spaghettifunk/gizmo/engine/math"
)

// vec3Flag parses "x,y,z" into a Vec3.
type vec3Flag struct {
	v math.Vec3
}

func (f *vec3Flag) String() string {
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vec3Flag) Set(s string) error {
	v, err := parseVec3(s)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}

func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		c[i] = float32(f)
	}
	return math.NewVec3(c[0], c[1], c[2]), nil
}

func runRay(env *environment, args []string) error {
	origin := &vec3Flag{v: math.NewVec3(3, 0.5, 0)}
	dir := &vec3Flag{v: math.NewVec3(-1, 0, 0)}
	half := &vec3Flag{v: math.NewVec3One()}
	fs := flag.NewFlagSet("ray", flag.ContinueOnError)
	fs.Var(origin, "origin", "Ray origin as x,y,z.")
	fs.Var(dir, "dir", "Ray direction as x,y,z.")
	fs.Var(half, "half", "Half lengths of the box centred on the origin.")
	yaw := fs.Float64("yaw", 0, "Rotation of the oriented box about +Y, in degrees.")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	d, ok := dir.v.NormalizeChecked()
	if !ok {
		return fmt.Errorf("direction must not be zero")
	}

	box := math.Extents3D{Min: half.v.MulScalar(-1), Max: half.v}
	hit := box.RayIntersect(origin.v, d, 0, float32(m.Inf(1)))
	fmt.Fprintf(env.out, "aabb: hit=%v\n", hit)

	obb := math.NewOBBFromExtents(box, math.NewQuatFromAxisDeg(float32(*yaw), math.NewVec3Up()))
	hit, t, face := obb.RayIntersect(origin.v, d)
	if hit {
		axis, entering := math.RayOBBFace(face)
		crossing := "leaving"
		if entering {
			crossing = "entering"
		}
		fmt.Fprintf(env.out, "obb: hit=true t=%.4f face=%d (axis %d, %s) point=%s\n",
			t, face, axis, crossing, origin.v.Add(d.MulScalar(t)))
	} else {
		fmt.Fprintln(env.out, "obb: hit=false")
	}

	t = math.RayPlane(origin.v, d, math.NewVec3Up(), 0)
	switch {
	case m.IsInf(float64(t), 0) || m.IsNaN(float64(t)):
		fmt.Fprintln(env.out, "ground: parallel")
	case t < 0:
		fmt.Fprintf(env.out, "ground: behind t=%.4f\n", t)
	default:
		fmt.Fprintf(env.out, "ground: t=%.4f point=%s\n", t, origin.v.Add(d.MulScalar(t)))
	}
	return nil
}
