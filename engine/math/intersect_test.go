package math

import (
	m "math"
	"testing"
)

func TestRayAABB(t *testing.T) {
	inf := float32(m.Inf(1))
	boxMin, boxMax := Vec3{1, -1, -1}, Vec3{2, 1, 1}

	tests := []struct {
		name       string
		origin     Vec3
		dir        Vec3
		tmin, tmax float32
		want       bool
	}{
		{"forward hit", Vec3{}, Vec3{1, 0, 0}, 0, inf, true},
		{"behind origin", Vec3{}, Vec3{-1, 0, 0}, 0, inf, false},
		{"unnormalized direction", Vec3{}, Vec3{5, 0, 0}, 0, inf, true},
		{"diagonal hit", Vec3{0, -1, 0}, Vec3{1, 1, 0}, 0, inf, true},
		{"passes above", Vec3{0, 2, 0}, Vec3{1, 0, 0}, 0, inf, false},
		{"interval ends early", Vec3{}, Vec3{1, 0, 0}, 0, 0.5, false},
		{"interval starts late", Vec3{}, Vec3{1, 0, 0}, 3, inf, false},
		{"origin inside", Vec3{1.5, 0, 0}, Vec3{0, 0, 1}, 0, inf, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RayAABB(tt.origin, tt.dir, boxMin, boxMax, tt.tmin, tt.tmax); got != tt.want {
				t.Errorf("RayAABB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRayPlane(t *testing.T) {
	// plane y = 0 seen from 5 units above
	got := RayPlane(Vec3{0, 5, 0}, Vec3{0, -1, 0}, Vec3{0, 1, 0}, 0)
	if got != 5 {
		t.Errorf("t = %v, want 5", got)
	}

	// plane y = 2, i.e. n·p - 2 = 0
	got = RayPlane(Vec3{0, 5, 0}, Vec3{0, -2, 0}, Vec3{0, 1, 0}, -2)
	if got != 1.5 {
		t.Errorf("t = %v, want 1.5", got)
	}

	got = RayPlane(Vec3{0, 5, 0}, Vec3{0, 1, 0}, Vec3{0, 1, 0}, 0)
	if got >= 0 {
		t.Errorf("plane behind the ray gave t = %v", got)
	}

	got = RayPlane(Vec3{0, 5, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, 0)
	if !m.IsInf(float64(got), 0) {
		t.Errorf("parallel ray gave t = %v, want ±Inf", got)
	}
}

func unitOBB() OBB {
	return OBB{
		Axes:        [3]Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		HalfLengths: [3]float32{1, 1, 1},
	}
}

func TestRayOBB(t *testing.T) {
	tests := []struct {
		name     string
		origin   Vec3
		dir      Vec3
		wantHit  bool
		wantT    float32
		wantFace int32
	}{
		{"enter +x", Vec3{3, 0, 0}, Vec3{-1, 0, 0}, true, 2, 1},
		{"enter -x", Vec3{-3, 0, 0}, Vec3{1, 0, 0}, true, 2, 1},
		{"enter y", Vec3{0, -4, 0}, Vec3{0, 1, 0}, true, 3, 2},
		{"enter z", Vec3{0.5, 0.5, 6}, Vec3{0, 0, -1}, true, 5, 3},
		{"leave from inside", Vec3{}, Vec3{1, 0, 0}, true, 1, -1},
		{"leave z from inside", Vec3{0, 0, 0.5}, Vec3{0, 0, -1}, true, 1.5, -3},
		{"pointing away", Vec3{3, 0, 0}, Vec3{1, 0, 0}, false, 0, 0},
		{"parallel outside", Vec3{3, 2, 0}, Vec3{-1, 0, 0}, false, 0, 0},
		{"skew miss", Vec3{3, 0, 0}, Vec3{-1, 2, 0}, false, 0, 0},
		{"zero direction inside", Vec3{0.5, 0, 0}, Vec3{}, false, 0, 0},
		{"below epsilon inside", Vec3{}, Vec3{1e-9, 0, 0}, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, dist, face := RayOBB(unitOBB(), tt.origin, tt.dir)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if !hit {
				return
			}
			if !approx(dist, tt.wantT, 1e-5) {
				t.Errorf("t = %v, want %v", dist, tt.wantT)
			}
			if face != tt.wantFace {
				t.Errorf("face = %v, want %v", face, tt.wantFace)
			}
		})
	}
}

func TestRayOBBRotated(t *testing.T) {
	box := NewOBBFromExtents(
		Extents3D{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}},
		NewQuatFromAxisDeg(45, Vec3{0, 1, 0}),
	)
	hit, dist, face := box.RayIntersect(Vec3{5, 0, 0}, Vec3{-1, 0, 0})
	if !hit {
		t.Fatal("expected a hit on the rotated box")
	}
	if want := 5 - K_SQRT_TWO; !approx(dist, want, 1e-4) {
		t.Errorf("t = %v, want %v", dist, want)
	}
	// the ray meets an edge shared by the x and z slabs
	if axis, entering := RayOBBFace(face); (axis != 0 && axis != 2) || !entering {
		t.Errorf("face = %v (axis %v, entering %v)", face, axis, entering)
	}

	if hit, _, _ := box.RayIntersect(Vec3{5, 1.5, 0}, Vec3{-1, 0, 0}); hit {
		t.Error("ray above the box should miss")
	}
}

func TestRayOBBFace(t *testing.T) {
	tests := []struct {
		face     int32
		axis     int32
		entering bool
	}{
		{1, 0, true},
		{-1, 0, false},
		{2, 1, true},
		{-2, 1, false},
		{3, 2, true},
		{-3, 2, false},
	}
	for _, tt := range tests {
		axis, entering := RayOBBFace(tt.face)
		if axis != tt.axis || entering != tt.entering {
			t.Errorf("RayOBBFace(%d) = (%d, %v), want (%d, %v)", tt.face, axis, entering, tt.axis, tt.entering)
		}
	}

	// entering through either plane of the x slab gives the same face
	_, _, fromPlus := RayOBB(unitOBB(), Vec3{3, 0, 0}, Vec3{-1, 0, 0})
	_, _, fromMinus := RayOBB(unitOBB(), Vec3{-3, 0, 0}, Vec3{1, 0, 0})
	if fromPlus != fromMinus {
		t.Errorf("faces %d and %d differ", fromPlus, fromMinus)
	}
}
