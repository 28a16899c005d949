package main

import (
	"flag"
	"fmt"

	"github.com/spaghettifunk/gizmo/engine/math"
)

var cornerNames = [8]string{
	math.FrustumNearBottomLeft:  "near bottom left",
	math.FrustumNearTopLeft:     "near top left",
	math.FrustumNearTopRight:    "near top right",
	math.FrustumNearBottomRight: "near bottom right",
	math.FrustumFarBottomLeft:   "far bottom left",
	math.FrustumFarTopLeft:      "far top left",
	math.FrustumFarTopRight:     "far top right",
	math.FrustumFarBottomRight:  "far bottom right",
}

var planeNames = [6]string{
	math.FrustumPlaneRight:  "right",
	math.FrustumPlaneLeft:   "left",
	math.FrustumPlaneTop:    "top",
	math.FrustumPlaneBottom: "bottom",
	math.FrustumPlaneNear:   "near",
	math.FrustumPlaneFar:    "far",
}

func runFrustum(env *environment, args []string) error {
	cam := env.cfg.Camera
	fs := flag.NewFlagSet("frustum", flag.ContinueOnError)
	fovy := fs.Float64("fovy", float64(cam.FovY), "Vertical field of view in degrees.")
	aspect := fs.Float64("aspect", float64(cam.Aspect), "Width over height.")
	near := fs.Float64("near", float64(cam.Near), "Near clip distance.")
	far := fs.Float64("far", float64(cam.Far), "Far clip distance.")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cam.FovY, cam.Aspect = float32(*fovy), float32(*aspect)
	cam.Near, cam.Far = float32(*near), float32(*far)
	if err := cam.Validate(); err != nil {
		return err
	}

	view := cam.View()
	proj := cam.Projection()
	corners := math.FrustumCorners(proj.Mul(view))
	planes := math.FrustumPlanes(corners)

	fmt.Fprintf(env.out, "view:\n%s", view)
	fmt.Fprintf(env.out, "projection:\n%s", proj)
	fmt.Fprintln(env.out, "corners:")
	for i, c := range corners {
		fmt.Fprintf(env.out, "  %-18s %s\n", cornerNames[i], c)
	}
	fmt.Fprintln(env.out, "planes:")
	for i, p := range planes {
		fmt.Fprintf(env.out, "  %-18s %s\n", planeNames[i], p)
	}
	env.logger.Debug("frustum", "forward", view.Forward(), "up", view.Up(), "right", view.Right())
	return nil
}
