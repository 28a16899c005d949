//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders a sample string with the built in atlas.
func (Run) Text() error {
	mg.Deps(Build.CLI)
	fmt.Println("Run gizmo...")
	if _, err := executeCmd("bin/gizmo", withArgs("text", `Hello, gizmo!\nÀ bientôt`), withStream()); err != nil {
		return err
	}
	return nil
}

// Prints the frustum of the configured camera.
func (Run) Frustum() error {
	mg.Deps(Build.CLI)
	_, err := executeCmd("bin/gizmo", withArgs("frustum"), withStream())
	return err
}
