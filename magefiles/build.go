//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the gizmo command into bin/.
func (Build) CLI() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/gizmo", "./cmd/gizmo"), withStream()); err != nil {
		return err
	}
	return nil
}

type Test mg.Namespace

// Runs every test in the module.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the tests with the race detector. The atlas watcher and the shared
// metrics are the interesting parts.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./engine/..."), withStream())
	return err
}
