// Package scaffold orchestrates a cubekit run: it creates the UserCode
// directory layout, renders the built-in templates, makes sure the tree is
// a git repository and applies the declarative patch list to the files
// CubeMX generated.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cubekit-dev/cubekit/internal/msg"
	"github.com/cubekit-dev/cubekit/internal/patch"
)

// Run executes one scaffolding pass in the current directory. Patches are
// applied strictly in list order and the first fatal error aborts the rest
// of the run.
func Run(cfg *Config, force bool) error {
	ctx := NewContext()

	for _, dir := range cfg.Directories {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	for _, f := range Files {
		if err := RenderFile(filepath.FromSlash(f.Path), f.Template, ctx, force); err != nil {
			return fmt.Errorf("render %s: %w", f.Path, err)
		}
	}

	if err := InitRepo("."); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	return ApplyPatches(cfg.Patches, NewEnv())
}

// ApplyPatches runs the patch list against the working tree. Guard
// expressions are evaluated first so a gated-off spec does no file I/O at
// all; a malformed guard or pattern aborts before any further spec runs.
func ApplyPatches(patches []Patch, env Env) error {
	for _, p := range patches {
		ok, err := env.Allows(p.When)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		res, err := patch.Apply(p.Spec)
		if err != nil {
			return fmt.Errorf("patch %s: %w", p.Spec.Path(), err)
		}
		if res == patch.Applied {
			msg.Info("patched %s", p.Spec.Path())
		}
	}
	return nil
}
