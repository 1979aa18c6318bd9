package layout

import (
	"fmt"
	"os"
	"path/filepath"
)

// BuildDirName is the fixed name of the build directory under the project root.
const BuildDirName = "build"

// Layout is an immutable view of a resolved project directory structure.
type Layout struct {
	// Root is the absolute project root directory.
	Root string
}

// BuildDir returns the conventional build directory under the project root.
func (l Layout) BuildDir() string {
	return filepath.Join(l.Root, BuildDirName)
}

// Resolve returns the project layout. An explicit root is made absolute and
// used as-is; an empty root falls back to the executable-location convention.
// Existence of the root is not checked here: a missing build directory is
// diagnosed by the inspection itself.
func Resolve(root string) (Layout, error) {
	if root == "" {
		return resolveFromExecutable()
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to resolve project root %q: %w", root, err)
	}
	return Layout{Root: abs}, nil
}

// resolveFromExecutable infers the project root from the running binary's
// location, two directory levels up. A binary installed at
// <root>/scripts/targetcheck therefore resolves to <root>.
func resolveFromExecutable() (Layout, error) {
	exe, err := os.Executable()
	if err != nil {
		// Fall back to the working directory when the platform cannot
		// report the executable path.
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return Layout{}, fmt.Errorf("failed to resolve project root: %w", wdErr)
		}
		return Layout{Root: wd}, nil
	}

	if resolved, symErr := filepath.EvalSymlinks(exe); symErr == nil {
		exe = resolved
	}

	return Layout{Root: filepath.Dir(filepath.Dir(exe))}, nil
}
