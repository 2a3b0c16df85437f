// module.go locates and identifies the module under check.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// findModulePath returns the module path declared by the go.mod governing
// dir, walking up the directory tree the way the go tool does.
func findModulePath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		gomod := filepath.Join(abs, "go.mod")
		if data, err := os.ReadFile(gomod); err == nil {
			file, err := modfile.Parse(gomod, data, nil)
			if err != nil {
				return "", fmt.Errorf("parsing %s: %w", gomod, err)
			}
			if file.Module == nil {
				return "", fmt.Errorf("%s has no module directive", gomod)
			}
			return file.Module.Mod.Path, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}

	return "", fmt.Errorf("no go.mod found for %s; critcheck must run inside a module", dir)
}
