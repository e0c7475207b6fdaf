// SPDX-License-Identifier: MIT

// Package extension detects the optional guasti-transform companion module.
//
// Detection is best-effort: any filesystem error counts as "absent" and is
// never returned. Nothing in guasti depends on the companion being present;
// the command only reports whether it was found.
package extension

import (
	"os"
	"path/filepath"
)

// Name is the directory name of the companion module.
const Name = "guasti-transform"

// MaxDepth is how many ancestors of the start directory Locate inspects.
const MaxDepth = 3

// Probe reports whether dir contains a Name subdirectory.
func Probe(dir string) bool {
	if dir == "" {
		return false
	}
	fi, err := os.Stat(filepath.Join(dir, Name))

	return err == nil && fi.IsDir()
}

// Locate walks from start up through at most MaxDepth ancestors and returns
// the first companion path found.
func Locate(start string) (string, bool) {
	if start == "" {
		return "", false
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for depth := 0; depth <= MaxDepth; depth++ {
		if Probe(dir) {
			return filepath.Join(dir, Name), true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}

// Available locates the companion starting next to the running executable.
func Available() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return Locate(filepath.Dir(exe))
}
