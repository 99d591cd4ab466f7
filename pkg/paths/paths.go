// Package paths resolves the boilerplates directory and boil's own
// XDG locations.
//
// The boilerplates root is chosen by a fixed precedence: the
// BOILERPLATES_PATH override first (taken as-is, no existence check),
// then the first of ./.boilerplates, ./boilerplates, ~/.boilerplates
// and ~/boilerplates that exists as a directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvBoilerplatesPath is the highest-precedence override for the
	// boilerplates directory. Its value is used verbatim, without any
	// existence check.
	EnvBoilerplatesPath = "BOILERPLATES_PATH"

	// EnvConfigDir overrides the XDG config directory for boil
	EnvConfigDir = "BOIL_CONFIG_DIR"

	// EnvEditor is the external editor consulted by the edit action
	EnvEditor = "EDITOR"
)

// BoilDirName is the directory name for boil-specific files under the
// XDG base directories.
const BoilDirName = "boil"

// Candidate directory names in precedence order. The local candidates
// keep their literal "./" spelling so the resolved value matches what
// the user sees in the help text.
var (
	localCandidates = []string{"./.boilerplates", "./boilerplates"}
	homeCandidates  = []string{".boilerplates", "boilerplates"}
)

// Resolve returns the boilerplates root for this invocation, or ""
// when no candidate matched. It never returns an error: callers that
// proceed with an empty root fail with the OS not-found error on their
// first filesystem operation.
func Resolve() string {
	if override := os.Getenv(EnvBoilerplatesPath); override != "" {
		return override
	}

	for _, dir := range localCandidates {
		if isDir(dir) {
			return dir
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range homeCandidates {
		if dir := filepath.Join(home, name); isDir(dir) {
			return dir
		}
	}

	return ""
}

// Boilerplate builds the full path of a boilerplate under the resolved
// root. The plain "/" join is deliberate: with an empty root the result
// is still a rooted path whose filesystem operation fails with the OS
// not-found error, which is the documented failure mode.
func Boilerplate(root, name string) string {
	return root + "/" + name
}

// ConfigDir returns the directory boil reads its config file from,
// honoring the BOIL_CONFIG_DIR override.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, BoilDirName)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
