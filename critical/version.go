package critical

import "github.com/kolkov/critsection/internal/binding"

// Version information for the critsection runtime.
const (
	// Version is the current version of the critical-section runtime.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the runtime configuration of this build.
type Info struct {
	// Version is the runtime version string.
	Version string

	// Backend is the diagnostic name of the bound backend, or "" if no
	// backend has registered yet.
	Backend string

	// RestoreStateWidth names the active restore-state representation
	// ("bool", "none", "u8", "u16", "u32" or "u64").
	RestoreStateWidth string
}

// GetInfo returns information about the critical-section runtime.
//
// Example:
//
//	info := critical.GetInfo()
//	fmt.Printf("critsection %s, backend %s, width %s\n",
//		info.Version, info.Backend, info.RestoreStateWidth)
func GetInfo() Info {
	return Info{
		Version:           Version,
		Backend:           binding.Name(),
		RestoreStateWidth: binding.WidthName,
	}
}
