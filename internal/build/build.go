// Package build holds build-time information.
package build

// Version information. These default to development values and can be
// overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
