package version

import "fmt"

// Values for these are injected by the build.
var (
	version = "edge"
	commit  = ""
)

// Version returns the compose version. This is either a semantic version
// number or else, in the case of unreleased code, the string "edge".
func Version() string {
	if version == "edge" {
		return version
	}

	return fmt.Sprintf("v%s", version)
}

// Commit returns the git commit the binary was built from, if known
func Commit() string {
	return commit
}
