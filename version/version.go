package version

import "fmt"

// set via ldflags on release builds
var (
	Version   = "0.0.0-dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var FullVersion = fmt.Sprintf("%s (%s, built %s)", Version, Commit, BuildDate)
