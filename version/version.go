package version

import "fmt"

// overwritten at build time via -ldflags
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"

	FullVersion = fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildDate)
)
