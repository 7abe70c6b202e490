// Package version exposes build metadata for the codedump binary.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Populated at build time via -ldflags, e.g.
// go build -ldflags "-X 'codedump/pkg/version.Version=1.2.3' -X 'codedump/pkg/version.Commit=abcdefg' -X 'codedump/pkg/version.BuildDate=2026-04-27'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Info is a snapshot of the build metadata plus the runtime it runs on.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the multi-line report printed by `codedump version`.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "codedump %s\n", i.Version)
	fmt.Fprintf(&b, "  commit:   %s\n", i.Commit)
	fmt.Fprintf(&b, "  built:    %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  go:       %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  platform: %s", i.Platform)
	return b.String()
}
