package version

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReflectsRuntime(t *testing.T) {
	v := Get()

	require.Equal(t, Version, v.Version)
	require.Equal(t, Commit, v.Commit)
	require.Equal(t, runtime.Version(), v.GoVersion)
	require.Equal(t, fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), v.Platform)
}

func TestStringReport(t *testing.T) {
	report := Info{
		Version:   "1.2.3",
		Commit:    "abcdefg",
		BuildDate: "2026-04-27",
		GoVersion: "go1.23.1",
		Platform:  "linux/amd64",
	}.String()

	require.True(t, strings.HasPrefix(report, "codedump 1.2.3\n"))
	require.Contains(t, report, "commit:   abcdefg")
	require.Contains(t, report, "built:    2026-04-27")
	require.Contains(t, report, "go:       go1.23.1")
	require.Contains(t, report, "platform: linux/amd64")
}
