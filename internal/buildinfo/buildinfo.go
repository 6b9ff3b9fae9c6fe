// Package buildinfo holds the version stamp injected at link time:
//
//	go build -ldflags "-X shimmer/internal/buildinfo.Version=v0.3.0 -X shimmer/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the identifier printed in the firmware startup line: the release
// version if stamped, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// String returns the full stamp, e.g. "v0.3.0 (1a2b3c4, 2024-06-01)".
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
