package app

import "log/slog"

// Overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/assistant-core/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildInfo identifies the running binary in startup logs.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Build returns the link-time build metadata.
func Build() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

// LogValue renders the build as a "build" group.
func (b BuildInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", b.Version),
		slog.String("commit", b.Commit),
		slog.String("built", b.BuildTime),
	)
}
