package app

import (
	"fmt"
	"log/slog"
)

// Version, Commit and BuildTime are stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/library-backend/internal/app.Version=1.4.0"
//
// Version also feeds the /health response and the OpenTelemetry resource.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build stamp for humans (libraryctl version).
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// buildAttr groups the build stamp for startup logs.
func buildAttr() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	)
}
