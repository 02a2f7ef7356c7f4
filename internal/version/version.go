// Package version exposes build-time version information.
// The variables are meant to be overridden at build time via -ldflags.
package version

//nolint:gochecknoglobals // These variables are injected at build time via -ldflags.
var (
	// Version is the semantic version of the application.
	Version = "1.0.0"

	// Commit is the git commit hash the binary was built from.
	Commit = "none"

	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version, commit hash, and build time in a single line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
