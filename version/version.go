// Package version exposes build-time identity for the vcqc binaries.
package version

// Injected at build time via -ldflags.
//
//nolint:gochecknoglobals
var (
	name    = "vcqc"
	version = "dev"
	commit  = "unknown"
)

// Name returns the tool name.
func Name() string {
	return name
}

// Version returns the semantic version or "dev".
func Version() string {
	return version
}

// Commit returns the VCS revision the binary was built from.
func Commit() string {
	return commit
}
