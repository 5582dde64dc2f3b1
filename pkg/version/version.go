package version

// Version is set at build time with
// -ldflags "-X github.com/ndjamen/todos/pkg/version.Version=v0.3.0"
var Version = "dev"

// String returns the version the binaries were built from
func String() string {
	return Version
}
