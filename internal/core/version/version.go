// Package version reports build information stamped at link time
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service" example:"addressbook-api"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit"  example:"abcd123"`
	Date    string `json:"date"    example:"2026-10-01"`
}

// Set via -ldflags "-X 'addressbook/internal/core/version.version=v0.1.0'
// -X 'addressbook/internal/core/version.commit=abcd' -X 'addressbook/internal/core/version.date=2026-10-01'"
var (
	service = "addressbook-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
}
