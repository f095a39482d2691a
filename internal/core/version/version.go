// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'netmatch/internal/core/version.version=v0.0.1'
	// -X 'netmatch/internal/core/version.commit=abcd' -X 'netmatch/internal/core/version.date=2026-10-19'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// UserAgent renders the build as a product token for outbound requests
func UserAgent() string { return service + "/" + version }

var (
	service = "netmatch-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
