// Package constant defines immutable application-level identifiers.
package constant

const (
	// Anitable is the application identifier used for paths, env prefixes and CLI branding.
	Anitable = "anitable"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is sent with every request to the schedule service.
	UserAgent = Anitable + "/" + Version + " (+https://github.com/anitable/anitable)"
)

// Build metadata, set with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
