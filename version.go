/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package objectrocket

// Version information set by build flags
var (
	// Version is the semantic version of the client
	Version = "1.0.0"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
}

// GetVersionInfo returns the version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}

// UserAgent returns the User-Agent value sent with every API request.
// The remote service keys usage metrics off the ObjectRocket product token.
func UserAgent() string {
	return "objectrocket-go ObjectRocket/" + Version
}
