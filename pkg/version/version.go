//go:build release
// +build release

package version

const Version = "v0.3.0"

const VersionGitRef = "release"
