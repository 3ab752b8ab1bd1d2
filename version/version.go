// Package version holds the komp release version, overridden at build time
// with -ldflags "-X github.com/bitrise-io/komp/version.Version=...".
package version

var Version = "0.1.0"
