// Package xrayimport holds build information for the xray-import CLI.
package xrayimport

// Version is overwritten at build time via `-ldflags "-X github.com/rwx-research/xray-import.Version=..."`.
var Version = "v0.0.0-dev"
