// internal/version/version.go
package version

// Version is stamped at release time via -ldflags "-X faseek/internal/version.Version=...".
var Version = "0.2.0-dev"
