package config

// Version is the degrees binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/degrees/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
