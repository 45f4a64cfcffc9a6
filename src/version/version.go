package version

// Version is the release version, overridden at build time with
// -ldflags "-X redmine-plugin-setup/src/version.Version=...".
var Version = "0.1.0"
