// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Vehicle browser TUI, YAML-defined fuels, engines and vehicles
// 0.3.0 - Concurrent payload search, JSON export, reachability report
// 0.2.0 - Boosted stages with separation, verniers, Atlas and Thor families
// 0.1.0 - Initial release: engine catalog, stage delta-v, payload search
