// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - GIF capture (live and offline), framebuffer output, viper config
// 0.2.0 - Observer zenith mode, catalog files, shooting stars
// 0.1.0 - Initial release: stereographic starfield, twinkle, terminal view
