package config

import "github.com/spf13/pflag"

// flagBindings maps command-line flags onto configuration keys.
var flagBindings = []struct {
	flag string
	key  string
}{
	{"config", "config"},
	{"log-level", "logLevel"},
	{"log-file", "logFile"},
	{"seed", "seed"},
	{"catalog", "catalog.source"},
	{"observer", "observer.enabled"},
	{"lat", "observer.lat"},
	{"lon", "observer.lon"},
	{"random-stars", "stars.random"},
	{"rotation-speed", "stars.rotationSpeed"},
	{"center-ra", "projection.centerRA"},
	{"center-dec", "projection.centerDec"},
	{"shooting-chance", "shooting.chance"},
	{"max-shooting", "shooting.maxActive"},
	{"background", "render.background"},
	{"fps", "render.fps"},
	{"width", "render.width"},
	{"height", "render.height"},
	{"output", "capture.output"},
	{"duration", "capture.duration"},
	{"frame-delay", "capture.frameDelay"},
	{"gif-width", "capture.width"},
	{"gif-height", "capture.height"},
	{"quality", "capture.quality"},
	{"pixels-per-cell", "ui.pixelsPerCell"},
}

// RegisterFlags adds the configuration flags to fs, with defaults taken
// from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.String("config", "", "YAML config file")
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-file", d.LogFile, "Write logs to this file instead of stderr")
	fs.Uint64("seed", d.Seed, "Random seed (0 = time based)")
	fs.String("catalog", d.Catalog.Source, "Star catalog: builtin, none or a YAML/JSON file")

	fs.Bool("observer", d.Observer.Enabled, "Center the view on the observer's zenith")
	fs.Float64("lat", d.Observer.Lat, "Observer latitude in degrees")
	fs.Float64("lon", d.Observer.Lon, "Observer longitude in degrees, east positive")

	fs.Int("random-stars", d.Stars.Random, "Random background stars")
	fs.Float64("rotation-speed", d.Stars.RotationSpeed, "Sky rotation per frame in radians")
	fs.Float64("center-ra", d.Projection.CenterRA, "View center right ascension in degrees")
	fs.Float64("center-dec", d.Projection.CenterDec, "View center declination in degrees")
	fs.Float64("shooting-chance", d.Shooting.Chance, "Shooting star spawn probability per frame")
	fs.Int("max-shooting", d.Shooting.MaxActive, "Maximum simultaneous shooting stars")

	fs.String("background", d.Render.Background, "Background color")
	fs.Int("fps", d.Render.FPS, "Frames per second")
	fs.Int("width", d.Render.Width, "Canvas width for headless output")
	fs.Int("height", d.Render.Height, "Canvas height for headless output")

	fs.StringP("output", "o", d.Capture.Output, "GIF output path")
	fs.Duration("duration", d.Capture.Duration, "GIF recording length")
	fs.Duration("frame-delay", d.Capture.FrameDelay, "Delay between GIF frames")
	fs.Int("gif-width", d.Capture.Width, "GIF width")
	fs.Int("gif-height", d.Capture.Height, "GIF height")
	fs.Int("quality", d.Capture.Quality, "GIF palette sampling step (1 = best)")

	fs.Int("pixels-per-cell", d.UI.PixelsPerCell, "Canvas pixels per terminal column")
}
