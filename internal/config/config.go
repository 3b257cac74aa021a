// Package config loads ls-starfield settings from defaults, an optional
// YAML file, STARFIELD_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/capture"
	"github.com/litescript/ls-starfield/internal/render"
	"github.com/litescript/ls-starfield/internal/starfield"
)

// EnvPrefix prefixes environment overrides, e.g. STARFIELD_SHOOTING_CHANCE.
const EnvPrefix = "STARFIELD"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete application configuration.
type Config struct {
	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`

	// Seed drives all randomness. Zero picks a seed from the clock.
	Seed uint64 `mapstructure:"seed"`

	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Observer   ObserverConfig   `mapstructure:"observer"`
	Stars      StarsConfig      `mapstructure:"stars"`
	Projection ProjectionConfig `mapstructure:"projection"`
	Shooting   ShootingConfig   `mapstructure:"shooting"`
	Render     RenderConfig     `mapstructure:"render"`
	Capture    CaptureConfig    `mapstructure:"capture"`
	UI         UIConfig         `mapstructure:"ui"`
}

// CatalogConfig selects the star catalog.
type CatalogConfig struct {
	// Source is "builtin", "none" or a path to a YAML/JSON catalog.
	Source string `mapstructure:"source"`
}

// ObserverConfig centers the view on an observer's zenith at start-up.
type ObserverConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Lat     float64 `mapstructure:"lat"`
	Lon     float64 `mapstructure:"lon"`
	Name    string  `mapstructure:"name"`
}

type StarsConfig struct {
	Random             int     `mapstructure:"random"`
	MinSize            float64 `mapstructure:"minSize"`
	MaxSize            float64 `mapstructure:"maxSize"`
	FlickerBaseOpacity float64 `mapstructure:"flickerBaseOpacity"`
	FlickerMaxOpacity  float64 `mapstructure:"flickerMaxOpacity"`
	FlickerSpeed       float64 `mapstructure:"flickerSpeed"`
	ColorShift         float64 `mapstructure:"colorShift"`
	RotationSpeed      float64 `mapstructure:"rotationSpeed"`
}

type ProjectionConfig struct {
	CenterRA   float64 `mapstructure:"centerRA"`
	CenterDec  float64 `mapstructure:"centerDec"`
	MinDepth   float64 `mapstructure:"minDepth"`
	Scale      float64 `mapstructure:"scale"`
	CullMargin float64 `mapstructure:"cullMargin"`
}

type ShootingConfig struct {
	Chance        float64 `mapstructure:"chance"`
	MinSpeed      float64 `mapstructure:"minSpeed"`
	MaxSpeed      float64 `mapstructure:"maxSpeed"`
	MinLife       float64 `mapstructure:"minLife"`
	MaxLife       float64 `mapstructure:"maxLife"`
	TailLength    float64 `mapstructure:"tailLength"`
	MaxActive     int     `mapstructure:"maxActive"`
	AngleVariance float64 `mapstructure:"angleVariance"`
	EdgeOffset    float64 `mapstructure:"edgeOffset"`
	Margin        float64 `mapstructure:"margin"`
	MinWidth      float64 `mapstructure:"minWidth"`
	MaxWidth      float64 `mapstructure:"maxWidth"`
	FadeIn        float64 `mapstructure:"fadeIn"`
	FadeOut       float64 `mapstructure:"fadeOut"`
}

type RenderConfig struct {
	Background    string  `mapstructure:"background"`
	FPS           int     `mapstructure:"fps"`
	GlowThreshold float64 `mapstructure:"glowThreshold"`
	GlowScale     float64 `mapstructure:"glowScale"`
	HeadRadius    float64 `mapstructure:"headRadius"`

	// Width and Height size the canvas in headless and framebuffer modes.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type CaptureConfig struct {
	Output     string        `mapstructure:"output"`
	FrameDelay time.Duration `mapstructure:"frameDelay"`
	Duration   time.Duration `mapstructure:"duration"`
	Width      int           `mapstructure:"width"`
	Height     int           `mapstructure:"height"`
	Quality    int           `mapstructure:"quality"`
}

type UIConfig struct {
	// PixelsPerCell is the canvas resolution behind one terminal column.
	PixelsPerCell int `mapstructure:"pixelsPerCell"`
}

// Default returns the built-in configuration.
func Default() Config {
	sf := starfield.DefaultConfig()
	sc := sf.Shooting
	p := sf.Projector
	rc := render.DefaultConfig()
	co := capture.DefaultOptions()

	return Config{
		LogLevel: "info",
		Catalog:  CatalogConfig{Source: astro.CatalogBuiltin},
		Stars: StarsConfig{
			Random:             sf.RandomStars,
			MinSize:            sf.StarMinSize,
			MaxSize:            sf.StarMaxSize,
			FlickerBaseOpacity: sf.FlickerBaseOpacity,
			FlickerMaxOpacity:  sf.FlickerMaxOpacity,
			FlickerSpeed:       sf.FlickerSpeed,
			ColorShift:         sf.ColorShift,
			RotationSpeed:      sf.RotationSpeed,
		},
		Projection: ProjectionConfig{
			CenterRA:   p.CenterRA,
			CenterDec:  p.CenterDec,
			MinDepth:   p.MinDepth,
			Scale:      p.Scale,
			CullMargin: p.CullMargin,
		},
		Shooting: ShootingConfig{
			Chance:        sc.Chance,
			MinSpeed:      sc.MinSpeed,
			MaxSpeed:      sc.MaxSpeed,
			MinLife:       sc.MinLife,
			MaxLife:       sc.MaxLife,
			TailLength:    sc.TailLength,
			MaxActive:     sc.MaxActive,
			AngleVariance: sc.AngleVariance,
			EdgeOffset:    sc.EdgeOffset,
			Margin:        sc.Margin,
			MinWidth:      sc.MinWidth,
			MaxWidth:      sc.MaxWidth,
			FadeIn:        sc.FadeIn,
			FadeOut:       sc.FadeOut,
		},
		Render: RenderConfig{
			Background:    "#000000",
			FPS:           rc.FPS,
			GlowThreshold: rc.GlowThreshold,
			GlowScale:     rc.GlowScale,
			HeadRadius:    rc.HeadRadius,
			Width:         800,
			Height:        450,
		},
		Capture: CaptureConfig{
			Output:     capture.DefaultOutput,
			FrameDelay: co.FrameDelay,
			Duration:   co.Duration,
			Width:      co.Width,
			Height:     co.Height,
			Quality:    co.Quality,
		},
		UI: UIConfig{PixelsPerCell: 2},
	}
}

// Load resolves the configuration. fs may be nil; when set, its flags
// registered by RegisterFlags override every other source. A "config" flag
// or STARFIELD_CONFIG names an optional YAML file.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("config")

	if fs != nil {
		for _, b := range flagBindings {
			if f := fs.Lookup(b.flag); f != nil {
				if err := v.BindPFlag(b.key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", b.flag, err)
				}
			}
		}
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("config", "")
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFile", d.LogFile)
	v.SetDefault("seed", d.Seed)

	v.SetDefault("catalog.source", d.Catalog.Source)

	v.SetDefault("observer.enabled", d.Observer.Enabled)
	v.SetDefault("observer.lat", d.Observer.Lat)
	v.SetDefault("observer.lon", d.Observer.Lon)
	v.SetDefault("observer.name", d.Observer.Name)

	v.SetDefault("stars.random", d.Stars.Random)
	v.SetDefault("stars.minSize", d.Stars.MinSize)
	v.SetDefault("stars.maxSize", d.Stars.MaxSize)
	v.SetDefault("stars.flickerBaseOpacity", d.Stars.FlickerBaseOpacity)
	v.SetDefault("stars.flickerMaxOpacity", d.Stars.FlickerMaxOpacity)
	v.SetDefault("stars.flickerSpeed", d.Stars.FlickerSpeed)
	v.SetDefault("stars.colorShift", d.Stars.ColorShift)
	v.SetDefault("stars.rotationSpeed", d.Stars.RotationSpeed)

	v.SetDefault("projection.centerRA", d.Projection.CenterRA)
	v.SetDefault("projection.centerDec", d.Projection.CenterDec)
	v.SetDefault("projection.minDepth", d.Projection.MinDepth)
	v.SetDefault("projection.scale", d.Projection.Scale)
	v.SetDefault("projection.cullMargin", d.Projection.CullMargin)

	v.SetDefault("shooting.chance", d.Shooting.Chance)
	v.SetDefault("shooting.minSpeed", d.Shooting.MinSpeed)
	v.SetDefault("shooting.maxSpeed", d.Shooting.MaxSpeed)
	v.SetDefault("shooting.minLife", d.Shooting.MinLife)
	v.SetDefault("shooting.maxLife", d.Shooting.MaxLife)
	v.SetDefault("shooting.tailLength", d.Shooting.TailLength)
	v.SetDefault("shooting.maxActive", d.Shooting.MaxActive)
	v.SetDefault("shooting.angleVariance", d.Shooting.AngleVariance)
	v.SetDefault("shooting.edgeOffset", d.Shooting.EdgeOffset)
	v.SetDefault("shooting.margin", d.Shooting.Margin)
	v.SetDefault("shooting.minWidth", d.Shooting.MinWidth)
	v.SetDefault("shooting.maxWidth", d.Shooting.MaxWidth)
	v.SetDefault("shooting.fadeIn", d.Shooting.FadeIn)
	v.SetDefault("shooting.fadeOut", d.Shooting.FadeOut)

	v.SetDefault("render.background", d.Render.Background)
	v.SetDefault("render.fps", d.Render.FPS)
	v.SetDefault("render.glowThreshold", d.Render.GlowThreshold)
	v.SetDefault("render.glowScale", d.Render.GlowScale)
	v.SetDefault("render.headRadius", d.Render.HeadRadius)
	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.height", d.Render.Height)

	v.SetDefault("capture.output", d.Capture.Output)
	v.SetDefault("capture.frameDelay", d.Capture.FrameDelay)
	v.SetDefault("capture.duration", d.Capture.Duration)
	v.SetDefault("capture.width", d.Capture.Width)
	v.SetDefault("capture.height", d.Capture.Height)
	v.SetDefault("capture.quality", d.Capture.Quality)

	v.SetDefault("ui.pixelsPerCell", d.UI.PixelsPerCell)
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	s, sh := c.Stars, c.Shooting
	switch {
	case s.Random < 0:
		return invalid("stars.random must not be negative (got %d)", s.Random)
	case s.MinSize < 0 || s.MaxSize < s.MinSize:
		return invalid("star sizes must satisfy 0 <= minSize <= maxSize (got %v, %v)", s.MinSize, s.MaxSize)
	case sh.Chance < 0 || sh.Chance > 1:
		return invalid("shooting.chance must be within [0, 1] (got %v)", sh.Chance)
	case sh.MaxActive < 0:
		return invalid("shooting.maxActive must not be negative (got %d)", sh.MaxActive)
	case sh.MaxSpeed < sh.MinSpeed:
		return invalid("shooting.maxSpeed %v is below minSpeed %v", sh.MaxSpeed, sh.MinSpeed)
	case sh.MinLife <= 0 || sh.MaxLife < sh.MinLife:
		return invalid("shooting life must satisfy 0 < minLife <= maxLife (got %v, %v)", sh.MinLife, sh.MaxLife)
	case sh.MaxWidth < sh.MinWidth:
		return invalid("shooting.maxWidth %v is below minWidth %v", sh.MaxWidth, sh.MinWidth)
	case sh.FadeOut <= 0 || sh.FadeIn >= 1 || sh.FadeOut > sh.FadeIn:
		return invalid("fades must satisfy 0 < fadeOut <= fadeIn < 1 (got %v, %v)", sh.FadeOut, sh.FadeIn)
	case c.Projection.Scale <= 0:
		return invalid("projection.scale must be positive (got %v)", c.Projection.Scale)
	case c.Projection.CenterDec < -90 || c.Projection.CenterDec > 90:
		return invalid("projection.centerDec must be within [-90, 90] (got %v)", c.Projection.CenterDec)
	case c.Observer.Lat < -90 || c.Observer.Lat > 90:
		return invalid("observer.lat must be within [-90, 90] (got %v)", c.Observer.Lat)
	case c.Render.FPS < 1 || c.Render.FPS > 240:
		return invalid("render.fps must be within [1, 240] (got %d)", c.Render.FPS)
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return invalid("render size must be positive (got %dx%d)", c.Render.Width, c.Render.Height)
	case c.UI.PixelsPerCell < 1:
		return invalid("ui.pixelsPerCell must be at least 1 (got %d)", c.UI.PixelsPerCell)
	}

	if _, err := render.ParseColor(c.Render.Background); err != nil {
		return invalid("render.background: %v", err)
	}
	if err := c.CaptureOptions().Validate(); err != nil {
		return invalid("capture: %v", err)
	}
	return nil
}

// StarfieldConfig converts to the animation settings. With an enabled
// observer the view is centered on their zenith at time now.
func (c Config) StarfieldConfig(now time.Time) starfield.Config {
	proj := astro.Projector{
		CenterRA:   c.Projection.CenterRA,
		CenterDec:  c.Projection.CenterDec,
		MinDepth:   c.Projection.MinDepth,
		Scale:      c.Projection.Scale,
		CullMargin: c.Projection.CullMargin,
	}
	if c.Observer.Enabled {
		proj.CenterRA, proj.CenterDec = astro.Zenith(astro.Observer{
			LatDeg: c.Observer.Lat,
			LonDeg: c.Observer.Lon,
			Name:   c.Observer.Name,
		}, now)
	}

	sh := c.Shooting
	return starfield.Config{
		RandomStars:        c.Stars.Random,
		StarMinSize:        c.Stars.MinSize,
		StarMaxSize:        c.Stars.MaxSize,
		FlickerBaseOpacity: c.Stars.FlickerBaseOpacity,
		FlickerMaxOpacity:  c.Stars.FlickerMaxOpacity,
		FlickerSpeed:       c.Stars.FlickerSpeed,
		ColorShift:         c.Stars.ColorShift,
		RotationSpeed:      c.Stars.RotationSpeed,
		Projector:          proj,
		Shooting: starfield.ShootingConfig{
			Chance:        sh.Chance,
			MinSpeed:      sh.MinSpeed,
			MaxSpeed:      sh.MaxSpeed,
			MinLife:       sh.MinLife,
			MaxLife:       sh.MaxLife,
			TailLength:    sh.TailLength,
			MaxActive:     sh.MaxActive,
			AngleVariance: sh.AngleVariance,
			EdgeOffset:    sh.EdgeOffset,
			Margin:        sh.Margin,
			MinWidth:      sh.MinWidth,
			MaxWidth:      sh.MaxWidth,
			FadeIn:        sh.FadeIn,
			FadeOut:       sh.FadeOut,
		},
	}
}

// RenderConfig converts to the renderer settings.
func (c Config) RenderConfig() (render.Config, error) {
	bg, err := render.ParseColor(c.Render.Background)
	if err != nil {
		return render.Config{}, err
	}
	return render.Config{
		Background:    bg,
		GlowThreshold: c.Render.GlowThreshold,
		GlowScale:     c.Render.GlowScale,
		HeadRadius:    c.Render.HeadRadius,
		FPS:           c.Render.FPS,
	}, nil
}

// CaptureOptions converts to the recorder settings.
func (c Config) CaptureOptions() capture.Options {
	return capture.Options{
		FrameDelay: c.Capture.FrameDelay,
		Duration:   c.Capture.Duration,
		Width:      c.Capture.Width,
		Height:     c.Capture.Height,
		Quality:    c.Capture.Quality,
	}
}
