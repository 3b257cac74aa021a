// Command ls-starfield renders an animated night sky in the terminal, to a
// Linux framebuffer, or into GIF and PNG files.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/capture"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/render"
	"github.com/litescript/ls-starfield/internal/starfield"
	"github.com/litescript/ls-starfield/internal/state"
	"github.com/litescript/ls-starfield/internal/ui"
	"github.com/litescript/ls-starfield/internal/version"
)

// CLI flags for headless modes
var (
	gifMode     bool
	offlineMode bool
	pngPath     string
	warmup      time.Duration
	fbMode      bool
	fbDevice    string
	showVersion bool
)

// tuiFPS is the terminal view frame rate.
const tuiFPS = 30

func main() {
	fs := pflag.CommandLine
	config.RegisterFlags(fs)
	fs.BoolVar(&gifMode, "gif", false, "Record a GIF without the terminal view")
	fs.BoolVar(&offlineMode, "offline", false, "With --gif, render frames as fast as possible instead of in real time")
	fs.StringVar(&pngPath, "png", "", "Write a single PNG snapshot to this path")
	fs.DurationVar(&warmup, "warmup", 0, "Animation time to simulate before a PNG snapshot")
	fs.BoolVar(&fbMode, "fb", false, "Draw to a Linux framebuffer")
	fs.StringVar(&fbDevice, "fb-device", render.DefaultFramebuffer, "Framebuffer device")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	pflag.Parse()

	if showVersion {
		fmt.Printf("ls-starfield v%s\n", version.Version)
		return
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fatal(err)
	}

	headless := gifMode || pngPath != "" || fbMode
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		fatal(errors.New("stdout is not a terminal; use --gif, --png or --fb"))
	}

	// Set up logging
	logger, closeLog, err := newLogger(cfg, headless)
	if err != nil {
		fatal(err)
	}
	defer closeLog()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	world := newWorld(cfg, logger)
	renderCfg, err := cfg.RenderConfig()
	if err != nil {
		fatal(err)
	}
	renderer := render.NewRenderer(renderCfg)

	switch {
	case fbMode:
		err = runFramebuffer(ctx, cfg, world, renderer, logger)
	case pngPath != "":
		err = runSnapshot(cfg, world, renderer, logger)
	case gifMode:
		err = runGIF(ctx, cfg, world, renderer, logger)
	default:
		err = runTUI(ctx, cfg, world, renderer, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger logs to --log-file when set. Without one, the terminal view
// discards logs so they don't corrupt the screen.
func newLogger(cfg config.Config, headless bool) (*logging.Logger, func(), error) {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return logging.NewWithWriter(f, level), func() { f.Close() }, nil
	}
	if !headless {
		return logging.Discard(), func() {}, nil
	}
	return logging.New(level), func() {}, nil
}

func newWorld(cfg config.Config, logger *logging.Logger) *starfield.World {
	catalog, err := astro.LoadCatalog(cfg.Catalog.Source)
	if err != nil {
		logger.Warn("Star catalog unavailable, showing random stars only: %v", err)
		catalog = astro.StarCatalog{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sfCfg := cfg.StarfieldConfig(time.Now().UTC())
	if cfg.Observer.Enabled {
		logger.Info("Observer at %.2f, %.2f: zenith RA %.2f Dec %.2f",
			cfg.Observer.Lat, cfg.Observer.Lon, sfCfg.Projector.CenterRA, sfCfg.Projector.CenterDec)
	}
	logger.Debug("World: %d catalog stars, %d random, seed %d", catalog.Len(), sfCfg.RandomStars, seed)

	return starfield.NewSeededWorld(sfCfg, catalog, seed)
}

func runTUI(ctx context.Context, cfg config.Config, world *starfield.World, renderer *render.Renderer, logger *logging.Logger) error {
	store := state.NewFrameStore()
	loop := render.NewLoop(world, renderer,
		render.WithFPS(tuiFPS), render.WithSinks(store), render.WithLogger(logger))
	recorder := capture.NewRecorder(store, cfg.CaptureOptions(), logger.Component("capture"))

	model := ui.New(loop, recorder, ui.Options{
		Output:        cfg.Capture.Output,
		PixelsPerCell: cfg.UI.PixelsPerCell,
		Context:       ctx,
		Logger:        logger.Component("ui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// runGIF records one GIF headlessly, in real time or offline.
func runGIF(ctx context.Context, cfg config.Config, world *starfield.World, renderer *render.Renderer, logger *logging.Logger) error {
	opts := cfg.CaptureOptions()
	world.Resize(cfg.Render.Width, cfg.Render.Height)

	var data []byte
	var err error
	if offlineMode {
		data, err = recordOffline(world, renderer, cfg, opts, logger)
	} else {
		data, err = recordLive(ctx, world, renderer, cfg, opts, logger)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Capture.Output, data, 0o644); err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	logger.Info("GIF saved as %s (%d bytes)", cfg.Capture.Output, len(data))
	return nil
}

func recordOffline(world *starfield.World, renderer *render.Renderer, cfg config.Config, opts capture.Options, logger *logging.Logger) ([]byte, error) {
	loop := render.NewLoop(world, renderer, render.WithFPS(cfg.Render.FPS), render.WithLogger(logger))

	frames, err := capture.RecordOffline(loop, opts)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}

	var buf bytes.Buffer
	err = capture.Encode(&buf, frames, opts, func(done, total int) {
		logger.Debug("%s", capture.Progress{Phase: capture.PhaseEncoding, Percent: done * 100 / total})
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func recordLive(ctx context.Context, world *starfield.World, renderer *render.Renderer, cfg config.Config, opts capture.Options, logger *logging.Logger) ([]byte, error) {
	store := state.NewFrameStore()
	loop := render.NewLoop(world, renderer,
		render.WithFPS(cfg.Render.FPS), render.WithSinks(store), render.WithLogger(logger))
	recorder := capture.NewRecorder(store, opts, logger.Component("capture"))

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, stopLoop := context.WithCancel(gctx)
	defer stopLoop()

	g.Go(func() error {
		if err := loop.Run(loopCtx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	var data []byte
	g.Go(func() error {
		// The loop only runs for as long as the recording does.
		defer stopLoop()

		updates, err := recorder.Start(gctx)
		if err != nil {
			return err
		}
		for p := range updates {
			switch p.Phase {
			case capture.PhaseDone:
				data = p.GIF
				return nil
			case capture.PhaseFailed:
				return fmt.Errorf("record: %w", p.Err)
			default:
				logger.Debug("%s", p)
			}
		}
		return errors.New("record: recorder stopped without a result")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func runSnapshot(cfg config.Config, world *starfield.World, renderer *render.Renderer, logger *logging.Logger) error {
	world.Resize(cfg.Render.Width, cfg.Render.Height)
	loop := render.NewLoop(world, renderer, render.WithFPS(cfg.Render.FPS), render.WithLogger(logger))

	img := loop.Advance(warmup)
	if loop.Frames() == 0 {
		img = loop.Tick()
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	logger.Info("Snapshot saved as %s after %d frames", pngPath, loop.Frames())
	return nil
}

func runFramebuffer(ctx context.Context, cfg config.Config, world *starfield.World, renderer *render.Renderer, logger *logging.Logger) error {
	sink, err := render.OpenFramebuffer(fbDevice)
	if err != nil {
		return err
	}
	defer sink.Close()

	b := sink.Bounds()
	logger.Info("Framebuffer %s open, bounds=%dx%d, canvas %dx%d",
		fbDevice, b.Dx(), b.Dy(), cfg.Render.Width, cfg.Render.Height)

	world.Resize(cfg.Render.Width, cfg.Render.Height)
	loop := render.NewLoop(world, renderer,
		render.WithFPS(cfg.Render.FPS), render.WithSinks(sink), render.WithLogger(logger))
	return loop.Run(ctx)
}
