// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-starfield/internal/capture"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/render"
	"github.com/litescript/ls-starfield/internal/version"
)

// Msg types for Bubble Tea
type (
	// AnimTickMsg advances the animation by one frame.
	AnimTickMsg time.Time

	// recordingMsg carries a recorder progress update.
	recordingMsg struct {
		progress capture.Progress
		updates  <-chan capture.Progress
	}

	// savedMsg reports the result of writing a finished GIF.
	savedMsg struct {
		path  string
		bytes int
		err   error
	}
)

// errRecordingClosed is reported when the recorder stops without a final update.
var errRecordingClosed = errors.New("recording ended unexpectedly")

// Options configures the model.
type Options struct {
	// Output is where finished GIFs are written.
	Output string

	// PixelsPerCell is the canvas resolution behind one terminal column.
	PixelsPerCell int

	// Context bounds recordings started from the view.
	Context context.Context

	Logger *logging.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	loop     *render.Loop
	recorder *capture.Recorder
	opts     Options

	// UI state
	width     int
	height    int
	ready     bool
	frame     *image.RGBA
	statusMsg string // recording progress and save results
	recording bool
	animTick  int
}

// New creates the starfield model. Every frame the loop renders should also
// reach the recorder's frame source through the loop's sinks.
func New(loop *render.Loop, recorder *capture.Recorder, opts Options) Model {
	if opts.Output == "" {
		opts.Output = capture.DefaultOutput
	}
	if opts.PixelsPerCell < 1 {
		opts.PixelsPerCell = 1
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return Model{loop: loop, recorder: recorder, opts: opts}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.animTickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "g", "G":
			return m.startRecording()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if !m.tooSmall() {
			w, h := canvasSize(m.width, m.height, m.opts.PixelsPerCell)
			m.loop.World().Resize(w, h)
			m.opts.Logger.Debug("Canvas resized to %dx%d for %dx%d terminal", w, h, m.width, m.height)
		}

	case AnimTickMsg:
		m.animTick++
		if m.ready && !m.tooSmall() {
			m.frame = m.loop.Tick()
		}
		return m, m.animTickCmd()

	case recordingMsg:
		p := msg.progress
		m.statusMsg = p.String()
		switch p.Phase {
		case capture.PhaseDone:
			m.recording = false
			return m, saveGIF(m.opts.Output, p.GIF)
		case capture.PhaseFailed:
			m.recording = false
			m.opts.Logger.Warn("Recording failed: %v", p.Err)
			return m, nil
		}
		return m, waitForProgress(msg.updates)

	case savedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Saving GIF failed: %v", msg.err)
			m.opts.Logger.Error("Write %s: %v", msg.path, msg.err)
		} else {
			m.statusMsg = fmt.Sprintf("GIF saved as %s (%d KB)", msg.path, (msg.bytes+1023)/1024)
			m.opts.Logger.Info("GIF saved as %s", msg.path)
		}
	}

	return m, nil
}

func (m Model) startRecording() (tea.Model, tea.Cmd) {
	if m.recording || m.recorder == nil {
		return m, nil
	}
	updates, err := m.recorder.Start(m.opts.Context)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Recording failed: %v", err)
		return m, nil
	}
	m.recording = true
	m.statusMsg = capture.Progress{Phase: capture.PhaseRecording}.String()
	return m, waitForProgress(updates)
}

func (m Model) tooSmall() bool {
	return m.width < minCols || m.height < minRows
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.tooSmall() {
		return "Starfield requires larger terminal"
	}

	sky := renderHalfBlocks(downsample(m.frame, m.width, m.height-statusRows))
	return sky + "\n" + m.renderFooter()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	// Animated spinner frames
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

	world := m.loop.World()
	info := fmt.Sprintf(" %d stars · %d shooting", len(world.CatalogStars())+len(world.RandomStars()), len(world.ShootingStars()))

	status := renderTitle(fmt.Sprintf("ls-starfield v%s", version.Version)) + dimStyle.Render(info)
	if m.recording {
		spinner := spinnerFrames[m.animTick%len(spinnerFrames)]
		status += "  " + accentStyle.Render(spinner) + " " + m.renderShimmerText(m.statusMsg)
	} else if m.statusMsg != "" {
		status += "  " + dimStyle.Render(m.statusMsg)
	}

	help := dimStyle.Render("g: record GIF | q: quit")
	return status + "\n" + help
}

// renderTitle renders text with a blue to magenta gradient.
func renderTitle(text string) string {
	from, _ := colorful.Hex("#3B82F6")
	to, _ := colorful.Hex("#D946EF")

	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(max(1, len(runes)-1))
		c := from.BlendHcl(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	pos := m.animTick % (len(runes) + 8)

	var result strings.Builder
	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}

		var hexColor string
		switch {
		case dist <= 1:
			hexColor = "#B4A0DC"
		case dist <= 3:
			hexColor = "#8C78B4"
		case dist <= 5:
			hexColor = "#6E5A96"
		default:
			hexColor = "#504678"
		}
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(string(r)))
	}
	return result.String()
}

func (m Model) animTickCmd() tea.Cmd {
	return tea.Tick(m.loop.Interval(), func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// waitForProgress blocks on the next recorder update.
func waitForProgress(updates <-chan capture.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-updates
		if !ok {
			return recordingMsg{progress: capture.Progress{Phase: capture.PhaseFailed, Err: errRecordingClosed}}
		}
		return recordingMsg{progress: p, updates: updates}
	}
}

func saveGIF(path string, data []byte) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, data, 0o644)
		return savedMsg{path: path, bytes: len(data), err: err}
	}
}
