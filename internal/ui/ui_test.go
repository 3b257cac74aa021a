package ui

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/capture"
	"github.com/litescript/ls-starfield/internal/render"
	"github.com/litescript/ls-starfield/internal/starfield"
	"github.com/litescript/ls-starfield/internal/state"
)

func newTestModel(t *testing.T, opts Options) (Model, *state.FrameStore) {
	t.Helper()
	world := starfield.NewSeededWorld(starfield.DefaultConfig(), astro.DefaultStarCatalog(), 1)
	store := state.NewFrameStore()
	loop := render.NewLoop(world, render.NewRenderer(render.DefaultConfig()),
		render.WithFPS(30), render.WithSinks(store))

	copts := capture.Options{
		FrameDelay: 10 * time.Millisecond,
		Duration:   30 * time.Millisecond,
		Width:      32,
		Height:     18,
		Quality:    4,
	}
	return New(loop, capture.NewRecorder(store, copts, nil), opts), store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func key(s string) tea.KeyMsg {
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		cols, rows, ppc int
		wantW, wantH    int
	}{
		{80, 24, 1, 80, 44},
		{80, 24, 2, 160, 88},
		{20, 6, 3, 60, 24},
		{10, 1, 2, 20, 0},
	}

	for _, tt := range tests {
		w, h := canvasSize(tt.cols, tt.rows, tt.ppc)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("canvasSize(%d, %d, %d) = %dx%d, want %dx%d",
				tt.cols, tt.rows, tt.ppc, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestModel_ResizesWorld(t *testing.T) {
	m, _ := newTestModel(t, Options{PixelsPerCell: 2})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	w, h := m.loop.World().Size()
	if w != 160 || h != 88 {
		t.Errorf("world size = %vx%v, want 160x88", w, h)
	}
}

func TestModel_TooSmall(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before size = %q", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 19, Height: 10})
	if got := m.View(); got != "Starfield requires larger terminal" {
		t.Errorf("View() = %q", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 5})
	if !strings.Contains(m.View(), "requires larger terminal") {
		t.Error("expected small-terminal message for 5 rows")
	}
	if w, _ := m.loop.World().Size(); w != 0 {
		t.Errorf("world resized for a too-small terminal: width %v", w)
	}
}

func TestModel_ViewFillsTerminal(t *testing.T) {
	m, _ := newTestModel(t, Options{PixelsPerCell: 2})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m, cmd := update(t, m, AnimTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("animation tick should schedule the next tick")
	}
	if m.frame == nil {
		t.Fatal("animation tick did not render a frame")
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Fatalf("View() has %d lines, want 12", len(lines))
	}
	for i, line := range lines[:10] {
		if n := strings.Count(line, upperHalf); n != 40 {
			t.Errorf("sky line %d has %d cells, want 40", i, n)
		}
	}
	if !strings.Contains(lines[11], "g: record GIF") {
		t.Errorf("help line = %q", lines[11])
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m, _ := newTestModel(t, Options{})
		_, cmd := update(t, m, key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestModel_RecordsGIF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sky.gif")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, store := newTestModel(t, Options{Output: out, PixelsPerCell: 1, Context: ctx})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m, _ = update(t, m, AnimTickMsg(time.Now()))
	if store.LatestFrame() == nil {
		t.Fatal("frame store was not fed by the loop")
	}

	m, cmd := update(t, m, key("g"))
	if !m.recording || cmd == nil {
		t.Fatal("g did not start a recording")
	}

	// A second g while recording is ignored
	if _, again := update(t, m, key("g")); again != nil {
		t.Error("g while recording should be ignored")
	}

	deadline := time.After(5 * time.Second)
	for cmd != nil {
		select {
		case <-deadline:
			t.Fatal("recording did not finish")
		default:
		}
		m, cmd = update(t, m, cmd())
	}

	if m.recording {
		t.Error("still recording after completion")
	}
	if !strings.Contains(m.statusMsg, "GIF saved as "+out) {
		t.Errorf("status = %q", m.statusMsg)
	}
	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		t.Fatalf("GIF not written: %v", err)
	}
}

func TestModel_ShiftGRecords(t *testing.T) {
	m, _ := newTestModel(t, Options{Output: filepath.Join(t.TempDir(), "x.gif")})

	m, cmd := update(t, m, key("G"))
	if !m.recording || cmd == nil {
		t.Fatal("G did not start a recording")
	}
	for cmd != nil {
		m, cmd = update(t, m, cmd())
	}
	if m.recording {
		t.Error("still recording after completion")
	}
}

func TestModel_RecordingFailure(t *testing.T) {
	m, _ := newTestModel(t, Options{Output: filepath.Join(t.TempDir(), "x.gif")})
	// No tick has run, so the frame store stays empty
	m, cmd := update(t, m, key("g"))

	for cmd != nil {
		m, cmd = update(t, m, cmd())
	}
	if m.recording {
		t.Error("still recording after failure")
	}
	if !strings.Contains(m.statusMsg, "no frame available") {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 4))
	img.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})

	got := renderHalfBlocks(img)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, upperHalf); n != 3 {
			t.Errorf("line %d has %d cells, want 3", i, n)
		}
	}
}

func TestDownsample(t *testing.T) {
	if got := downsample(nil, 4, 2).Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Errorf("downsample(nil) bounds = %v", got)
	}

	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	dst := downsample(src, 4, 2)
	if c := dst.RGBAAt(2, 2); c.R < 250 {
		t.Errorf("downsampled white pixel = %v", c)
	}
}

func TestHex(t *testing.T) {
	if got := hex(color.RGBA{R: 0x0b, G: 0xa0, B: 0xff}); got != "#0BA0FF" {
		t.Errorf("hex = %q", got)
	}
}
