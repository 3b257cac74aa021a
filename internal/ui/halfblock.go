package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// upperHalf draws the top pixel in the foreground color and the bottom
// pixel in the background color.
const upperHalf = "▀"

// Minimum terminal size for the starfield view.
const (
	minCols = 20
	minRows = 6
)

// statusRows is the number of terminal rows reserved below the sky.
const statusRows = 2

// canvasSize returns the world size in pixels for a terminal of cols×rows
// cells. Each cell shows two vertically stacked pixels, each covering
// pixelsPerCell canvas pixels per side.
func canvasSize(cols, rows, pixelsPerCell int) (width, height int) {
	skyRows := max(0, rows-statusRows)
	return cols * pixelsPerCell, skyRows * 2 * pixelsPerCell
}

// downsample scales frame to cols × 2·skyRows pixels.
func downsample(frame image.Image, cols, skyRows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols, skyRows*2))
	if frame == nil || frame.Bounds().Empty() || dst.Bounds().Empty() {
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)
	return dst
}

// renderHalfBlocks turns img into rows of '▀' cells, two pixels per cell.
// Runs of identical cells share one style.
func renderHalfBlocks(img *image.RGBA) string {
	b := img.Bounds()
	var out strings.Builder

	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		var (
			run    int
			fg, bg color.RGBA
		)
		flush := func() {
			if run == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(fg))).
				Background(lipgloss.Color(hex(bg)))
			out.WriteString(style.Render(strings.Repeat(upperHalf, run)))
			run = 0
		}

		for x := b.Min.X; x < b.Max.X; x++ {
			top, bottom := img.RGBAAt(x, y), img.RGBAAt(x, y+1)
			if run > 0 && (top != fg || bottom != bg) {
				flush()
			}
			fg, bg = top, bottom
			run++
		}
		flush()

		if y+3 < b.Max.Y {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
