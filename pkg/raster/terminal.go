package raster

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	uv "github.com/charmbracelet/ultraviolet"
)

// unpack reverses pack: splits a 0x00RRGGBB color-buffer cell back into its
// channels.
func unpack(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 255,
	}
}

// DrawTerminal blits a color framebuffer to a terminal screen using the
// upper-half-block trick: each terminal cell covers two framebuffer rows,
// with the top row as foreground and the bottom row as background. The
// framebuffer height must be 2x the terminal area height.
//
// Raw() already returns rows top-first (Plot/At apply the y-flip that gives
// the framebuffer its bottom-left screen origin, so the backing slice is
// stored top row first), so this walks it directly rather than going
// through At/Plot per pixel.
func DrawTerminal(fb *Framebuffer[uint32], scr uv.Screen, area uv.Rectangle) {
	raw := fb.Raw()
	width := fb.Width()

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1
		if botY >= fb.Height() {
			break
		}

		for col := area.Min.X; col < area.Max.X && col < width; col++ {
			topColor := unpack(raw[topY*width+col])
			botColor := unpack(raw[botY*width+col])

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: topColor,
					Bg: botColor,
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// TerminalRenderer drives a full-screen half-block presentation without
// going through a uv.Screen: it writes true-color ANSI escapes straight to
// the terminal's output, double-buffered so a resize or a dropped frame
// never leaves stale escape sequences on screen. Each terminal row covers
// two framebuffer rows, so the backing framebuffer is always 2x the
// terminal area's height.
type TerminalRenderer struct {
	term   uv.Terminal
	cols   int
	rows   int
	buf    bytes.Buffer
	lastFg color.RGBA
	lastBg color.RGBA
	havePr bool
}

// NewTerminalRenderer creates a renderer targeting a cols x rows terminal
// area. term is kept only so callers can thread the same handle used for
// input/size events; output goes to os.Stdout directly.
func NewTerminalRenderer(term uv.Terminal, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{
		term: term,
		cols: cols,
		rows: rows,
	}
}

// FramebufferSize returns the pixel dimensions a Framebuffer passed to
// Render must have: one column per terminal column, two rows per terminal
// row.
func (t *TerminalRenderer) FramebufferSize() (int, int) {
	return t.cols, t.rows * 2
}

// Resize changes the terminal area a subsequent Render targets.
func (t *TerminalRenderer) Resize(cols, rows int) {
	t.cols = cols
	t.rows = rows
}

// Render encodes fb into the internal buffer as a grid of upper-half-block
// glyphs with 24-bit foreground/background escapes, collapsing runs of
// identical colors so a flat-shaded frame doesn't repeat an escape per
// cell. Nothing reaches the terminal until Flush.
func (t *TerminalRenderer) Render(fb *Framebuffer[uint32]) {
	t.buf.Reset()
	t.havePr = false

	raw := fb.Raw()
	width := fb.Width()

	fmt.Fprint(&t.buf, "\x1b[H")

	for row := 0; row < t.rows; row++ {
		topY := row * 2
		botY := topY + 1
		if botY >= fb.Height() {
			break
		}
		if row > 0 {
			fmt.Fprint(&t.buf, "\r\n")
		}

		for col := 0; col < t.cols && col < width; col++ {
			top := unpack(raw[topY*width+col])
			bot := unpack(raw[botY*width+col])
			t.writeCell(top, bot)
		}
	}
	fmt.Fprint(&t.buf, "\x1b[0m")
}

func (t *TerminalRenderer) writeCell(fg, bg color.RGBA) {
	if !t.havePr || fg != t.lastFg || bg != t.lastBg {
		fmt.Fprintf(&t.buf, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm",
			fg.R, fg.G, fg.B, bg.R, bg.G, bg.B)
		t.lastFg = fg
		t.lastBg = bg
		t.havePr = true
	}
	t.buf.WriteString("▀")
}

// Flush writes the buffered frame to standard output.
func (t *TerminalRenderer) Flush() error {
	_, err := os.Stdout.Write(t.buf.Bytes())
	return err
}
