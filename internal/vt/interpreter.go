// Package vt is the interpreter: it drives an ansiparse.Parser over raw
// input bytes and turns the resulting events into grid.Grid method calls,
// owning CSI dispatch and SGR attribute handling.
package vt

import (
	"image/color"

	"github.com/caioze/gridterm/internal/ansiparse"
	"github.com/caioze/gridterm/internal/grid"
	"github.com/caioze/gridterm/internal/palette"
)

// Interpreter couples a Parser with a Grid, translating the parser's
// event stream into grid edits.
type Interpreter struct {
	parser *ansiparse.Parser
	grid   *grid.Grid
	events []ansiparse.Event
}

// New returns an Interpreter writing into g.
func New(g *grid.Grid) *Interpreter {
	return &Interpreter{parser: ansiparse.New(), grid: g}
}

// Feed decodes s rune by rune, dispatching every resulting event to the
// grid. Feeding the same bytes split across multiple Feed calls produces
// the same grid state as feeding them in one call, since the underlying
// parser is atomic across call boundaries.
func (in *Interpreter) Feed(s string) {
	in.events = in.events[:0]
	for _, r := range s {
		in.events = in.parser.Feed(r, in.events)
	}
	for _, ev := range in.events {
		in.dispatch(ev)
	}
}

func (in *Interpreter) dispatch(ev ansiparse.Event) {
	switch ev.Kind {
	case ansiparse.EventPrint:
		in.grid.WriteChar(ev.Ch)
	case ansiparse.EventExecute:
		in.dispatchC0(ev.Ch)
	case ansiparse.EventCSI:
		in.dispatchCSI(ev.Final, ev.Params)
	}
}

func (in *Interpreter) dispatchC0(ch rune) {
	switch ch {
	case '\n', '\v', '\f':
		in.grid.Newline()
	case '\r':
		in.grid.CarriageReturn()
	case '\t':
		in.grid.Tab()
	case '\b':
		in.grid.Backspace()
	case '\a':
		// Bell: no visual effect on the grid.
	default:
		// Unhandled C0 control, ignored.
	}
}

func (in *Interpreter) dispatchCSI(final byte, params []ansiparse.Param) {
	p := func(index, def int) int { return ansiparse.ParamOr(params, index, def) }

	switch final {
	case 'A': // CUU - cursor up
		row, col := in.grid.Cursor()
		in.grid.MoveTo(row-p(0, 1), col)
	case 'B': // CUD - cursor down
		row, col := in.grid.Cursor()
		in.grid.MoveTo(row+p(0, 1), col)
	case 'C': // CUF - cursor forward
		row, col := in.grid.Cursor()
		in.grid.MoveTo(row, col+p(0, 1))
	case 'D': // CUB - cursor back
		row, col := in.grid.Cursor()
		in.grid.MoveTo(row, col-p(0, 1))
	case 'G': // CHA - cursor horizontal absolute (1-indexed)
		row, _ := in.grid.Cursor()
		in.grid.MoveTo(row, p(0, 1)-1)
		in.grid.MarkPositioned()
	case 'd': // VPA - vertical position absolute (1-indexed)
		_, col := in.grid.Cursor()
		in.grid.MoveTo(p(0, 1)-1, col)
		in.grid.MarkPositioned()
	case 'H', 'f': // CUP/HVP - cursor position (1-indexed row;col)
		in.grid.MoveTo(p(0, 1)-1, p(1, 1)-1)
		in.grid.MarkPositioned()
	case 'J': // ED - erase in display
		switch p(0, 0) {
		case 1:
			in.grid.ClearFromScreenStartToCursor()
		case 2, 3:
			in.grid.ClearScreen()
		default:
			in.grid.ClearFromCursorToScreenEnd()
		}
	case 'K': // EL - erase in line
		switch p(0, 0) {
		case 1:
			in.grid.ClearLineToCursor()
		case 2:
			in.grid.ClearLine()
		default:
			in.grid.ClearLineFromCursor()
		}
	case 'X': // ECH - erase n characters without moving the cursor
		in.grid.ClearCellsFromCursor(p(0, 1))
	case 'm': // SGR
		applySGR(in.grid, params)
	case 'h', 'l', 'n', 'c', 't', 'q', 'r', 's', 'u':
		// Mode toggles, device reports, scroll regions, cursor save/restore:
		// out of scope for the grid model, accepted and ignored.
	}
}

// sgrDark is the SGR 30-36 foreground mapping from §4.8: black, red,
// green, yellow, blue, magenta, cyan. It is distinct from palette's
// ANSI-256 16-slot table (ansi16) at white: SGR has no separate entry
// for white here because 37/97 map straight to Frappe.Text.
var sgrDark = [7]color.RGBA{
	palette.Frappe.Surface1, // 0 black
	palette.Frappe.Red,      // 1 red
	palette.Frappe.Green,    // 2 green
	palette.Frappe.Yellow,   // 3 yellow
	palette.Frappe.Blue,     // 4 blue
	palette.Frappe.Mauve,    // 5 magenta
	palette.Frappe.Teal,     // 6 cyan
}

// applySGR walks an SGR parameter list, mutating the grid's current color
// and bold attribute. An empty list is treated as a bare reset (SGR 0).
func applySGR(g *grid.Grid, params []ansiparse.Param) {
	if len(params) == 0 {
		g.ResetSGR()
		return
	}

	for i := 0; i < len(params); i++ {
		n := ansiparse.ParamOr(params, i, 0)
		switch {
		case n == 0:
			g.ResetSGR()
		case n == 1:
			g.SetBold(true)
		case n == 22:
			g.SetBold(false)
		case n == 37:
			// SGR white is the theme's plain text color, distinct from
			// ANSI-256 slot 7 (Frappe.Subtext1).
			g.SetColor(palette.Frappe.Text)
		case n >= 30 && n <= 36:
			g.SetColor(sgrDark[n-30])
		case n == 97:
			g.SetColor(palette.Frappe.Text)
		case n == 90:
			g.SetColor(palette.Frappe.Surface2)
		case n >= 91 && n <= 96:
			g.SetColor(sgrDark[n-90])
		case n == 39:
			g.SetColor(palette.Frappe.Text)
		case n == 38:
			// Only the extended 256-color subform is supported; any other
			// subform is a no-op. For truecolor 38;2;R;G;B the three color
			// components are skipped so they are not read as SGR codes.
			if i+2 < len(params) && ansiparse.ParamOr(params, i+1, -1) == 5 {
				idx := ansiparse.ParamOr(params, i+2, -1)
				if idx >= 0 && idx <= 255 {
					g.SetColor(palette.ANSI256ToRGB(uint8(idx)))
				}
				i += 2
			} else if ansiparse.ParamOr(params, i+1, -1) == 2 {
				i += 4
			}
		}
	}
}
