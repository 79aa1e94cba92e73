package vt

import (
	"testing"

	"github.com/caioze/gridterm/internal/grid"
	"github.com/caioze/gridterm/internal/palette"
)

func plainRow(g *grid.Grid, row int) string {
	cells := g.Row(row)
	out := make([]rune, 0, len(cells))
	for _, c := range cells {
		ch := c.Char
		if ch == grid.Sentinel {
			ch = ' '
		}
		out = append(out, ch)
	}
	return string(out)
}

func TestInterpreter_CUPThenShortWriteErasesTail(t *testing.T) {
	g := grid.New(2, 10)
	in := New(g)
	in.Feed("OLDTEXT123")
	in.Feed("\x1b[1;1HNEW")

	if got := plainRow(g, 0); got != "NEW       " {
		t.Errorf("row0 = %q, want \"NEW       \"", got)
	}
}

func TestInterpreter_RelativeCursorMoves(t *testing.T) {
	g := grid.New(5, 10)
	in := New(g)
	in.Feed("\x1b[3;3H")
	in.Feed("\x1b[2A\x1b[4C")

	row, col := g.Cursor()
	if row != 0 || col != 6 {
		t.Errorf("cursor = (%d,%d), want (0,6)", row, col)
	}
}

func TestInterpreter_EDFullClear(t *testing.T) {
	g := grid.New(2, 4)
	in := New(g)
	in.Feed("ABCD\x1b[2J")

	if got := plainRow(g, 0); got != "    " {
		t.Errorf("row0 = %q, want blank", got)
	}
	row, col := g.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", row, col)
	}
}

func TestInterpreter_ED0ClearsCursorToScreenEnd(t *testing.T) {
	g := grid.New(3, 4)
	in := New(g)
	in.Feed("ABCD\r\nEFGH\r\nIJKL")
	in.Feed("\x1b[2;3H\x1b[0J")

	if got := plainRow(g, 0); got != "ABCD" {
		t.Errorf("row0 = %q, want untouched ABCD", got)
	}
	if got := plainRow(g, 1); got != "EF  " {
		t.Errorf("row1 = %q, want \"EF  \"", got)
	}
	if got := plainRow(g, 2); got != "    " {
		t.Errorf("row2 = %q, want fully cleared", got)
	}
}

func TestInterpreter_ED1ClearsScreenStartToCursor(t *testing.T) {
	g := grid.New(3, 4)
	in := New(g)
	in.Feed("ABCD\r\nEFGH\r\nIJKL")
	in.Feed("\x1b[2;3H\x1b[1J")

	if got := plainRow(g, 0); got != "    " {
		t.Errorf("row0 = %q, want fully cleared", got)
	}
	if got := plainRow(g, 1); got != "   H" {
		t.Errorf("row1 = %q, want \"   H\" (cleared through cursor inclusive)", got)
	}
	if got := plainRow(g, 2); got != "IJKL" {
		t.Errorf("row2 = %q, want untouched IJKL", got)
	}
}

func TestInterpreter_EL0ClearsCursorToEOL(t *testing.T) {
	g := grid.New(1, 8)
	in := New(g)
	in.Feed("ABCDEFGH")
	in.Feed("\x1b[1;3H\x1b[0K")

	if got := plainRow(g, 0); got != "AB      " {
		t.Errorf("row0 = %q, want \"AB      \"", got)
	}
}

func TestInterpreter_EL1ClearsBOLToCursorInclusive(t *testing.T) {
	g := grid.New(1, 8)
	in := New(g)
	in.Feed("ABCDEFGH")
	in.Feed("\x1b[1;3H\x1b[1K")

	if got := plainRow(g, 0); got != "   DEFGH" {
		t.Errorf("row0 = %q, want \"   DEFGH\"", got)
	}
}

func TestInterpreter_EL2ClearsEntireLine(t *testing.T) {
	g := grid.New(1, 8)
	in := New(g)
	in.Feed("ABCDEFGH")
	in.Feed("\x1b[1;3H\x1b[2K")

	if got := plainRow(g, 0); got != "        " {
		t.Errorf("row0 = %q, want fully blank", got)
	}
}

func TestInterpreter_ECHDoesNotMoveCursor(t *testing.T) {
	g := grid.New(1, 8)
	in := New(g)
	in.Feed("ABCDEFGH")
	in.Feed("\x1b[1;3H\x1b[3X")

	if got := plainRow(g, 0); got != "AB   FGH" {
		t.Errorf("row0 = %q, want \"AB   FGH\"", got)
	}
	row, col := g.Cursor()
	if row != 0 || col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", row, col)
	}
}

func TestInterpreter_SGRStandardForeground(t *testing.T) {
	g := grid.New(1, 3)
	in := New(g)
	in.Feed("\x1b[31mR")

	c := g.CellAt(0, 0)
	if c.Color != palette.Frappe.Red {
		t.Errorf("color = %+v, want Frappe.Red", c.Color)
	}
}

func TestInterpreter_SGRWhiteUsesThemeTextNotAnsi256Slot7(t *testing.T) {
	g := grid.New(1, 3)
	in := New(g)
	in.Feed("\x1b[37mW")

	c := g.CellAt(0, 0)
	if c.Color != palette.Frappe.Text {
		t.Errorf("color = %+v, want Frappe.Text", c.Color)
	}
	if c.Color == palette.ANSI256ToRGB(7) {
		t.Errorf("SGR white must not equal ANSI-256 slot 7 (%+v)", palette.ANSI256ToRGB(7))
	}
}

func TestInterpreter_SGRBrightWhiteUsesThemeText(t *testing.T) {
	g := grid.New(1, 3)
	in := New(g)
	in.Feed("\x1b[97mW")

	c := g.CellAt(0, 0)
	if c.Color != palette.Frappe.Text {
		t.Errorf("color = %+v, want Frappe.Text", c.Color)
	}
}

func TestInterpreter_SGRTrueColorSubformIsNoOp(t *testing.T) {
	g := grid.New(1, 3)
	in := New(g)
	in.Feed("\x1b[31m")
	in.Feed("\x1b[38;2;10;20;30mX")

	c := g.CellAt(0, 0)
	if c.Color != palette.Frappe.Red {
		t.Errorf("color = %+v, want unchanged Frappe.Red (38;2 must be a no-op)", c.Color)
	}
}

func TestInterpreter_SGR256ColorExtended(t *testing.T) {
	g := grid.New(1, 3)
	in := New(g)
	in.Feed("\x1b[38;5;196mX")

	c := g.CellAt(0, 0)
	want := palette.ANSI256ToRGB(196)
	if c.Color != want {
		t.Errorf("color = %+v, want %+v", c.Color, want)
	}
}

func TestInterpreter_SGRBoldThenReset(t *testing.T) {
	g := grid.New(1, 3)
	in := New(g)
	in.Feed("\x1b[1mB")
	if !g.CellAt(0, 0).Bold {
		t.Fatalf("first cell should be bold")
	}
	in.Feed("\x1b[0mN")
	if g.CellAt(0, 1).Bold {
		t.Errorf("cell after reset should not be bold")
	}
	if g.CellAt(0, 1).Color != palette.Frappe.Text {
		t.Errorf("color after reset = %+v, want Frappe.Text", g.CellAt(0, 1).Color)
	}
}

func TestInterpreter_SplitAcrossFeedCallsMatchesOneShot(t *testing.T) {
	g1 := grid.New(1, 10)
	in1 := New(g1)
	in1.Feed("\x1b[31mHello")

	g2 := grid.New(1, 10)
	in2 := New(g2)
	in2.Feed("\x1b[3")
	in2.Feed("1mHe")
	in2.Feed("llo")

	for col := 0; col < 5; col++ {
		if g1.CellAt(0, col) != g2.CellAt(0, col) {
			t.Errorf("col %d: one-shot = %+v, split = %+v", col, g1.CellAt(0, col), g2.CellAt(0, col))
		}
	}
}
