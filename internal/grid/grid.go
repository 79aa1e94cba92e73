// Package grid implements the fixed-size terminal cell buffer: the Cell
// and Grid data model, cursor state, and the primitive edits (move,
// clear, scroll, print-a-character) that the interpreter composes into
// full CSI/SGR semantics.
package grid

import (
	"image/color"
	"sync"
	"unicode"

	"github.com/caioze/gridterm/internal/cellwidth"
	"github.com/caioze/gridterm/internal/palette"
)

// Sentinel is the character value marking the trailing half of a wide
// glyph. A sentinel cell MUST NOT be rendered on its own; renderers treat
// it as a zero-width continuation of the preceding lead cell.
const Sentinel rune = 0

// Cell is one position on the terminal screen.
type Cell struct {
	Char  rune
	Color color.RGBA
	Bold  bool
}

func blankCell() Cell {
	return Cell{Char: ' ', Color: palette.Frappe.Text, Bold: false}
}

// Grid is a fixed rows x cols buffer of Cells plus the cursor state that
// governs how the next character is printed: position, current SGR
// attributes, and the two one-bit latches (wrap_pending,
// cursor_recently_positioned) that encode DEC autowrap and positioned-write
// semantics.
//
// A Grid is owned by exactly one session and is never concurrently
// accessed from more than one goroutine in the documented usage (§5 of
// the design), but the mutex is kept — matching the teacher's grid —
// so a renderer reading Snapshot concurrently with a feeder goroutine
// never races.
type Grid struct {
	mu sync.RWMutex

	rows, cols int
	cells      [][]Cell

	row, col int

	currentColor color.RGBA
	bold         bool

	cursorRecentlyPositioned bool
	wrapPending              bool
}

// New allocates a Grid of the given dimensions with every cell at its
// default value (space, theme text color, not bold).
func New(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = makeCells(rows, cols)
	g.currentColor = palette.Frappe.Text
	return g
}

func makeCells(rows, cols int) [][]Cell {
	cells := make([][]Cell, rows)
	for r := range cells {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = blankCell()
		}
		cells[r] = row
	}
	return cells
}

// Rows and Cols report the fixed dimensions.
func (g *Grid) Rows() int { g.mu.RLock(); defer g.mu.RUnlock(); return g.rows }
func (g *Grid) Cols() int { g.mu.RLock(); defer g.mu.RUnlock(); return g.cols }

// Cursor returns the current 0-indexed cursor position.
func (g *Grid) Cursor() (row, col int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.row, g.col
}

// WrapPending reports whether the next printable character will trigger
// a deferred DEC-autowrap line feed.
func (g *Grid) WrapPending() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.wrapPending
}

// CursorRecentlyPositioned reports whether an addressed cursor move has
// not yet been followed by a printable character.
func (g *Grid) CursorRecentlyPositioned() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cursorRecentlyPositioned
}

// CurrentColor and Bold report the SGR attributes that the next printed
// character will use.
func (g *Grid) CurrentColor() color.RGBA { g.mu.RLock(); defer g.mu.RUnlock(); return g.currentColor }
func (g *Grid) Bold() bool               { g.mu.RLock(); defer g.mu.RUnlock(); return g.bold }

// SetColor and SetBold update the SGR attributes applied to subsequently
// printed characters. They are exported for the interpreter's SGR
// dispatch; they never touch the cursor or latches.
func (g *Grid) SetColor(c color.RGBA) { g.mu.Lock(); defer g.mu.Unlock(); g.currentColor = c }
func (g *Grid) SetBold(b bool)        { g.mu.Lock(); defer g.mu.Unlock(); g.bold = b }

// ResetSGR resets the current color and bold attribute to their defaults,
// the behavior of a bare or zero SGR reset.
func (g *Grid) ResetSGR() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentColor = palette.Frappe.Text
	g.bold = false
}

// CellAt returns the cell at (row, col). Out-of-bounds coordinates return
// a blank cell rather than panicking.
func (g *Grid) CellAt(row, col int) Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return blankCell()
	}
	return g.cells[row][col]
}

// Row returns a copy of one full row, left to right.
func (g *Grid) Row(row int) []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if row < 0 || row >= g.rows {
		return nil
	}
	out := make([]Cell, g.cols)
	copy(out, g.cells[row])
	return out
}

// ---------------------------------------------------------------------
// Primitive edits (§4.3)
// ---------------------------------------------------------------------

// MoveTo clamps (row, col) into bounds, clears wrap_pending, and moves
// the cursor there. It does not touch cursor_recently_positioned —
// callers that implement an *addressed* move (CUP, CHA, VPA) set that
// latch themselves via MarkPositioned after calling MoveTo; relative
// moves (CUU/CUD/CUF/CUB) do not.
func (g *Grid) MoveTo(row, col int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moveToLocked(row, col)
}

func (g *Grid) moveToLocked(row, col int) {
	g.selfHealLocked()
	g.row = clamp(row, 0, g.rows-1)
	g.col = clamp(col, 0, g.cols-1)
	g.wrapPending = false
}

// MarkPositioned sets the cursor_recently_positioned latch, used by
// addressed cursor moves (CUP/CHA/VPA) to request an EOL clear on the
// next printed character.
func (g *Grid) MarkPositioned() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cursorRecentlyPositioned = true
}

// ClearScreen resets every cell to its default value and homes the
// cursor to (0, 0), clearing both latches.
func (g *Grid) ClearScreen() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = blankCell()
		}
	}
	g.row, g.col = 0, 0
	g.cursorRecentlyPositioned = false
	g.wrapPending = false
}

// ClearCellsFromCursor overwrites up to n cells starting at the cursor,
// stopping at the end of the row.
func (g *Grid) ClearCellsFromCursor(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearRangeLocked(g.row, g.col, minInt(g.col+n, g.cols))
}

// ClearToEOLPreservingRightBorder clears from the cursor to the last
// column, except that if the last cell of the row holds a box-drawing
// glyph it is left untouched — TUI borders must survive an opportunistic
// clear.
func (g *Grid) ClearToEOLPreservingRightBorder() {
	g.mu.Lock()
	defer g.mu.Unlock()

	end := g.cols
	if g.cols > 0 {
		last := g.cells[g.row][g.cols-1]
		if isBoxDrawing(last.Char) {
			end = g.cols - 1
		}
	}
	g.clearRangeLocked(g.row, g.col, end)
}

// ClearLineFromCursor clears the current row from the cursor column
// through the last column (EL mode 0), with no box-drawing exception —
// that exception is specific to the positioned-write latch, not to EL.
func (g *Grid) ClearLineFromCursor() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearRangeLocked(g.row, g.col, g.cols)
}

// ClearLineToCursor clears the current row from column 0 through the
// cursor column, inclusive (EL mode 1).
func (g *Grid) ClearLineToCursor() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearRangeLocked(g.row, 0, minInt(g.col+1, g.cols))
}

// ClearLine clears every cell of the current row (EL mode 2).
func (g *Grid) ClearLine() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearRangeLocked(g.row, 0, g.cols)
}

// ClearFromCursorToScreenEnd clears the current row from the cursor
// column to its end, then clears every row below it entirely (ED
// mode 0).
func (g *Grid) ClearFromCursorToScreenEnd() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearRangeLocked(g.row, g.col, g.cols)
	for r := g.row + 1; r < g.rows; r++ {
		g.clearRangeLocked(r, 0, g.cols)
	}
}

// ClearFromScreenStartToCursor clears every row above the cursor's row
// entirely, then clears the current row from column 0 through the cursor
// column, inclusive (ED mode 1).
func (g *Grid) ClearFromScreenStartToCursor() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for r := 0; r < g.row; r++ {
		g.clearRangeLocked(r, 0, g.cols)
	}
	g.clearRangeLocked(g.row, 0, minInt(g.col+1, g.cols))
}

func (g *Grid) clearRangeLocked(row, from, to int) {
	if row < 0 || row >= g.rows {
		return
	}
	for c := from; c < to && c < g.cols; c++ {
		if c >= 0 {
			g.cells[row][c] = blankCell()
		}
	}
}

// ScrollUpOne drops row 0 and appends a blank row at the bottom. The
// cursor row is left unchanged by ScrollUpOne itself; callers that scroll
// as part of a line feed reposition the cursor to the last row.
func (g *Grid) ScrollUpOne() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scrollUpOneLocked()
}

func (g *Grid) scrollUpOneLocked() {
	if g.rows == 0 {
		return
	}
	copy(g.cells, g.cells[1:])
	blank := make([]Cell, g.cols)
	for c := range blank {
		blank[c] = blankCell()
	}
	g.cells[g.rows-1] = blank
}

// ---------------------------------------------------------------------
// C0 controls (§4.5)
// ---------------------------------------------------------------------

// Newline performs a line feed: column to 0, row down (scrolling if at
// the bottom row), clearing both latches.
func (g *Grid) Newline() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.col = 0
	g.row++
	if g.row >= g.rows {
		g.scrollUpOneLocked()
		g.row = g.rows - 1
	}
	g.cursorRecentlyPositioned = false
	g.wrapPending = false
}

// CarriageReturn moves to column 0 and sets cursor_recently_positioned —
// the latch that makes "CR then a shorter overwrite" erase the tail of
// the previous line.
func (g *Grid) CarriageReturn() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.col = 0
	g.cursorRecentlyPositioned = true
	g.wrapPending = false
}

// Tab advances the cursor to the next fixed 8-column stop, clamped to the
// last column.
func (g *Grid) Tab() {
	g.mu.Lock()
	defer g.mu.Unlock()
	next := ((g.col / 8) + 1) * 8
	g.col = minInt(next, g.cols-1)
}

// Backspace moves the cursor one column left without erasing, clearing
// wrap_pending.
func (g *Grid) Backspace() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.col > 0 {
		g.col--
	}
	g.wrapPending = false
}

// ---------------------------------------------------------------------
// Printing (§4.4)
// ---------------------------------------------------------------------

// WriteChar implements the full print algorithm: positioning-latch EOL
// clear, deferred autowrap, wide-glyph sentinel, and the box-drawing
// color override. Null characters and other C0 controls are ignored —
// callers route C0 bytes to Newline/CarriageReturn/Tab/Backspace instead.
func (g *Grid) WriteChar(ch rune) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selfHealLocked()

	if ch == Sentinel || ch < 0x20 {
		return
	}

	if g.cursorRecentlyPositioned && !unicode.IsSpace(ch) {
		end := g.cols
		if g.cols > 0 && isBoxDrawing(g.cells[g.row][g.cols-1].Char) {
			end = g.cols - 1
		}
		g.clearRangeLocked(g.row, g.col, end)
		g.cursorRecentlyPositioned = false
	}

	if g.wrapPending {
		g.lineFeedLocked()
	}

	w := cellwidth.Width(ch)
	if w != 1 && w != 2 {
		w = 1
	}
	if g.col+w > g.cols {
		g.lineFeedLocked()
	}

	effective := g.currentColor
	if isBoxDrawing(ch) {
		effective = palette.BoxDrawingColor
	}
	g.cells[g.row][g.col] = Cell{Char: ch, Color: effective, Bold: g.bold}

	if w == 2 && g.col+1 < g.cols {
		g.cells[g.row][g.col+1] = Cell{Char: Sentinel, Color: palette.Transparent, Bold: false}
	}

	next := g.col + w
	if next >= g.cols {
		g.col = g.cols - 1
		g.wrapPending = true
	} else {
		g.col = next
	}
}

// lineFeedLocked is Newline's body without re-acquiring the mutex, used
// internally by WriteChar's autowrap path.
func (g *Grid) lineFeedLocked() {
	g.col = 0
	g.row++
	if g.row >= g.rows {
		g.scrollUpOneLocked()
		g.row = g.rows - 1
	}
	g.cursorRecentlyPositioned = false
	g.wrapPending = false
}

// ---------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------

// isBoxDrawing reports whether ch is a box-drawing glyph: U+2500..U+257F
// or the ASCII pipe used for ad-hoc TUI borders.
func isBoxDrawing(ch rune) bool {
	return (ch >= 0x2500 && ch <= 0x257F) || ch == '|'
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// selfHealLocked rebuilds the grid to blank rows x cols and homes the
// cursor if a structural inconsistency is detected (row count or width
// drift). This is a last-resort guard: correct callers never trigger it.
func (g *Grid) selfHealLocked() {
	if len(g.cells) == g.rows && (g.rows == 0 || len(g.cells[0]) == g.cols) {
		return
	}
	g.cells = makeCells(g.rows, g.cols)
	g.row, g.col = 0, 0
	g.cursorRecentlyPositioned = false
	g.wrapPending = false
}
