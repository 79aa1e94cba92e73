// Package term is the external facade: Create a Session, Feed it raw PTY
// bytes, Snapshot its grid for rendering, and Clear or Restart it. Every
// other package in this module is a collaborator the Session wires
// together; callers never need to reach into grid, vt, or trigger
// directly.
package term

import (
	"log"
	"time"

	"github.com/caioze/gridterm/internal/grid"
	"github.com/caioze/gridterm/internal/trigger"
	"github.com/caioze/gridterm/internal/vt"
)

// Cell mirrors grid.Cell for callers that should not need to import the
// internal grid package directly.
type Cell = grid.Cell

// Session owns one grid, its interpreter, and its pattern scanner.
type Session struct {
	grid    *grid.Grid
	interp  *vt.Interpreter
	scanner *trigger.Scanner

	rows, cols int
	patterns   []string

	debugLog *log.Logger
}

// EnableDebugLog turns on per-Feed-call diagnostic logging to l: one line
// per call recording the byte count fed in. It is opt-in and has no
// effect on grid state; pass nil to turn logging back off.
func (s *Session) EnableDebugLog(l *log.Logger) {
	s.debugLog = l
}

// Create allocates a Session with a rows x cols grid and the given
// auto-restart success patterns. Pattern matching only activates once the
// first Feed call establishes the startup instant; an empty patterns list
// disables the scanner entirely.
func Create(rows, cols int, patterns []string) *Session {
	g := grid.New(rows, cols)
	return &Session{
		grid:     g,
		interp:   vt.New(g),
		rows:     rows,
		cols:     cols,
		patterns: append([]string(nil), patterns...),
	}
}

// Feed decodes raw shell output into the grid and returns any restart
// triggers this call produced. now is the caller-supplied clock reading
// used for the pattern scanner's startup grace and is expected to be
// monotonic across a Session's lifetime.
func (s *Session) Feed(data string, now time.Time) []Trigger {
	if s.debugLog != nil {
		s.debugLog.Printf("feed: %d bytes", len(data))
	}
	s.interp.Feed(data)

	if s.scanner == nil {
		if len(s.patterns) == 0 {
			return nil
		}
		s.scanner = trigger.New(s.patterns, now)
	}

	plain := trigger.StripANSI(data)
	if s.scanner.Feed(plain, now) {
		return []Trigger{RestartRequested}
	}
	return nil
}

// Trigger identifies an event the session surfaces for the caller to act
// on — currently only a pattern-driven restart request.
type Trigger int

const (
	// RestartRequested fires at most once until the next Restart (Clear
	// does not re-arm it) once the configured success patterns have been
	// seen hitThreshold times past the startup grace window.
	RestartRequested Trigger = iota
)

// Snapshot is a read-only view of the grid's current state.
type Snapshot struct {
	Rows, Cols int
	Cells      [][]Cell
	CursorRow  int
	CursorCol  int
}

// Snapshot copies the full grid for rendering. The returned value shares
// no state with the Session; mutating it has no effect.
func (s *Session) Snapshot() Snapshot {
	rows := make([][]Cell, s.rows)
	for r := 0; r < s.rows; r++ {
		rows[r] = s.grid.Row(r)
	}
	row, col := s.grid.Cursor()
	return Snapshot{Rows: s.rows, Cols: s.cols, Cells: rows, CursorRow: row, CursorCol: col}
}

// Clear resets the grid to blank and homes the cursor, the effect of an
// ED(2)/ED(3) full-screen erase. It does not reset the pattern scanner's
// startup grace or hit count — those only reset via Restart, mirroring a
// full session recreation rather than an in-place screen clear.
func (s *Session) Clear() {
	s.grid.ClearScreen()
}

// Restart fully re-homes the session for a freshly spawned child: it
// clears the grid and, if a scanner exists, resets its startup grace and
// hit count as of now so the new process gets its own 5-second grace
// window rather than inheriting the old one.
func (s *Session) Restart(now time.Time) {
	s.grid.ClearScreen()
	if s.scanner != nil {
		s.scanner.Reset(now)
	}
}

// Rows and Cols report the fixed grid dimensions this Session was created
// with.
func (s *Session) Rows() int { return s.rows }
func (s *Session) Cols() int { return s.cols }
