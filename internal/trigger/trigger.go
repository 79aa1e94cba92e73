// Package trigger implements pattern-triggered restart detection: it
// watches the plain-text projection of terminal output for configured
// success markers and signals a restart once enough of them have been
// seen past an initial startup grace window.
package trigger

import "time"

// startupGrace is how long after a Scanner is created (or reset) incoming
// text is exempt from pattern matching, so that a shell's startup banner
// or menu cannot itself look like a success marker.
const startupGrace = 5 * time.Second

// hitThreshold is the cumulative number of pattern occurrences, across
// any configured pattern, required before a restart is requested. A
// single match is treated as too easily spurious.
const hitThreshold = 2

// Scanner accumulates pattern hits over a sequence of Feed calls and
// reports, once per lifetime, that a restart has been earned.
type Scanner struct {
	patterns  []string
	start     time.Time
	hits      int
	triggered bool
}

// New returns a Scanner watching for patterns, with its startup grace
// window beginning at now.
func New(patterns []string, now time.Time) *Scanner {
	cp := make([]string, len(patterns))
	copy(cp, patterns)
	return &Scanner{patterns: cp, start: now}
}

// Reset restarts the grace window and hit counter as of now and clears
// the triggered flag, mirroring a full session restart rather than a
// screen clear.
func (s *Scanner) Reset(now time.Time) {
	s.start = now
	s.hits = 0
	s.triggered = false
}

// Feed scans plainText (already stripped of ANSI sequences — see
// StripANSI) for configured patterns and reports whether this call is
// the one that crossed the hit threshold. Once triggered, a Scanner
// never triggers again until Reset.
func (s *Scanner) Feed(plainText string, now time.Time) bool {
	if s.triggered || len(s.patterns) == 0 {
		return false
	}
	if now.Sub(s.start) < startupGrace {
		return false
	}
	for _, pattern := range s.patterns {
		if pattern == "" {
			continue
		}
		if n := countPattern(plainText, pattern); n > 0 {
			s.hits += n
			if s.hits >= hitThreshold {
				s.triggered = true
				return true
			}
		}
	}
	return false
}

// Triggered reports whether a restart has already been requested since
// the last Reset.
func (s *Scanner) Triggered() bool {
	return s.triggered
}

// countPattern returns the number of non-overlapping occurrences of
// pattern in text.
func countPattern(text, pattern string) int {
	count := 0
	for i := 0; i+len(pattern) <= len(text); {
		if text[i:i+len(pattern)] == pattern {
			count++
			i += len(pattern)
		} else {
			i++
		}
	}
	return count
}

// StripANSI removes CSI escape sequences (ESC '[' ... final-byte) from s,
// leaving C0 controls and printable text untouched. It is the text
// projection pattern matching runs against, never the grid's own state.
func StripANSI(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	i := 0
	for i < len(runes) {
		ch := runes[i]
		if ch != 0x1B {
			out = append(out, ch)
			i++
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '[' {
			j := i + 2
			for j < len(runes) && !isAlphaOrTilde(runes[j]) {
				j++
			}
			if j < len(runes) {
				j++ // consume the final byte itself
			}
			i = j
			continue
		}
		out = append(out, ch)
		i++
	}
	return string(out)
}

func isAlphaOrTilde(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '~'
}
