// Command ravenfeed drives a Session from a real PTY-backed shell and
// prints the rendered grid to stdout whenever the shell produces output,
// restarting the shell automatically when the configured success
// patterns are seen.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caioze/gridterm/internal/config"
	"github.com/caioze/gridterm/internal/ptyio"
	"github.com/caioze/gridterm/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("ravenfeed: loading config: %v", err)
	}

	session := term.Create(cfg.Rows, cfg.Cols, cfg.SuccessPatterns)

	pty, err := ptyio.Start(cfg.Rows, cfg.Cols)
	if err != nil {
		log.Fatalf("ravenfeed: starting shell: %v", err)
	}
	defer pty.Close()

	buf := make([]byte, 4096)
	for {
		n, err := pty.Read(buf)
		if n > 0 {
			triggers := session.Feed(string(buf[:n]), time.Now())
			render(session)
			for _, tr := range triggers {
				if tr == term.RestartRequested {
					log.Println("ravenfeed: success pattern matched, restarting shell")
					pty.Close()
					session.Restart(time.Now())
					pty, err = ptyio.Start(cfg.Rows, cfg.Cols)
					if err != nil {
						log.Fatalf("ravenfeed: restarting shell: %v", err)
					}
				}
			}
		}
		if err != nil {
			if pty.HasExited() {
				return
			}
			log.Printf("ravenfeed: read error: %v", err)
			return
		}
	}
}

func render(s *term.Session) {
	snap := s.Snapshot()
	var b strings.Builder
	for _, row := range snap.Cells {
		for _, c := range row {
			if c.Char == 0 {
				continue
			}
			b.WriteRune(c.Char)
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(os.Stdout, "\x1b[H\x1b[2J", b.String())
}
