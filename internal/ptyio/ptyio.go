// Package ptyio spawns a shell under a pseudo-terminal sized to match a
// grid, giving the session facade something to Feed from and Write
// keystrokes to.
package ptyio

import (
	"io"
	"os"
	"os/exec"
	"os/user"
	"sync"
	"syscall"

	"github.com/creack/pty"
)

// Session owns one spawned shell process and its PTY master.
type Session struct {
	cmd *exec.Cmd
	pty *os.File

	mu     sync.Mutex
	exited bool
}

// Start spawns an interactive (non-login) shell under a PTY of the given
// size.
// The shell is resolved from $SHELL, falling back to common paths.
func Start(rows, cols int) (*Session, error) {
	shell := findShell()

	cmd := exec.Command(shell, "-i")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Env = buildEnv(shell)

	if u, err := user.Current(); err == nil {
		cmd.Dir = u.HomeDir
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, err
	}

	s := &Session{cmd: cmd, pty: ptmx}
	go func() {
		cmd.Wait()
		s.mu.Lock()
		s.exited = true
		s.mu.Unlock()
	}()
	return s, nil
}

func findShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		if _, err := os.Stat(sh); err == nil {
			return sh
		}
	}
	for _, candidate := range []string{"/bin/bash", "/usr/bin/bash", "/bin/zsh", "/bin/sh"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "/bin/sh"
}

func buildEnv(shell string) []string {
	env := []string{
		"PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin:" + os.Getenv("PATH"),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
		"GRIDTERM=1",
		"SHELL=" + shell,
		"LANG=en_US.UTF-8",
	}
	if u, err := user.Current(); err == nil {
		env = append(env, "HOME="+u.HomeDir, "USER="+u.Username)
	}
	return env
}

// Read reads raw bytes from the PTY master.
func (s *Session) Read(buf []byte) (int, error) { return s.pty.Read(buf) }

// Write sends keystrokes to the shell.
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pty.Write(data)
}

// Resize informs the PTY (and the shell's SIGWINCH handler) of a new grid
// size.
func (s *Session) Resize(rows, cols int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pty.Setsize(s.pty, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// HasExited reports whether the shell process has terminated.
func (s *Session) HasExited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exited
}

// Close kills the shell process and closes the PTY master.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.pty.Close()
}

// Reader and Writer expose the PTY master as plain io interfaces for
// callers that want to use io.Copy directly.
func (s *Session) Reader() io.Reader { return s.pty }
func (s *Session) Writer() io.Writer { return s.pty }
