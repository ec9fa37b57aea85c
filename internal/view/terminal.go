package view

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/xpty"

	"github.com/stripdeck/stripdeck/internal/geometry"
	"github.com/stripdeck/stripdeck/internal/strip"
	"github.com/stripdeck/stripdeck/internal/theme"
)

// TerminalView runs a shell in a PTY and renders the tail of its output
// inside the tile. Terminal items keep the view alive when scrolled cold
// so the shell keeps running off-screen.
type TerminalView struct {
	base
	shell     string
	tailLines int
	session   *session
}

// NewTerminalView creates an unbound terminal view. The shell override
// may be empty, in which case $SHELL and platform fallbacks apply.
func NewTerminalView(shell string, tailLines int) *TerminalView {
	if tailLines <= 0 {
		tailLines = 500
	}
	return &TerminalView{
		base:      base{category: strip.CategoryTerminal},
		shell:     shell,
		tailLines: tailLines,
	}
}

// ConfigureWithItem binds the item and starts the shell session if none
// is running. A reattached keep-alive view is not reconfigured, so its
// running session survives cold round trips.
func (v *TerminalView) ConfigureWithItem(item *strip.Item) {
	v.base.ConfigureWithItem(item)
	if v.session == nil {
		w, h := v.ptySize()
		v.session = startSession(resolveShell(v.shell), item.ID, w, h, v.tailLines)
	}
}

// SetFrame repositions the tile and resizes the PTY to match.
func (v *TerminalView) SetFrame(frame geometry.Rect) {
	v.base.SetFrame(frame)
	if v.session != nil {
		w, h := v.ptySize()
		v.session.resize(w, h)
	}
}

// Suspend tears the shell down. Keep-alive views are detached instead of
// suspended, so this only runs on removal or when keep-alive is off.
func (v *TerminalView) Suspend() {
	v.base.Suspend()
	v.closeSession()
}

// ResetForReuse clears bindings and any session left behind.
func (v *TerminalView) ResetForReuse() {
	v.base.ResetForReuse()
	v.closeSession()
}

// Running reports whether the shell process is still alive.
func (v *TerminalView) Running() bool {
	return v.session != nil && !v.session.exited()
}

// SendInput writes keystrokes to the shell.
func (v *TerminalView) SendInput(data []byte) {
	if v.session != nil {
		v.session.write(data)
	}
}

// Render draws the output tail inside the tile frame.
func (v *TerminalView) Render() string {
	w, h := v.innerSize()
	if w == 0 || h == 0 {
		return ""
	}

	title := ""
	if v.item != nil {
		title = v.item.Title
	}
	header := theme.TitleStyle(v.fontSize).
		Render(theme.CategoryIcon(strip.CategoryTerminal) + " " + title)

	var lines []string
	if v.session != nil {
		lines = v.session.tail(h - 1)
		if v.session.exited() {
			lines = append(lines, theme.AccentStyle().Render("[exited]"))
		}
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > w {
			lines[i] = ansi.Truncate(line, w, "…")
		}
	}

	inner := lipgloss.NewStyle().
		Width(w).
		Height(h).
		MaxHeight(h).
		Render(header + "\n" + strings.Join(lines, "\n"))

	return theme.TileStyle(v.focused, v.throttled()).Render(inner)
}

func (v *TerminalView) closeSession() {
	if v.session != nil {
		v.session.close()
		v.session = nil
	}
}

func (v *TerminalView) ptySize() (w, h int) {
	w, h = v.innerSize()
	if w < 1 {
		w = 1
	}
	h--
	if h < 1 {
		h = 1
	}
	return w, h
}

// session owns the PTY, the shell process, and the output tail buffer.
type session struct {
	pty    xpty.Pty
	cmd    *exec.Cmd
	cancel context.CancelFunc

	mu      sync.Mutex
	lines   []string
	max     int
	partial string
	done    bool
}

func startSession(shell, itemID string, width, height, maxLines int) *session {
	pty, err := xpty.NewPty(width, height)
	if err != nil {
		return nil
	}

	termType, colorTerm := terminalEnv()
	// #nosec G204 - the shell is deliberately user-controlled
	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(),
		"TERM="+termType,
		"STRIPDECK_TILE_ID="+itemID,
	)
	if colorTerm != "" {
		cmd.Env = append(cmd.Env, "COLORTERM="+colorTerm)
	}

	if err := pty.Start(cmd); err != nil {
		_ = pty.Close()
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &session{pty: pty, cmd: cmd, cancel: cancel, max: maxLines}

	go s.readLoop()
	go func() {
		_ = xpty.WaitProcess(ctx, cmd)
		s.mu.Lock()
		s.done = true
		s.mu.Unlock()
	}()

	return s
}

func (s *session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.append(string(buf[:n]))
		}
		if err != nil {
			return
		}
	}
}

// append folds raw PTY output into the line tail. Escape sequences are
// stripped; this is a scrollback tail, not an emulator.
func (s *session) append(chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := s.partial + ansi.Strip(chunk)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	parts := strings.Split(text, "\n")
	s.partial = parts[len(parts)-1]
	s.lines = append(s.lines, parts[:len(parts)-1]...)
	if len(s.lines) > s.max {
		s.lines = s.lines[len(s.lines)-s.max:]
	}
}

// tail returns the last n complete lines plus any partial line.
func (s *session) tail(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.lines
	if s.partial != "" {
		lines = append(lines[:len(lines):len(lines)], s.partial)
	}
	if n < 0 {
		n = 0
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

func (s *session) write(data []byte) {
	_, _ = s.pty.Write(data)
}

func (s *session) resize(w, h int) {
	_ = s.pty.Resize(w, h)
}

func (s *session) exited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *session) close() {
	s.cancel()
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.pty.Close()
}

func resolveShell(override string) string {
	if override != "" {
		return override
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}
	for _, candidate := range []string{"/bin/bash", "/bin/zsh", "/bin/sh"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "/bin/sh"
}

var (
	envOnce  sync.Once
	envTerm  string
	envColor string
)

// terminalEnv derives TERM and COLORTERM for child shells from the host
// terminal's capabilities. Detected once per process.
func terminalEnv() (termType, colorTerm string) {
	envOnce.Do(func() {
		profile := colorprofile.Detect(os.Stdout, os.Environ())
		parent := os.Getenv("TERM")
		switch profile {
		case colorprofile.TrueColor:
			envTerm = "xterm-256color"
			if strings.Contains(parent, "256color") || parent == "alacritty" || parent == "kitty" {
				envTerm = parent
			}
			envColor = "truecolor"
		case colorprofile.ANSI256:
			envTerm = "xterm-256color"
			if strings.HasPrefix(parent, "screen") {
				envTerm = "screen-256color"
			} else if strings.HasPrefix(parent, "tmux") {
				envTerm = "tmux-256color"
			}
		case colorprofile.ANSI:
			envTerm = "xterm"
			if parent != "" && parent != "dumb" {
				envTerm = parent
			}
		default:
			envTerm = "dumb"
		}
	})
	return envTerm, envColor
}
