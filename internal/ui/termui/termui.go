// Package termui draws component UIs onto a terminal through tcell.
//
// The surface is read-only: it is fed by a ui.TextUI without an input script,
// so widgets render their current value and never report a change.
package termui

import (
	"context"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/specialistvlad/componentui/internal/ui"
)

// Surface is an io.Writer that places each written line on the next screen row.
type Surface struct {
	mu     sync.Mutex
	screen tcell.Screen
	row    int

	normal tcell.Style
	weak   tcell.Style
	errorS tcell.Style
}

// Open creates and initializes a surface on the controlling terminal.
func Open() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen), nil
}

// New wraps an already initialized screen.
func New(screen tcell.Screen) *Surface {
	return &Surface{
		screen: screen,
		normal: tcell.StyleDefault,
		weak:   tcell.StyleDefault.Dim(true),
		errorS: tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

// UI returns a read-only ui.UI drawing onto this surface.
func (s *Surface) UI() *ui.TextUI {
	return ui.NewTextUI(s, nil)
}

// Write implements io.Writer. Lines past the bottom of the screen are dropped.
func (s *Surface) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(text, "\n") {
		s.drawLine(line)
	}
	return len(p), nil
}

func (s *Surface) styleFor(line string) tcell.Style {
	trimmed := strings.TrimLeft(line, " ")
	switch {
	case strings.HasPrefix(trimmed, "error:"), strings.Contains(trimmed, ": error:"):
		return s.errorS
	case strings.HasPrefix(trimmed, "("), strings.HasSuffix(trimmed, ")") && strings.Contains(trimmed, ": ("):
		return s.weak
	default:
		return s.normal
	}
}

func (s *Surface) drawLine(line string) {
	width, height := s.screen.Size()
	if s.row >= height {
		return
	}
	style := s.styleFor(line)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		s.screen.SetContent(x, s.row, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		s.screen.SetContent(x, s.row, ' ', nil, s.normal)
	}
	s.row++
}

// Rows returns how many rows have been drawn since the last Clear.
func (s *Surface) Rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.row
}

// Clear empties the screen and restarts drawing at the top row.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()
	s.row = 0
}

// Show flushes drawn content to the terminal.
func (s *Surface) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Show()
}

// Close restores the terminal.
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// WaitForKey blocks until Escape, Enter, 'q' or Ctrl-C is pressed, or ctx is done.
func (s *Surface) WaitForKey(ctx context.Context) {
	events := make(chan tcell.Event, 1)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				if _, resized := ev.(*tcell.EventResize); resized {
					s.Show()
				}
				continue
			}
			switch key.Key() {
			case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if key.Rune() == 'q' {
					return
				}
			}
		}
	}
}
