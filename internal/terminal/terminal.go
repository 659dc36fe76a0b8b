// Package terminal reads keyboard input from a tcell screen and writes
// plain text lines back to it.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/keynav/internal/input/key"
)

// Terminal wraps a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// New creates a terminal backed by the real tty.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewWithScreen wraps an existing screen, typically a simulation screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// ReadKey blocks until the next key event. It returns false once the
// screen has been shut down. Non-key events are skipped.
func (t *Terminal) ReadKey() (*key.Event, bool) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil, false
		}
		if ek, ok := ev.(*tcell.EventKey); ok {
			if out := ConvertKey(ek); out != nil {
				return out, true
			}
		}
	}
}

// DrawLines clears the screen and writes one line per row.
func (t *Terminal) DrawLines(lines []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	width, height := t.screen.Size()
	for y, line := range lines {
		if y >= height {
			break
		}
		x := 0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if x+w > width {
				break
			}
			t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x += w
		}
	}
	t.screen.Show()
}

// Beep rings the terminal bell.
func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}
