package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// Live redraws the latest table in place at a fixed rate, independent of how
// often Update is called.
type Live struct {
	out      io.Writer
	interval time.Duration
	// Width returns the terminal width in columns; 0 means lines never wrap.
	Width func() int

	mu      sync.Mutex
	pending string
	dirty   bool
	lines   int
	frames  int
	stop    chan struct{}
	done    chan struct{}
	started bool
}

// NewLive creates a surface writing to out, redrawing every interval.
func NewLive(out io.Writer, interval time.Duration) *Live {
	return &Live{
		out:      out,
		interval: interval,
		Width:    func() int { return terminalWidth(out) },
	}
}

// Start draws the first frame and begins the redraw ticker.
func (l *Live) Start(first table.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.started = true
	l.queue(first)
	l.draw()

	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.loop(l.stop, l.done)
}

// Update queues t for the next redraw.
func (l *Live) Update(t table.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue(t)
}

// Stop draws the pending frame and stops redrawing.
func (l *Live) Stop() {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return
	}
	l.started = false
	stop, done := l.stop, l.done
	l.mu.Unlock()

	close(stop)
	<-done

	l.mu.Lock()
	defer l.mu.Unlock()
	l.draw()
}

// Frames returns how many tables have been handed to the surface.
func (l *Live) Frames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func (l *Live) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			l.draw()
			l.mu.Unlock()
		}
	}
}

func (l *Live) queue(t table.Writer) {
	l.frames++
	l.pending = t.Render() + "\n"
	l.dirty = true
}

// draw replaces the previous frame with the pending one. Callers hold mu.
func (l *Live) draw() {
	if !l.dirty {
		return
	}
	var b strings.Builder
	b.WriteString(ClearLines(l.lines))
	b.WriteString(l.pending)
	_, _ = io.WriteString(l.out, b.String())

	l.lines = VisibleLines(l.pending, l.Width())
	l.dirty = false
}

// ClearLines moves the cursor up n rows, erasing each one.
func ClearLines(n int) string {
	return strings.Repeat(text.CursorUp.Sprint()+text.EraseLine.Sprint(), n)
}

// VisibleLines counts the terminal rows s occupies, ignoring ANSI escapes and
// wrapping lines wider than width columns. A trailing newline ends the last
// row rather than starting a new one.
func VisibleLines(s string, width int) int {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return 0
	}
	rows := 0
	for _, line := range strings.Split(s, "\n") {
		cols := runewidth.StringWidth(text.StripEscape(line))
		if width > 0 && cols > width {
			rows += (cols + width - 1) / width
			continue
		}
		rows++
	}
	return rows
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return 0
	}
	return fdWidth(f.Fd())
}

// ConfigureColors turns ANSI colours off when f is not a terminal.
func ConfigureColors(f *os.File) bool {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	if tty {
		text.EnableColors()
	} else {
		text.DisableColors()
	}
	return tty
}

// Banner prints the startup line above the live area.
func Banner(out io.Writer, msg string) {
	fmt.Fprintln(out, text.Colors{text.Bold, text.FgYellow}.Sprint(msg))
}
