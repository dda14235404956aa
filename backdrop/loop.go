package backdrop

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg asks a running Loop to draw its next frame.
type FrameMsg struct {
	id   int
	gen  int
	Time time.Time
}

// Loop owns the frame schedule and pointer tracking for one backdrop.
// Start begins ticking; Stop ends it and detaches the loop from mouse
// messages. Resizes are applied in either state so a restarted loop draws
// on the current surface. Frames from a stopped or restarted loop are
// dropped.
type Loop struct {
	id      int
	gen     int
	running bool
	frames  int

	params  Params
	pointer Pointer
	surface Surface
	palette *palette
}

// New returns a stopped loop with the pointer off screen.
func New(p Params) Loop {
	p = p.withDefaults()
	return Loop{
		id:      nextID(),
		params:  p,
		pointer: Offscreen,
		palette: newPalette(p),
	}
}

// Start schedules the first frame. Calling it on a running loop is a no-op.
func (l *Loop) Start() tea.Cmd {
	if l.running {
		return nil
	}
	l.running = true
	l.gen++
	return l.tick()
}

// Stop halts the loop. Pending frames are invalidated and later mouse
// messages are ignored. Stop is idempotent.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.gen++
}

// Running reports whether frames are being scheduled.
func (l Loop) Running() bool { return l.running }

// Frames returns the number of frames drawn since New.
func (l Loop) Frames() int { return l.frames }

func (l Loop) Pointer() Pointer { return l.pointer }

func (l Loop) Surface() Surface { return l.surface }

func (l Loop) Params() Params { return l.params }

// Resize sets the drawing area in terminal cells.
func (l *Loop) Resize(cols, rows int) {
	l.surface = NewSurface(cols, rows, l.params)
}

// Update handles frame, mouse and resize messages.
func (l *Loop) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if !l.running || msg.id != l.id || msg.gen != l.gen {
			return nil
		}
		l.frames++
		return l.tick()

	case tea.MouseMsg:
		if !l.running {
			return nil
		}
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			l.pointer = PointerAt(msg.X, msg.Y, l.params)
		}

	case tea.WindowSizeMsg:
		l.Resize(msg.Width, msg.Height)
	}
	return nil
}

func (l Loop) tick() tea.Cmd {
	id, gen := l.id, l.gen
	return tea.Tick(l.params.FrameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg{id: id, gen: gen, Time: t}
	})
}

// View renders the current frame, one line per surface row. A stopped
// loop renders nothing.
func (l Loop) View() string {
	if !l.running || l.surface.Cols == 0 || l.surface.Rows == 0 {
		return ""
	}
	return l.palette.render(l.surface, Compute(l.surface, l.pointer, l.params))
}
