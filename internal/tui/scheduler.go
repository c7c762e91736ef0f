package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// hostScheduler implements gimbal.Scheduler on top of Bubble Tea's tick
// commands so every engine callback runs inside Update, on the program's
// single event-dispatch goroutine. Calls made by the engine while the model
// is handling a message queue tick commands here; the model drains them into
// its returned command.
type hostScheduler struct {
	nextID  int
	waiting map[int]func()
	pending []tea.Cmd
}

func newHostScheduler() *hostScheduler {
	return &hostScheduler{waiting: make(map[int]func())}
}

func (s *hostScheduler) AfterFunc(d time.Duration, fn func()) {
	s.schedule(d, fn)
}

func (s *hostScheduler) OnFrame(fn func()) {
	s.schedule(frameInterval, fn)
}

func (s *hostScheduler) schedule(d time.Duration, fn func()) {
	s.nextID++
	id := s.nextID
	s.waiting[id] = fn
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
}

// fire runs and forgets the callback with the given id.
func (s *hostScheduler) fire(id int) {
	fn, ok := s.waiting[id]
	if !ok {
		return
	}
	delete(s.waiting, id)
	fn()
}

// drain hands the queued tick commands to the caller and clears the queue.
func (s *hostScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
