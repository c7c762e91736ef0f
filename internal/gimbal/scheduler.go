package gimbal

import "time"

// Scheduler is the pair of host timing primitives the engine depends on: a
// fire-and-forget one-shot timer and a callback scheduled before the next
// repaint. Callbacks must be delivered on the same event-dispatch thread
// that drives Pointer; the engine is not safe for concurrent use.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
	OnFrame(fn func())
}

// wallScheduler is the fallback Scheduler built on wall-clock timers. Its
// callbacks arrive on timer goroutines, so hosts with a single-threaded
// event loop should supply their own Scheduler instead.
type wallScheduler struct{}

// wallFrameInterval approximates one rendering frame at 60Hz.
const wallFrameInterval = time.Second / 60

func (wallScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

func (wallScheduler) OnFrame(fn func()) {
	time.AfterFunc(wallFrameInterval, fn)
}
