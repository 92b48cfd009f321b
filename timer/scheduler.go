package timer

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler drives the countdown. Start and Stop are idempotent.
type Scheduler interface {
	Start()
	Stop()
	Active() bool
}

// Tick is delivered once per interval while a Ticker is active.
type Tick struct {
	At time.Time
	// Run identifies the Start call that produced the tick
	Run int
}

// Ticker is a Scheduler that fires a callback at a fixed interval from a
// background goroutine. The callback must hand the tick over to the
// goroutine that owns the Timer (for example by sending it as a bubbletea
// message) and that goroutine must check Current before acting on it: a tick
// can be in flight at the moment Stop is called.
type Ticker struct {
	clock    clockwork.Clock
	onTick   func(Tick)
	stop     chan struct{}
	interval time.Duration
	run      int
}

// NewTicker returns an inactive Ticker.
func NewTicker(
	clock clockwork.Clock,
	interval time.Duration,
	onTick func(Tick),
) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}

	return &Ticker{
		clock:    clock,
		interval: interval,
		onTick:   onTick,
	}
}

func (t *Ticker) Start() {
	if t.stop != nil {
		return
	}

	t.run++
	t.stop = make(chan struct{})

	go t.loop(t.run, t.stop)
}

func (t *Ticker) Stop() {
	if t.stop == nil {
		return
	}

	close(t.stop)
	t.stop = nil
}

func (t *Ticker) Active() bool {
	return t.stop != nil
}

// Current reports whether tick was produced by the active run.
func (t *Ticker) Current(tick Tick) bool {
	return t.stop != nil && tick.Run == t.run
}

func (t *Ticker) loop(run int, stop <-chan struct{}) {
	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case at := <-ticker.Chan():
			select {
			case <-stop:
				return
			default:
			}

			t.onTick(Tick{Run: run, At: at})
		}
	}
}

// Manual is a Scheduler without a clock. Ticks are produced by calling
// Fire, which makes countdowns reproducible in tests and scripted drivers.
type Manual struct {
	onTick func()
	active bool
	starts int
}

// NewManual returns an inactive Manual scheduler. onTick may be nil when the
// caller ticks the Timer directly.
func NewManual(onTick func()) *Manual {
	return &Manual{onTick: onTick}
}

func (m *Manual) Start() {
	if m.active {
		return
	}

	m.active = true
	m.starts++
}

func (m *Manual) Stop() {
	m.active = false
}

func (m *Manual) Active() bool {
	return m.active
}

// Starts returns how many times the scheduler went from inactive to active.
func (m *Manual) Starts() int {
	return m.starts
}

// SetOnTick replaces the tick callback.
func (m *Manual) SetOnTick(fn func()) {
	m.onTick = fn
}

// Fire invokes the tick callback once if the scheduler is active and
// reports whether it did.
func (m *Manual) Fire() bool {
	if !m.active || m.onTick == nil {
		return false
	}

	m.onTick()

	return true
}
