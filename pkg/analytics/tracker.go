package analytics

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/borgmon/rise-ease/pkg/models"
)

// ErrNotTracking is returned by Stop when no session is running
var ErrNotTracking = errors.New("sleep tracking has not been started")

// Tracker records a sleep session and estimates its metrics when it ends.
// Only the total sleep time is measured; the remaining figures are estimates.
type Tracker struct {
	mu sync.Mutex

	now  func() time.Time
	rand *rand.Rand

	tracking bool
	start    time.Time
	metrics  models.SleepMetrics
}

// NewTracker creates a tracker using the wall clock and a random seed
func NewTracker() *Tracker {
	return NewTrackerWith(time.Now, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewTrackerWith creates a tracker with an injected clock and random source
func NewTrackerWith(now func() time.Time, r *rand.Rand) *Tracker {
	return &Tracker{now: now, rand: r}
}

// Start resets the metrics and begins a session
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics = models.SleepMetrics{}
	t.start = t.now()
	t.tracking = true
}

// Stop ends the session and returns the computed metrics
func (t *Tracker) Stop() (models.SleepMetrics, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return t.metrics, ErrNotTracking
	}

	elapsed := t.now().Sub(t.start)
	t.metrics = models.SleepMetrics{
		TotalSleepTime:      elapsed.Minutes(),
		SleepOnsetLatency:   t.rand.Float64()*20 + 5,
		WakeAfterSleepOnset: t.rand.Float64()*15 + 2,
		NumberOfAwakenings:  t.rand.IntN(3),
	}
	t.tracking = false
	t.start = time.Time{}

	return t.metrics, nil
}

// Tracking reports whether a session is running
func (t *Tracker) Tracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracking
}

// StartedAt returns the start of the running session
func (t *Tracker) StartedAt() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.start, t.tracking
}

// Metrics returns the figures from the last completed session
func (t *Tracker) Metrics() models.SleepMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.metrics
}
