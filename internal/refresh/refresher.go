// Package refresh keeps the current palette in step with the most recently
// supplied image.
//
// Each Submit starts a decode on its own goroutine and is stamped with a
// generation number. When a decode completes, the palette pipeline runs
// only if that generation is still the newest one; results from superseded
// decodes are discarded, so a slow early image can never overwrite a
// faster later one. Pipelines run one at a time under the refresher's lock.
package refresh

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/ironsheep/gradient-mcp/internal/palette"
)

// Source produces the raster for one submission. It is called on its own
// goroutine; ctx is cancelled once a newer submission supersedes it.
type Source func(ctx context.Context) (*palette.Raster, error)

// Snapshot is a committed pipeline outcome.
type Snapshot struct {
	Generation uint64          `json:"generation"`
	Label      string          `json:"label"`
	Result     *palette.Result `json:"result,omitempty"`
	Err        string          `json:"error,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Refresher tracks submissions and the latest committed snapshot.
// It is safe for concurrent use.
type Refresher struct {
	mu      sync.Mutex
	cfg     palette.Config
	rnd     *rand.Rand
	latest  uint64
	current *Snapshot
	cancel  context.CancelFunc
	dropped uint64

	pending sync.WaitGroup
}

// New returns a Refresher that runs the pipeline with cfg. rnd drives
// splotch placement and is only touched under the refresher's lock; nil
// means a time-seeded source.
func New(cfg palette.Config, rnd *rand.Rand) *Refresher {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Refresher{cfg: cfg, rnd: rnd}
}

// Submit starts decoding src and returns the generation assigned to it.
// Any decode still running for an older generation is cancelled.
func (r *Refresher) Submit(ctx context.Context, label string, src Source) uint64 {
	r.mu.Lock()
	r.latest++
	gen := r.latest
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.pending.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.pending.Done()
		defer cancel()
		ras, err := src(ctx)
		r.commit(gen, label, ras, err)
	}()
	return gen
}

// commit stores the outcome of generation gen if it is still the newest.
func (r *Refresher) commit(gen uint64, label string, ras *palette.Raster, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.latest {
		r.dropped++
		return false
	}

	snap := &Snapshot{Generation: gen, Label: label, UpdatedAt: time.Now()}
	if err != nil {
		snap.Err = err.Error()
	} else {
		snap.Result = palette.Extract(ras, r.cfg, r.rnd)
	}
	r.current = snap
	return true
}

// Current returns the latest committed snapshot, or nil before the first
// commit.
func (r *Refresher) Current() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Latest returns the generation of the most recent Submit.
func (r *Refresher) Latest() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}

// Dropped returns how many completed decodes were discarded as stale.
func (r *Refresher) Dropped() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Config returns the pipeline configuration.
func (r *Refresher) Config() palette.Config {
	return r.cfg
}

// Wait blocks until every submitted decode has finished or ctx is done.
func (r *Refresher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
