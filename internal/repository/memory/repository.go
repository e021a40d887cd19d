package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/courtside/internal/loader"
	"github.com/omarshaarawi/courtside/internal/teams"
)

// Repository holds one team directory slot per sport.
type Repository struct {
	directories map[string]*loader.Slot[*teams.Index]
	now         func() time.Time
	mu          sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{
		directories: make(map[string]*loader.Slot[*teams.Index]),
		now:         time.Now,
	}
}

// WithClock stamps directory loads with now. It must be called before the
// first Directory lookup.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Directory returns the sport's slot, creating an idle one on first use.
func (r *Repository) Directory(sport string) *loader.Slot[*teams.Index] {
	r.mu.RLock()
	slot, ok := r.directories[sport]
	r.mu.RUnlock()
	if ok {
		return slot
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if slot, ok := r.directories[sport]; ok {
		return slot
	}
	slot = loader.NewSlotWithClock(teams.BuildIndex(nil), r.now)
	r.directories[sport] = slot
	return slot
}

// States reports the directory slot state of every sport seen so far.
func (r *Repository) States() map[string]loader.State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]loader.State, len(r.directories))
	for sport, slot := range r.directories {
		out[sport] = slot.Snapshot().State
	}
	return out
}
