package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
)

// DatasetRepository keeps a private copy of a dataset in memory.
type DatasetRepository struct {
	mu      sync.RWMutex
	matches []football.Match
	goals   []football.GoalEvent
}

func NewDatasetRepository(ds football.Dataset) *DatasetRepository {
	r := &DatasetRepository{}
	r.set(ds)
	return r
}

func (r *DatasetRepository) Load(_ context.Context) (football.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return football.Dataset{
		Matches: append([]football.Match(nil), r.matches...),
		Goals:   append([]football.GoalEvent(nil), r.goals...),
	}, nil
}

func (r *DatasetRepository) Replace(_ context.Context, ds football.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.set(ds)
	return nil
}

func (r *DatasetRepository) set(ds football.Dataset) {
	r.matches = append([]football.Match(nil), ds.Matches...)
	r.goals = make([]football.GoalEvent, 0, len(ds.Goals))
	for _, g := range ds.Goals {
		if g.Minute != nil {
			minute := *g.Minute
			g.Minute = &minute
		}
		r.goals = append(r.goals, g)
	}
}
