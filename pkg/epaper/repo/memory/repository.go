package memory

import (
	"context"
	"sync"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// Repository implements epaper.Repository using in-memory storage
type Repository struct {
	mu       sync.RWMutex
	editions map[string]*epaper.Edition
	order    []string // edition IDs in insertion order
}

// New creates a new in-memory repository
func New() epaper.Repository {
	return &Repository{
		editions: make(map[string]*epaper.Edition),
	}
}

func (r *Repository) CreateEdition(ctx context.Context, edition *epaper.Edition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Deep copy to avoid external modifications
	editionCopy := edition.Clone()
	if _, exists := r.editions[edition.ID]; !exists {
		r.order = append(r.order, edition.ID)
	}
	r.editions[edition.ID] = &editionCopy

	return nil
}

func (r *Repository) GetEdition(ctx context.Context, id string) (*epaper.Edition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	edition, exists := r.editions[id]
	if !exists {
		return nil, epaper.ErrEditionNotFound
	}

	// Return a deep copy to prevent external modifications
	editionCopy := edition.Clone()
	return &editionCopy, nil
}

func (r *Repository) UpdateEdition(ctx context.Context, edition *epaper.Edition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.editions[edition.ID]; !exists {
		return epaper.ErrEditionNotFound
	}

	editionCopy := edition.Clone()
	r.editions[edition.ID] = &editionCopy

	return nil
}

func (r *Repository) DeleteEdition(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.editions[id]; !exists {
		return epaper.ErrEditionNotFound
	}

	delete(r.editions, id)
	for i, eid := range r.order {
		if eid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Repository) ListEditions(ctx context.Context) ([]*epaper.Edition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*epaper.Edition, 0, len(r.order))
	for _, id := range r.order {
		editionCopy := r.editions[id].Clone()
		result = append(result, &editionCopy)
	}
	return result, nil
}
