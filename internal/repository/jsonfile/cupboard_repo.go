package jsonfile

import (
	"context"
	"strings"
	"sync"

	"github.com/beegood/ufund-api/internal/domain"
)

type cupboardRepository struct {
	mu       sync.Mutex
	filename string
	needs    map[int]*domain.Need
	nextID   int
}

// NewCupboardRepository opens the cupboard snapshot file. The next id is
// seeded from the largest persisted id.
func NewCupboardRepository(filename string) (*cupboardRepository, error) {
	r := &cupboardRepository{filename: filename}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *cupboardRepository) load() error {
	records, err := readSnapshot[domain.Need](r.filename)
	if err != nil {
		return err
	}
	r.needs = make(map[int]*domain.Need, len(records))
	r.nextID = 0
	for i := range records {
		need := records[i]
		r.needs[need.ID] = &need
		if need.ID > r.nextID {
			r.nextID = need.ID
		}
	}
	r.nextID++
	return nil
}

// save is called with r.mu held.
func (r *cupboardRepository) save() error {
	records := make([]domain.Need, 0, len(r.needs))
	for _, id := range sortedIDs(r.needs) {
		records = append(records, *r.needs[id])
	}
	return writeSnapshot(r.filename, records)
}

func (r *cupboardRepository) Create(ctx context.Context, need *domain.Need) (*domain.Need, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := &domain.Need{
		ID:          r.nextID,
		Name:        need.Name,
		Cost:        need.Cost,
		Quantity:    need.Quantity,
		Type:        need.Type,
		Description: need.Description,
	}
	r.nextID++
	r.needs[created.ID] = created
	if err := r.save(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *cupboardRepository) Get(ctx context.Context, id int) (*domain.Need, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.needs[id], nil
}

func (r *cupboardRepository) GetAll(ctx context.Context) ([]*domain.Need, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(*domain.Need) bool { return true }), nil
}

// Update overwrites the record under id, forcing the payload's id to match.
// Existence is the caller's pre-check; an unknown id becomes a new record.
func (r *cupboardRepository) Update(ctx context.Context, id int, need *domain.Need) (*domain.Need, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	need.ID = id
	r.needs[id] = need
	if err := r.save(); err != nil {
		return nil, err
	}
	return need, nil
}

func (r *cupboardRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.needs[id]; !ok {
		return false, nil
	}
	delete(r.needs, id)
	if err := r.save(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *cupboardRepository) SearchByName(ctx context.Context, text string) ([]*domain.Need, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lower := strings.ToLower(text)
	return r.collect(func(n *domain.Need) bool {
		return strings.Contains(strings.ToLower(n.Name), lower)
	}), nil
}

func (r *cupboardRepository) MatchByName(ctx context.Context, text string) ([]*domain.Need, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.collect(func(n *domain.Need) bool {
		return strings.Contains(n.Name, text)
	}), nil
}

func (r *cupboardRepository) Exists(ctx context.Context, need *domain.Need) (bool, error) {
	return r.ExistsByID(ctx, need.ID)
}

func (r *cupboardRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.needs[id]
	return ok, nil
}

// collect is called with r.mu held; results come back in ascending id order.
func (r *cupboardRepository) collect(match func(*domain.Need) bool) []*domain.Need {
	out := make([]*domain.Need, 0, len(r.needs))
	for _, id := range sortedIDs(r.needs) {
		if match(r.needs[id]) {
			out = append(out, r.needs[id])
		}
	}
	return out
}
