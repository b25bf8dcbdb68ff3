package jsonfile

import (
	"context"
	"sync"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/security"
)

type userRepository struct {
	mu       sync.Mutex
	filename string
	users    map[int]*domain.User
	nextID   int
}

// NewUserRepository opens the users snapshot file. The next id is seeded from
// the largest persisted id.
func NewUserRepository(filename string) (*userRepository, error) {
	r := &userRepository{filename: filename}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *userRepository) load() error {
	records, err := readSnapshot[domain.User](r.filename)
	if err != nil {
		return err
	}
	r.users = make(map[int]*domain.User, len(records))
	r.nextID = 0
	for i := range records {
		user := records[i]
		if user.Basket == nil {
			user.Basket = []domain.BasketNeed{}
		}
		user.Role = domain.RoleForUserName(user.UserName)
		r.users[user.ID] = &user
		if user.ID > r.nextID {
			r.nextID = user.ID
		}
	}
	r.nextID++
	return nil
}

// save is called with r.mu held.
func (r *userRepository) save() error {
	records := make([]domain.User, 0, len(r.users))
	for _, id := range sortedIDs(r.users) {
		records = append(records, *r.users[id])
	}
	return writeSnapshot(r.filename, records)
}

// Create assigns the next id, hashes the supplied password, and starts the
// user with an empty basket. Uniqueness is not re-checked here; callers
// consult Exists first.
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := domain.NewUser(r.nextID, user.UserName, security.HashPassword(user.Password), user.Security)
	r.nextID++
	r.users[created.ID] = created
	if err := r.save(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *userRepository) Get(ctx context.Context, id int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *userRepository) GetByName(ctx context.Context, userName string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getByName(userName), nil
}

// getByName is called with r.mu held.
func (r *userRepository) getByName(userName string) *domain.User {
	for _, id := range sortedIDs(r.users) {
		if r.users[id].UserName == userName {
			return r.users[id]
		}
	}
	return nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, id := range sortedIDs(r.users) {
		out = append(out, r.users[id])
	}
	return out, nil
}

// Update replaces an existing record. An empty incoming password keeps the
// stored digest; anything else is hashed. The role is recomputed from the
// username regardless of what the payload carried.
func (r *userRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return nil, nil
	}
	if user.Password == "" {
		user.Password = existing.Password
	} else {
		user.Password = security.HashPassword(user.Password)
	}
	user.Role = domain.RoleForUserName(user.UserName)
	if user.Basket == nil {
		user.Basket = []domain.BasketNeed{}
	}
	r.users[user.ID] = user
	if err := r.save(); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	if err := r.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Exists matches on userName or id.
func (r *userRepository) Exists(ctx context.Context, user *domain.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getByName(user.UserName) != nil {
		return true, nil
	}
	_, ok := r.users[user.ID]
	return ok, nil
}

func (r *userRepository) GetBasket(ctx context.Context, id int) ([]domain.BasketNeed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return user.Basket, nil
}

func (r *userRepository) AddNeed(ctx context.Context, id int, need *domain.Need) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	user.AddNeed(*need)
	if err := r.save(); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) RemoveNeed(ctx context.Context, id int, need *domain.Need) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	user.RemoveNeed(*need)
	if err := r.save(); err != nil {
		return nil, err
	}
	return user, nil
}

// EditCount applies a count edit to the matching basket line. The edit's
// guard may reject the new value, in which case the line is left untouched;
// the snapshot is still rewritten and the user returned.
func (r *userRepository) EditCount(ctx context.Context, id int, need *domain.Need, count int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	line := user.FindBasketNeed(*need)
	if line == nil {
		return nil, nil
	}
	line.EditCount(count)
	if err := r.save(); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) NeedExists(ctx context.Context, id int, need *domain.Need) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return false, nil
	}
	return user.HasNeed(*need), nil
}
