package jsonfile

import (
	"context"
	"sync"
	"time"

	"github.com/beegood/ufund-api/internal/domain"
)

// sessionTTL is how long a session stays valid after creation or
// revalidation. Expiry is checked lazily on access; expired records linger in
// the store until deleted.
const sessionTTL = 30 * time.Minute

type sessionRepository struct {
	mu       sync.Mutex
	filename string
	sessions map[int]*domain.Session
	now      func() time.Time
}

// NewSessionRepository opens the sessions snapshot file.
func NewSessionRepository(filename string) (*sessionRepository, error) {
	r := &sessionRepository{filename: filename, now: time.Now}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *sessionRepository) load() error {
	records, err := readSnapshot[domain.Session](r.filename)
	if err != nil {
		return err
	}
	r.sessions = make(map[int]*domain.Session, len(records))
	for i := range records {
		session := records[i]
		r.sessions[session.ID] = &session
	}
	return nil
}

// save is called with r.mu held.
func (r *sessionRepository) save() error {
	records := make([]domain.Session, 0, len(r.sessions))
	for _, id := range sortedIDs(r.sessions) {
		records = append(records, *r.sessions[id])
	}
	return writeSnapshot(r.filename, records)
}

// Create issues a freshly timestamped session for the user, replacing any
// existing session with the same id. An empty username yields no session.
func (r *sessionRepository) Create(ctx context.Context, id int, userName string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userName == "" {
		return nil, nil
	}
	session := &domain.Session{
		ID:       id,
		UserName: userName,
		Timer:    r.now().UnixMilli(),
	}
	r.sessions[id] = session
	if err := r.save(); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) Get(ctx context.Context, id int) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id], nil
}

func (r *sessionRepository) GetByUserName(ctx context.Context, userName string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range sortedIDs(r.sessions) {
		session := r.sessions[id]
		if session.UserName != "" && session.UserName == userName {
			return session, nil
		}
	}
	return nil, nil
}

// Update replaces a session that already exists; an unknown id is a no-op
// returning nil.
func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return nil, nil
	}
	r.sessions[session.ID] = session
	if err := r.save(); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes and returns the session, or nil when absent. The snapshot is
// rewritten either way.
func (r *sessionRepository) Delete(ctx context.Context, id int) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := r.sessions[id]
	delete(r.sessions, id)
	if err := r.save(); err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *sessionRepository) IsExpired(session *domain.Session) bool {
	return r.now().UnixMilli()-session.Timer > sessionTTL.Milliseconds()
}

// Exists probes for any session sharing the id or the username.
func (r *sessionRepository) Exists(ctx context.Context, session *domain.Session) (bool, error) {
	byID, err := r.Get(ctx, session.ID)
	if err != nil {
		return false, err
	}
	if byID != nil {
		return true, nil
	}
	byName, err := r.GetByUserName(ctx, session.UserName)
	if err != nil {
		return false, err
	}
	return byName != nil, nil
}

func (r *sessionRepository) AuthorizeUser(ctx context.Context, session *domain.Session, userName string, admin bool) (bool, error) {
	if ok, err := r.adminOverride(ctx, admin); err != nil || ok {
		return ok, err
	}
	if session == nil {
		return false, nil
	}
	return !r.IsExpired(session) && session.UserName == userName, nil
}

func (r *sessionRepository) AuthorizeID(ctx context.Context, session *domain.Session, id int, admin bool) (bool, error) {
	if ok, err := r.adminOverride(ctx, admin); err != nil || ok {
		return ok, err
	}
	if session == nil {
		return false, nil
	}
	return !r.IsExpired(session) && session.ID == id, nil
}

// adminOverride reports whether an unexpired session for the admin username
// authorizes the request outright.
func (r *sessionRepository) adminOverride(ctx context.Context, admin bool) (bool, error) {
	if !admin {
		return false, nil
	}
	adminSession, err := r.GetByUserName(ctx, domain.AdminUserName)
	if err != nil {
		return false, err
	}
	return adminSession != nil && !r.IsExpired(adminSession), nil
}
