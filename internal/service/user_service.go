package service

import (
	"context"
	"errors"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/repository"
)

var (
	ErrUserExists      = errors.New("username or id already taken")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNeedInBasket    = errors.New("need already in basket")
	ErrNeedNotInBasket = errors.New("need not in basket")
)

// UserService handles user accounts and their baskets. Every operation that
// reads or mutates a specific user consults the session authorization gate
// first; basket operations never take the admin override.
type UserService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

func NewUserService(users repository.UserRepository, sessions repository.SessionRepository) *UserService {
	return &UserService{users: users, sessions: sessions}
}

// Create registers a new user after the duplicate guard. The guard and the
// insert are separate steps under separate lock acquisitions, mirroring how
// signups have always behaved here.
func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	exists, err := s.users.Exists(ctx, user)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}
	return s.users.Create(ctx, user)
}

// Get returns a user, visible to themselves or to an active admin.
func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	session, err := s.sessions.GetByUserName(ctx, user.UserName)
	if err != nil {
		return nil, err
	}
	ok, err := s.sessions.AuthorizeUser(ctx, session, user.UserName, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// GetByName looks a user up by username. Unauthenticated: the signup form
// uses it to probe name availability.
func (s *UserService) GetByName(ctx context.Context, userName string) (*domain.User, error) {
	user, err := s.users.GetByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetAll lists every user; admin only.
func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	ok, err := s.sessions.AuthorizeUser(ctx, nil, "", true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized
	}
	return s.users.GetAll(ctx)
}

// Update replaces a user's record. The caller's session must match the id
// (or an admin must be active), and the new username must not belong to a
// different user.
func (s *UserService) Update(ctx context.Context, id int, user *domain.User) (*domain.User, error) {
	user.ID = id

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.sessions.AuthorizeID(ctx, session, id, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized
	}

	other, err := s.users.GetByName(ctx, user.UserName)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, ErrUserExists
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

// Delete removes a user, permitted to themselves or an active admin.
func (s *UserService) Delete(ctx context.Context, id int) error {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	session, err := s.sessions.GetByUserName(ctx, user.UserName)
	if err != nil {
		return err
	}
	ok, err := s.sessions.AuthorizeUser(ctx, session, user.UserName, true)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// GetBasket returns the user's basket; self only.
func (s *UserService) GetBasket(ctx context.Context, id int) ([]domain.BasketNeed, error) {
	if err := s.authorizeSelf(ctx, id); err != nil {
		return nil, err
	}
	basket, err := s.users.GetBasket(ctx, id)
	if err != nil {
		return nil, err
	}
	if basket == nil {
		return nil, ErrUserNotFound
	}
	return basket, nil
}

// AddNeed puts a need into the user's basket; a line for the same need id
// must not already exist.
func (s *UserService) AddNeed(ctx context.Context, id int, need *domain.Need) (*domain.User, error) {
	if err := s.authorizeSelf(ctx, id); err != nil {
		return nil, err
	}
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	exists, err := s.users.NeedExists(ctx, id, need)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNeedInBasket
	}
	return s.users.AddNeed(ctx, id, need)
}

// EditCount sets the count on an existing basket line.
func (s *UserService) EditCount(ctx context.Context, id int, need *domain.Need, count int) (*domain.User, error) {
	if err := s.authorizeSelf(ctx, id); err != nil {
		return nil, err
	}
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	exists, err := s.users.NeedExists(ctx, id, need)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNeedNotInBasket
	}
	return s.users.EditCount(ctx, id, need, count)
}

// RemoveNeed drops all basket lines for the need.
func (s *UserService) RemoveNeed(ctx context.Context, id int, need *domain.Need) (*domain.User, error) {
	if err := s.authorizeSelf(ctx, id); err != nil {
		return nil, err
	}
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	exists, err := s.users.NeedExists(ctx, id, need)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNeedNotInBasket
	}
	return s.users.RemoveNeed(ctx, id, need)
}

// authorizeSelf requires an unexpired session whose id matches; no admin
// override for basket access.
func (s *UserService) authorizeSelf(ctx context.Context, id int) error {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return err
	}
	ok, err := s.sessions.AuthorizeID(ctx, session, id, false)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
