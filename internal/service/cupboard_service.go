package service

import (
	"context"
	"errors"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/repository"
)

var (
	ErrNeedNotFound = errors.New("need not found")
	ErrNeedExists   = errors.New("need already exists")
)

// CupboardService manages the need catalog. Reads are public; every mutation
// requires an active admin session.
type CupboardService struct {
	cupboard repository.CupboardRepository
	sessions repository.SessionRepository
}

func NewCupboardService(cupboard repository.CupboardRepository, sessions repository.SessionRepository) *CupboardService {
	return &CupboardService{cupboard: cupboard, sessions: sessions}
}

func (s *CupboardService) Create(ctx context.Context, need *domain.Need) (*domain.Need, error) {
	if err := s.authorizeAdmin(ctx); err != nil {
		return nil, err
	}
	exists, err := s.cupboard.Exists(ctx, need)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNeedExists
	}
	return s.cupboard.Create(ctx, need)
}

// Update overwrites the need under id; the id must already exist even though
// the store itself would upsert.
func (s *CupboardService) Update(ctx context.Context, id int, need *domain.Need) (*domain.Need, error) {
	if err := s.authorizeAdmin(ctx); err != nil {
		return nil, err
	}
	exists, err := s.cupboard.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNeedNotFound
	}
	return s.cupboard.Update(ctx, id, need)
}

func (s *CupboardService) Delete(ctx context.Context, id int) error {
	if err := s.authorizeAdmin(ctx); err != nil {
		return err
	}
	deleted, err := s.cupboard.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNeedNotFound
	}
	return nil
}

func (s *CupboardService) Get(ctx context.Context, id int) (*domain.Need, error) {
	need, err := s.cupboard.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if need == nil {
		return nil, ErrNeedNotFound
	}
	return need, nil
}

func (s *CupboardService) GetAll(ctx context.Context) ([]*domain.Need, error) {
	return s.cupboard.GetAll(ctx)
}

// Search finds needs whose name contains the text, ignoring case.
func (s *CupboardService) Search(ctx context.Context, text string) ([]*domain.Need, error) {
	return s.cupboard.SearchByName(ctx, text)
}

func (s *CupboardService) authorizeAdmin(ctx context.Context) error {
	ok, err := s.sessions.AuthorizeUser(ctx, nil, "", true)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
