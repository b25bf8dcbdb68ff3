package jsonfile

import (
	"github.com/beegood/ufund-api/internal/repository"
)

// NewRepositories opens all three snapshot-backed stores. Any unreadable
// snapshot fails the whole set; the caller treats that as fatal.
func NewRepositories(cupboardFile, usersFile, sessionsFile string) (*repository.Repositories, error) {
	cupboard, err := NewCupboardRepository(cupboardFile)
	if err != nil {
		return nil, err
	}
	users, err := NewUserRepository(usersFile)
	if err != nil {
		return nil, err
	}
	sessions, err := NewSessionRepository(sessionsFile)
	if err != nil {
		return nil, err
	}
	return &repository.Repositories{
		Cupboard: cupboard,
		User:     users,
		Session:  sessions,
	}, nil
}
