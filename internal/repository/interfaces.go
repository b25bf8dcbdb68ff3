package repository

import (
	"context"

	"github.com/beegood/ufund-api/internal/domain"
)

// Stores return (nil, nil) / (false, nil) when the target record is absent;
// a non-nil error always means the underlying snapshot could not be read or
// written. Callers translate absence into their own error values.

type CupboardRepository interface {
	Create(ctx context.Context, need *domain.Need) (*domain.Need, error)
	Get(ctx context.Context, id int) (*domain.Need, error)
	GetAll(ctx context.Context) ([]*domain.Need, error)
	Update(ctx context.Context, id int, need *domain.Need) (*domain.Need, error)
	Delete(ctx context.Context, id int) (bool, error)
	// SearchByName matches name substrings case-insensitively; MatchByName
	// is the older case-sensitive lookup. Both are part of the public
	// surface and intentionally disagree on case handling.
	SearchByName(ctx context.Context, text string) ([]*domain.Need, error)
	MatchByName(ctx context.Context, text string) ([]*domain.Need, error)
	Exists(ctx context.Context, need *domain.Need) (bool, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	GetByName(ctx context.Context, userName string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) (bool, error)
	// Exists matches on userName or id; it is the duplicate guard consulted
	// before Create.
	Exists(ctx context.Context, user *domain.User) (bool, error)

	GetBasket(ctx context.Context, id int) ([]domain.BasketNeed, error)
	AddNeed(ctx context.Context, id int, need *domain.Need) (*domain.User, error)
	RemoveNeed(ctx context.Context, id int, need *domain.Need) (*domain.User, error)
	EditCount(ctx context.Context, id int, need *domain.Need, count int) (*domain.User, error)
	NeedExists(ctx context.Context, id int, need *domain.Need) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, id int, userName string) (*domain.Session, error)
	Get(ctx context.Context, id int) (*domain.Session, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) (*domain.Session, error)
	Delete(ctx context.Context, id int) (*domain.Session, error)
	IsExpired(session *domain.Session) bool
	Exists(ctx context.Context, session *domain.Session) (bool, error)
	// AuthorizeUser and AuthorizeID are the authorization gate. With admin
	// set, an active session for the admin username authorizes anything;
	// otherwise the supplied session must be unexpired and match the
	// identity.
	AuthorizeUser(ctx context.Context, session *domain.Session, userName string, admin bool) (bool, error)
	AuthorizeID(ctx context.Context, session *domain.Session, id int, admin bool) (bool, error)
}

type Repositories struct {
	Cupboard CupboardRepository
	User     UserRepository
	Session  SessionRepository
}
