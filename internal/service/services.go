package service

import (
	"github.com/beegood/ufund-api/internal/repository"
)

type Services struct {
	Auth     *AuthService
	User     *UserService
	Cupboard *CupboardService
	Chat     *ChatService
}

func NewServices(repos *repository.Repositories, chatBackend ChatBackend) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, repos.Session),
		User:     NewUserService(repos.User, repos.Session),
		Cupboard: NewCupboardService(repos.Cupboard, repos.Session),
		Chat:     NewChatService(chatBackend),
	}
}
