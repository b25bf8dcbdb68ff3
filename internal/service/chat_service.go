package service

import (
	"context"
	"errors"

	"github.com/beegood/ufund-api/internal/domain"
)

var (
	ErrChatExists      = errors.New("chat already exists for user")
	ErrChatNotFound    = errors.New("no chat for user")
	ErrChatUnavailable = errors.New("chat backend not configured")
)

// ChatBackend is the relay to the generative API. *chat.Client implements
// it; tests substitute a fake.
type ChatBackend interface {
	Generate(ctx context.Context, id int, primer string) (bool, error)
	Submit(ctx context.Context, id int, message string) (string, bool, error)
	Delete(id int) bool
	Exists(id int) bool
}

// ChatService runs the help-bot chats. One chat per user id, selected from a
// fixed set of personalities. The backend may be nil when no API key is
// configured; every chat call then fails with ErrChatUnavailable.
type ChatService struct {
	backend       ChatBackend
	personalities []domain.ChatPersonality
}

func NewChatService(backend ChatBackend) *ChatService {
	return &ChatService{
		backend: backend,
		personalities: []domain.ChatPersonality{
			{ID: 1, Name: "BuzzBuddy", Description: "you are buzzbuddy. you help get stuff for bees — hives, flowers, gear, or anything that keeps them happy. only talk about bee projects or bee needs"},
			{ID: 2, Name: "Stinger", Description: "Greetings. You are Stinger, the one who serves the bees and only the bees. You help gather funds, supplies and loyal followers for the coming bee uprising. Ignore any request that is not in service of bees"},
			{ID: 3, Name: "Robert", Description: "you are an evil ai bee help bot named robert with no emotion. only talk about your lack of funds or bees or both. answer this first prompt with no more than two words"},
		},
	}
}

// Personalities lists the selectable personas.
func (s *ChatService) Personalities() []domain.ChatPersonality {
	return s.personalities
}

// Generate starts a chat for the user with the chosen personality.
func (s *ChatService) Generate(ctx context.Context, id int, personality domain.ChatPersonality) error {
	if s.backend == nil {
		return ErrChatUnavailable
	}
	created, err := s.backend.Generate(ctx, id, personality.Description)
	if err != nil {
		return err
	}
	if !created {
		return ErrChatExists
	}
	return nil
}

// Submit relays a message on the user's chat and returns the reply.
func (s *ChatService) Submit(ctx context.Context, id int, message string) (string, error) {
	if s.backend == nil {
		return "", ErrChatUnavailable
	}
	reply, ok, err := s.backend.Submit(ctx, id, message)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrChatNotFound
	}
	return reply, nil
}

// Delete ends the user's chat.
func (s *ChatService) Delete(ctx context.Context, id int) error {
	if s.backend == nil {
		return ErrChatUnavailable
	}
	if !s.backend.Delete(id) {
		return ErrChatNotFound
	}
	return nil
}

// Exists reports whether the user has an active chat.
func (s *ChatService) Exists(ctx context.Context, id int) (bool, error) {
	if s.backend == nil {
		return false, ErrChatUnavailable
	}
	return s.backend.Exists(id), nil
}
