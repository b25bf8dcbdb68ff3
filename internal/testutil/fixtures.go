package testutil

import (
	"context"
	"testing"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/repository"
)

// UserBuilder creates users through the repository so ids and digests come
// out the same way production ones do.
type UserBuilder struct {
	userName string
	password string
	security []string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		userName: "helper1",
		password: "hunter2",
		security: []string{"blue", "rex"},
	}
}

func (b *UserBuilder) WithUserName(name string) *UserBuilder {
	b.userName = name
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user and returns it along with the raw password.
func (b *UserBuilder) Build(t *testing.T, users repository.UserRepository) (*domain.User, string) {
	t.Helper()

	user, err := users.Create(context.Background(), &domain.User{
		UserName: b.userName,
		Password: b.password,
		Security: b.security,
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user, b.password
}

// NeedBuilder assembles catalog needs for tests.
type NeedBuilder struct {
	need domain.Need
}

func NewNeedBuilder() *NeedBuilder {
	return &NeedBuilder{need: domain.Need{
		Name:        "Honeycomb Frames",
		Cost:        12,
		Quantity:    40,
		Type:        "equipment",
		Description: "replacement frames for the teaching hive",
	}}
}

func (b *NeedBuilder) WithID(id int) *NeedBuilder {
	b.need.ID = id
	return b
}

func (b *NeedBuilder) WithName(name string) *NeedBuilder {
	b.need.Name = name
	return b
}

func (b *NeedBuilder) WithCost(cost int) *NeedBuilder {
	b.need.Cost = cost
	return b
}

// Value returns the need without storing it anywhere.
func (b *NeedBuilder) Value() domain.Need {
	return b.need
}

// Build creates the need in the cupboard and returns the stored record.
func (b *NeedBuilder) Build(t *testing.T, cupboard repository.CupboardRepository) *domain.Need {
	t.Helper()

	need := b.need
	created, err := cupboard.Create(context.Background(), &need)
	if err != nil {
		t.Fatalf("failed to create test need: %v", err)
	}
	return created
}
