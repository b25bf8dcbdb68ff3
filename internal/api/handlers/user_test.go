package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEndpoints_Create(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/users/",
		map[string]string{"userName": "beatrix", "password": "hunter2"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "beatrix", created.UserName)
	assert.Equal(t, domain.RoleHelper, created.Role)
	assert.NotEqual(t, "hunter2", created.Password)

	t.Run("duplicate username", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/users/",
			map[string]string{"userName": "beatrix", "password": "other"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUserEndpoints_GetByName(t *testing.T) {
	router, repos := newTestServer(t)
	testutil.NewUserBuilder().WithUserName("beatrix").Build(t, repos.User)

	// name lookup stays open so the signup form can probe availability
	rec := doJSON(t, router, http.MethodGet, "/users/username/beatrix", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/users/username/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserEndpoints_GetRequiresSession(t *testing.T) {
	router, repos := newTestServer(t)
	user, rawPassword := testutil.NewUserBuilder().WithUserName("beatrix").Build(t, repos.User)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login",
		map[string]string{"username": user.UserName, "password": rawPassword})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserEndpoints_ListIsAdminOnly(t *testing.T) {
	router, repos := newTestServer(t)
	testutil.NewUserBuilder().WithUserName("beatrix").Build(t, repos.User)

	rec := doJSON(t, router, http.MethodGet, "/users/", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	loginAdmin(t, repos)

	rec = doJSON(t, router, http.MethodGet, "/users/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var users []domain.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
	assert.Len(t, users, 1)
}

func TestUserEndpoints_BasketFlow(t *testing.T) {
	router, repos := newTestServer(t)
	user, rawPassword := testutil.NewUserBuilder().WithUserName("beatrix").Build(t, repos.User)
	need := testutil.NewNeedBuilder().WithID(10).Value()

	basketPath := fmt.Sprintf("/users/%d/basket", user.ID)

	t.Run("basket is closed without a session", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, basketPath, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	rec := doJSON(t, router, http.MethodPost, "/auth/login",
		map[string]string{"username": user.UserName, "password": rawPassword})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("add", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, basketPath, need)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var updated domain.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
		require.Len(t, updated.Basket, 1)
		assert.Equal(t, 1, updated.Basket[0].Count)
	})

	t.Run("duplicate add", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, basketPath, need)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("edit count", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, basketPath+"/4", need)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var updated domain.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
		assert.Equal(t, 4, updated.Basket[0].Count)
	})

	t.Run("edit a line that is not there", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, basketPath+"/4", domain.Need{ID: 110})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, basketPath, need)
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated domain.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
		assert.Empty(t, updated.Basket)
	})
}
