package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/repository"
	"github.com/beegood/ufund-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginAdmin(t *testing.T, repos *repository.Repositories) {
	t.Helper()

	_, err := repos.Session.Create(context.Background(), 0, domain.AdminUserName)
	require.NoError(t, err)
}

func TestCupboardEndpoints_ReadsArePublic(t *testing.T) {
	router, repos := newTestServer(t)
	need := testutil.NewNeedBuilder().WithName("Honeycomb Frames").Build(t, repos.Cupboard)

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/cupboard/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var needs []domain.Need
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&needs))
		assert.Len(t, needs, 1)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/cupboard/%d", need.ID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.Need
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, need.Name, got.Name)
	})

	t.Run("get unknown id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/cupboard/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/cupboard/frames", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCupboardEndpoints_Search(t *testing.T) {
	router, repos := newTestServer(t)
	testutil.NewNeedBuilder().WithName("Honeycomb Frames").Build(t, repos.Cupboard)
	testutil.NewNeedBuilder().WithName("Gloves").Build(t, repos.Cupboard)

	t.Run("case-insensitive match", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/cupboard/name/HONEY", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var needs []domain.Need
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&needs))
		require.Len(t, needs, 1)
		assert.Equal(t, "Honeycomb Frames", needs[0].Name)
	})

	t.Run("no match still carries the array body", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/cupboard/name/wax", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var needs []domain.Need
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&needs))
		assert.Empty(t, needs)
	})
}

func TestCupboardEndpoints_MutationsRequireAdmin(t *testing.T) {
	router, repos := newTestServer(t)
	need := testutil.NewNeedBuilder().Build(t, repos.Cupboard)

	rec := doJSON(t, router, http.MethodPost, "/cupboard/", testutil.NewNeedBuilder().WithName("Gloves").Value())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/cupboard/%d", need.ID), need)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/cupboard/%d", need.ID), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCupboardEndpoints_AdminMutations(t *testing.T) {
	router, repos := newTestServer(t)
	loginAdmin(t, repos)

	rec := doJSON(t, router, http.MethodPost, "/cupboard/", testutil.NewNeedBuilder().WithName("Gloves").Value())
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.Need
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Gloves", created.Name)

	t.Run("duplicate create", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/cupboard/", created)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		created.Name = "Ventilated Gloves"
		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/cupboard/%d", created.ID), created)
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated domain.Need
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
		assert.Equal(t, "Ventilated Gloves", updated.Name)
	})

	t.Run("update unknown id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/cupboard/99", created)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/cupboard/%d", created.ID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/cupboard/%d", created.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
