package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beegood/ufund-api/internal/api"
	"github.com/beegood/ufund-api/internal/config"
	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/repository"
	"github.com/beegood/ufund-api/internal/service"
	"github.com/beegood/ufund-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (http.Handler, *repository.Repositories) {
	t.Helper()

	repos := testutil.NewRepositories(t)
	services := service.NewServices(repos, nil)
	router := api.NewRouter(services, &config.Config{AllowedOrigins: []string{"*"}})
	return router, repos
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthEndpoints_Login(t *testing.T) {
	router, repos := newTestServer(t)
	user, rawPassword := testutil.NewUserBuilder().WithUserName("beatrix").Build(t, repos.User)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{
			name:       "successful login",
			body:       map[string]string{"username": user.UserName, "password": rawPassword},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       map[string]string{"username": user.UserName, "password": "nope"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			body:       map[string]string{"username": "nobody", "password": "nope"},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var session domain.Session
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
				assert.Equal(t, user.ID, session.ID)
				assert.Equal(t, user.UserName, session.UserName)
			}
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthEndpoints_LoginWithHash(t *testing.T) {
	router, repos := newTestServer(t)
	user, _ := testutil.NewUserBuilder().WithUserName("beatrix").Build(t, repos.User)

	rec := doJSON(t, router, http.MethodPost, "/auth/login/hash",
		map[string]string{"username": user.UserName, "password": user.Password})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login/hash",
		map[string]string{"username": user.UserName, "password": "notthedigest"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthEndpoints_SessionLifecycle(t *testing.T) {
	router, repos := newTestServer(t)
	user, rawPassword := testutil.NewUserBuilder().WithUserName("beatrix").Build(t, repos.User)

	t.Run("check without a session", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/auth/beatrix", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("logout without a session", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/auth/beatrix", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	rec := doJSON(t, router, http.MethodPost, "/auth/login",
		map[string]string{"username": user.UserName, "password": rawPassword})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("check an active session", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/auth/beatrix", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true\n", rec.Body.String())
	})

	t.Run("refresh returns the replacement session", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/auth/beatrix", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var session domain.Session
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
		assert.Equal(t, user.ID, session.ID)
	})

	t.Run("logout removes the session", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/auth/beatrix", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		got, err := repos.Session.Get(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("refresh for an unknown user", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/auth/nobody", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
