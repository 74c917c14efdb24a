package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/triage-api/internal/api/shared"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/service/auth"
	"github.com/phrazzld/triage-api/internal/store"
)

const testSecret = "test-secret-key-thats-long-enough-for-hmac"

// memUserStore is an in-memory store.UserStore keyed by ID.
type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (s *memUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *memUserStore) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func addUser(t *testing.T, userStore *memUserStore, username string) uuid.UUID {
	t.Helper()
	user := &domain.User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: "$2a$10$notarealhashbutnonempty",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, userStore.Create(context.Background(), user))
	return user.ID
}

func issueToken(t *testing.T, userID uuid.UUID, username string, lifetime time.Duration) string {
	t.Helper()
	svc := auth.NewTestJWTService(testSecret, lifetime, time.Now)
	token, err := svc.GenerateToken(context.Background(), userID, username)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	jwtService := auth.NewTestJWTService(testSecret, 60*time.Minute, time.Now)
	userStore := newMemUserStore()
	mw := NewAuthMiddleware(jwtService, userStore)

	// next captures the identity the middleware placed in the context.
	var gotUserID uuid.UUID
	var gotUsername string
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		gotUserID, _ = r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
		gotUsername, _ = r.Context().Value(shared.UsernameContextKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	serve := func(authHeader string) *httptest.ResponseRecorder {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rr := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rr, req)
		return rr
	}

	t.Run("valid token passes identity through", func(t *testing.T) {
		userID := addUser(t, userStore, "alice")
		token := issueToken(t, userID, "alice", 60*time.Minute)

		rr := serve("Bearer " + token)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, nextCalled)
		assert.Equal(t, userID, gotUserID)
		assert.Equal(t, "alice", gotUsername)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		rr := serve("")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		rr := serve("Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		rr := serve("Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		userID := addUser(t, userStore, "bob")

		// Issue a one-minute token dated two minutes in the past.
		past := time.Now().Add(-2 * time.Minute)
		issuer := auth.NewTestJWTService(testSecret, time.Minute, func() time.Time { return past })
		token, err := issuer.GenerateToken(context.Background(), userID, "bob")
		require.NoError(t, err)

		rr := serve("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("token signed with a different key is rejected", func(t *testing.T) {
		other := auth.NewTestJWTService(
			"another-secret-key-also-long-enough-here",
			60*time.Minute,
			time.Now,
		)
		token, err := other.GenerateToken(context.Background(), uuid.New(), "mallory")
		require.NoError(t, err)

		rr := serve("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("token for a user that no longer exists is rejected", func(t *testing.T) {
		userID := addUser(t, userStore, "carol")
		token := issueToken(t, userID, "carol", 60*time.Minute)
		userStore.remove(userID)

		rr := serve("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})
}
