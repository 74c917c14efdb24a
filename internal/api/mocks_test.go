package api

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/store"
)

// memUserStore is an in-memory store.UserStore for handler tests.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*domain.User)}
}

func (s *memUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	copied := *user
	s.users[user.Username] = &copied
	return nil
}

func (s *memUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *memUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// memTaskStore is an in-memory store.TaskStore for handler tests.
type memTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (s *memTaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *memTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []*domain.Task
	for _, task := range s.tasks {
		if task.OwnerID == ownerID {
			copied := *task
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if offset >= len(owned) {
		return nil, nil
	}
	owned = owned[offset:]
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

func (s *memTaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
