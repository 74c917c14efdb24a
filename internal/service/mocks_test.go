package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore for tests.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by username (case-sensitive)
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// fakeTaskStore is an in-memory store.TaskStore for tests.
type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (f *fakeTaskStore) Create(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var owned []*domain.Task
	for _, task := range f.tasks {
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

func (f *fakeTaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

// failingScorer always errors, forcing the engine onto the fallback path.
type failingScorer struct{}

func (failingScorer) Score(ctx context.Context, title, description string) (float64, error) {
	return 0, context.DeadlineExceeded
}

// fixedScorer returns a constant score.
type fixedScorer struct{ score float64 }

func (s fixedScorer) Score(ctx context.Context, title, description string) (float64, error) {
	return s.score, nil
}
