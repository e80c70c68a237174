package serviceimpl

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"taskmanager/domain/models"
	"taskmanager/domain/ports"
	"taskmanager/domain/repositories"
)

// fakeTaskRepo is an in-memory TaskRepository with the same ownership
// semantics as the real one: another owner's task looks missing.
type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*models.Task
	// listErrFor fails List calls for the given owners
	listErrFor map[uuid.UUID]error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		tasks:      make(map[uuid.UUID]*models.Task),
		listErrFor: make(map[uuid.UUID]error),
	}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) List(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.listErrFor[userID]; err != nil {
		return nil, err
	}
	var out []*models.Task
	for _, task := range r.tasks {
		if task.UserID == userID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return repositories.ErrNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, id := range ids {
		if task, ok := r.tasks[id]; ok && task.UserID == userID {
			delete(r.tasks, id)
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) ListReminderOptIn(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, user := range r.users {
		if user.NightlyReminders {
			copied := *user
			out = append(out, &copied)
		}
	}
	return out, nil
}

// fakeMailer records deliveries and can fail for chosen recipients.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []*ports.Mail
	failFor map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]bool)}
}

func (m *fakeMailer) Send(ctx context.Context, mail *ports.Mail) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[mail.To] {
		return "", errors.New("smtp unavailable")
	}
	copied := *mail
	m.sent = append(m.sent, &copied)
	return uuid.New().String(), nil
}

func (m *fakeMailer) sentTo(email string) *ports.Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mail := range m.sent {
		if mail.To == email {
			return mail
		}
	}
	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
