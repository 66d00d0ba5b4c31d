package repository

import (
	"sync"
	"time"

	"threads-of-tradition/domain"
)

// AdminRepositoryMemory is an in-memory implementation of AdminRepository.
type AdminRepositoryMemory struct {
	mu         sync.RWMutex
	byUsername map[string]*domain.Admin
	nextID     int64
}

func NewAdminRepositoryMemory() *AdminRepositoryMemory {
	return &AdminRepositoryMemory{
		byUsername: make(map[string]*domain.Admin),
		nextID:     1,
	}
}

func (r *AdminRepositoryMemory) Create(admin *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	admin.ID = r.nextID
	r.nextID++
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}

	stored := *admin
	r.byUsername[stored.Username] = &stored
	return nil
}

func (r *AdminRepositoryMemory) FindByUsername(username string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	c := *admin
	return &c, nil
}

func (r *AdminRepositoryMemory) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUsername), nil
}
