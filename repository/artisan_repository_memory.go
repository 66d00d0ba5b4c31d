package repository

import (
	"sort"
	"sync"
	"time"

	"threads-of-tradition/domain"
)

// ArtisanRepositoryMemory is an in-memory implementation of
// ArtisanRepository. It returns copies so callers never share state with
// the store.
type ArtisanRepositoryMemory struct {
	mu      sync.RWMutex
	byID    map[int64]*domain.Artisan
	byEmail map[string]int64
	nextID  int64
}

func NewArtisanRepositoryMemory() *ArtisanRepositoryMemory {
	return &ArtisanRepositoryMemory{
		byID:    make(map[int64]*domain.Artisan),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

func (r *ArtisanRepositoryMemory) Create(artisan *domain.Artisan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	artisan.ID = r.nextID
	r.nextID++
	if artisan.CreatedAt.IsZero() {
		artisan.CreatedAt = time.Now()
	}

	stored := *artisan
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID
	return nil
}

func (r *ArtisanRepositoryMemory) FindByID(id int64) (*domain.Artisan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artisan, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *artisan
	return &c, nil
}

func (r *ArtisanRepositoryMemory) FindByEmail(email string) (*domain.Artisan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	c := *r.byID[id]
	return &c, nil
}

func (r *ArtisanRepositoryMemory) Update(artisan *domain.Artisan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[artisan.ID]; !ok {
		return ErrNotFound
	}
	stored := *artisan
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID
	return nil
}

func (r *ArtisanRepositoryMemory) List(status string) ([]*domain.Artisan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artisans := make([]*domain.Artisan, 0, len(r.byID))
	for _, artisan := range r.byID {
		if status != "" && artisan.VerificationStatus != status {
			continue
		}
		c := *artisan
		artisans = append(artisans, &c)
	}

	sort.Slice(artisans, func(i, j int) bool {
		return artisans[i].CreatedAt.After(artisans[j].CreatedAt)
	})
	return artisans, nil
}

func (r *ArtisanRepositoryMemory) Counts() (total, verified, pending int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, artisan := range r.byID {
		total++
		if artisan.Verified {
			verified++
		}
		if artisan.VerificationStatus == domain.VerificationPending {
			pending++
		}
	}
	return total, verified, pending, nil
}
