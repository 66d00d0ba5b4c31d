package repository

import (
	"sort"
	"sync"
	"time"

	"threads-of-tradition/domain"
)

// ProductRepositoryMemory is an in-memory implementation of
// ProductRepository.
type ProductRepositoryMemory struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.Product
	nextID int64
}

func NewProductRepositoryMemory() *ProductRepositoryMemory {
	return &ProductRepositoryMemory{
		byID:   make(map[int64]*domain.Product),
		nextID: 1,
	}
}

func (r *ProductRepositoryMemory) Create(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	stored := *product
	r.byID[stored.ID] = &stored
	return nil
}

func (r *ProductRepositoryMemory) FindByID(id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *product
	return &c, nil
}

func (r *ProductRepositoryMemory) List(filter domain.ProductFilter) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.byID))
	for _, product := range r.byID {
		if filter.Material != "" && product.Material != filter.Material {
			continue
		}
		if filter.MinPrice != nil && product.PriceMin < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && product.PriceMax > *filter.MaxPrice {
			continue
		}
		c := *product
		products = append(products, &c)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *ProductRepositoryMemory) ListByArtisan(artisanID int64) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0)
	for _, product := range r.byID {
		if product.ArtisanID != artisanID {
			continue
		}
		c := *product
		products = append(products, &c)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *ProductRepositoryMemory) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *ProductRepositoryMemory) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func (r *ProductRepositoryMemory) CountByArtisan(artisanID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, product := range r.byID {
		if product.ArtisanID == artisanID {
			count++
		}
	}
	return count, nil
}
