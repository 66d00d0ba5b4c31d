package repository

import "threads-of-tradition/domain"

type ArtisanRepository interface {
	// Create stores the artisan and assigns its ID.
	Create(artisan *domain.Artisan) error
	FindByID(id int64) (*domain.Artisan, error)
	FindByEmail(email string) (*domain.Artisan, error)
	Update(artisan *domain.Artisan) error
	// List returns artisans newest first, optionally filtered by
	// verification status ("" means all).
	List(status string) ([]*domain.Artisan, error)
	// Counts returns total, verified and pending artisan counts.
	Counts() (total, verified, pending int, err error)
}
