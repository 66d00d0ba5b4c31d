package repository

import "threads-of-tradition/domain"

type ProductRepository interface {
	// Create stores the product and assigns its ID.
	Create(product *domain.Product) error
	FindByID(id int64) (*domain.Product, error)
	// List returns products newest first. Material and price filters are
	// applied here; artisan-level filters belong to the service layer,
	// which owns the join.
	List(filter domain.ProductFilter) ([]*domain.Product, error)
	ListByArtisan(artisanID int64) ([]*domain.Product, error)
	Delete(id int64) error
	Count() (int, error)
	CountByArtisan(artisanID int64) (int, error)
}
