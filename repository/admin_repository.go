package repository

import "threads-of-tradition/domain"

type AdminRepository interface {
	Create(admin *domain.Admin) error
	FindByUsername(username string) (*domain.Admin, error)
	Count() (int, error)
}
