package service

import (
	"errors"
	"log"

	"threads-of-tradition/domain"
	"threads-of-tradition/repository"
)

type AdminService struct {
	repo     repository.AdminRepository
	artisans repository.ArtisanRepository
	products repository.ProductRepository
	auth     *AuthService
}

func NewAdminService(
	repo repository.AdminRepository,
	artisans repository.ArtisanRepository,
	products repository.ProductRepository,
	auth *AuthService,
) *AdminService {
	return &AdminService{repo: repo, artisans: artisans, products: products, auth: auth}
}

func (s *AdminService) Login(username, password string) (*domain.Admin, string, error) {
	if username == "" || password == "" {
		return nil, "", invalidf("username and password are required")
	}

	admin, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !s.auth.VerifyPassword(password, admin.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(admin.ID, UserTypeAdmin)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ListArtisans returns artisans for the admin dashboard, newest first,
// optionally filtered by verification status.
func (s *AdminService) ListArtisans(status string) ([]*domain.Artisan, error) {
	switch status {
	case "", domain.VerificationPending, domain.VerificationVerified, domain.VerificationRejected:
	default:
		return nil, invalidf("invalid status filter: %s", status)
	}

	artisans, err := s.artisans.List(status)
	if err != nil {
		return nil, err
	}
	for _, artisan := range artisans {
		count, err := s.products.CountByArtisan(artisan.ID)
		if err != nil {
			log.Printf("Warning: failed to count products for artisan %d: %v", artisan.ID, err)
			continue
		}
		artisan.ProductCount = count
	}
	return artisans, nil
}

func (s *AdminService) GetArtisan(id int64) (*domain.Artisan, error) {
	artisan, err := s.artisans.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return artisan, nil
}

// ReviewArtisan applies a verification decision. Action is "verify" or
// "reject".
func (s *AdminService) ReviewArtisan(id int64, action string) (*domain.Artisan, error) {
	artisan, err := s.artisans.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch action {
	case "verify":
		artisan.Verified = true
		artisan.VerificationStatus = domain.VerificationVerified
	case "reject":
		artisan.Verified = false
		artisan.VerificationStatus = domain.VerificationRejected
	default:
		return nil, invalidf("invalid action: %s (use \"verify\" or \"reject\")", action)
	}

	if err := s.artisans.Update(artisan); err != nil {
		return nil, err
	}
	return artisan, nil
}

func (s *AdminService) Stats() (domain.PlatformStats, error) {
	total, verified, pending, err := s.artisans.Counts()
	if err != nil {
		return domain.PlatformStats{}, err
	}
	totalProducts, err := s.products.Count()
	if err != nil {
		return domain.PlatformStats{}, err
	}
	return domain.PlatformStats{
		TotalArtisans:    total,
		VerifiedArtisans: verified,
		PendingArtisans:  pending,
		TotalProducts:    totalProducts,
	}, nil
}

// EnsureDefaultAdmin seeds the first admin account so the verification
// workflow is usable on a fresh install.
func (s *AdminService) EnsureDefaultAdmin(username, password string) error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.repo.Create(&domain.Admin{Username: username, PasswordHash: hash}); err != nil {
		return err
	}
	log.Printf("Default admin created: username=%q", username)
	return nil
}
