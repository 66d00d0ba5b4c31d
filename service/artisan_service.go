package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"threads-of-tradition/domain"
	"threads-of-tradition/repository"

	"github.com/google/uuid"
)

type ArtisanService struct {
	repo     repository.ArtisanRepository
	products repository.ProductRepository
	auth     *AuthService
	images   repository.ImageStore
}

func NewArtisanService(
	repo repository.ArtisanRepository,
	products repository.ProductRepository,
	auth *AuthService,
	images repository.ImageStore,
) *ArtisanService {
	return &ArtisanService{repo: repo, products: products, auth: auth, images: images}
}

// ArtisanRegistration is the registration payload. Certificate is an
// optional proof-of-craft document; it feeds the admin verification
// workflow, not authentication.
type ArtisanRegistration struct {
	Name            string
	Location        string
	Email           string
	Password        string
	Certificate     io.Reader
	CertificateName string
}

// Register creates a pending artisan account and returns it with a fresh
// token.
func (s *ArtisanService) Register(input ArtisanRegistration) (*domain.Artisan, string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, "", invalidf("name is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, "", invalidf("location is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, "", invalidf("email is required")
	}
	if input.Password == "" {
		return nil, "", invalidf("password is required")
	}

	if _, err := s.repo.FindByEmail(input.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	certificatePath := ""
	if input.Certificate != nil && input.CertificateName != "" {
		filename := uuid.NewString() + strings.ToLower(filepath.Ext(input.CertificateName))
		certificatePath, err = s.images.Save("certificates", filename, input.Certificate)
		if err != nil {
			return nil, "", fmt.Errorf("failed to store certificate: %w", err)
		}
	}

	artisan := &domain.Artisan{
		Name:               strings.TrimSpace(input.Name),
		Location:           strings.TrimSpace(input.Location),
		Email:              strings.TrimSpace(input.Email),
		PasswordHash:       hash,
		CertificatePath:    certificatePath,
		Verified:           false,
		VerificationStatus: domain.VerificationPending,
	}
	if err := s.repo.Create(artisan); err != nil {
		return nil, "", err
	}

	token, err := s.auth.GenerateToken(artisan.ID, UserTypeArtisan)
	if err != nil {
		return nil, "", err
	}
	return artisan, token, nil
}

// Login authenticates by email and password. The error does not reveal
// whether the email exists.
func (s *ArtisanService) Login(email, password string) (*domain.Artisan, string, error) {
	if email == "" || password == "" {
		return nil, "", invalidf("email and password are required")
	}

	artisan, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !s.auth.VerifyPassword(password, artisan.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(artisan.ID, UserTypeArtisan)
	if err != nil {
		return nil, "", err
	}
	s.fillProductCount(artisan)
	return artisan, token, nil
}

func (s *ArtisanService) Profile(id int64) (*domain.Artisan, error) {
	artisan, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.fillProductCount(artisan)
	return artisan, nil
}

// UpdateProfile changes name and location; empty fields keep their current
// value. Email and verification state are not updatable here.
func (s *ArtisanService) UpdateProfile(id int64, name, location string) (*domain.Artisan, error) {
	artisan, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(name) != "" {
		artisan.Name = strings.TrimSpace(name)
	}
	if strings.TrimSpace(location) != "" {
		artisan.Location = strings.TrimSpace(location)
	}

	if err := s.repo.Update(artisan); err != nil {
		return nil, err
	}
	s.fillProductCount(artisan)
	return artisan, nil
}

// Products lists the artisan's own uploads, newest first.
func (s *ArtisanService) Products(artisanID int64) ([]*domain.Product, error) {
	artisan, err := s.repo.FindByID(artisanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	products, err := s.products.ListByArtisan(artisanID)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		product.ArtisanName = artisan.Name
		product.ArtisanLocation = artisan.Location
		product.ArtisanVerified = artisan.Verified
	}
	return products, nil
}

// fillProductCount is cosmetic; a failed count is logged, not fatal.
func (s *ArtisanService) fillProductCount(artisan *domain.Artisan) {
	count, err := s.products.CountByArtisan(artisan.ID)
	if err != nil {
		log.Printf("Warning: failed to count products for artisan %d: %v", artisan.ID, err)
		return
	}
	artisan.ProductCount = count
}
