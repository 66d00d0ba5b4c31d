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

type ProductService struct {
	repo     repository.ProductRepository
	artisans repository.ArtisanRepository
	engine   *RecommendationService
	images   repository.ImageStore
}

func NewProductService(
	repo repository.ProductRepository,
	artisans repository.ArtisanRepository,
	engine *RecommendationService,
	images repository.ImageStore,
) *ProductService {
	return &ProductService{repo: repo, artisans: artisans, engine: engine, images: images}
}

// ProductUpload is the upload payload. Caption and prices are optional;
// missing ones are filled by the recommendation engine. The certificate ID
// is always engine-issued.
type ProductUpload struct {
	ArtisanID int64
	Material  string
	TimeSpent float64 // hours
	Caption   string
	PriceMin  float64
	PriceMax  float64
	Image     io.Reader
	ImageName string
}

func (s *ProductService) Upload(input ProductUpload) (*domain.Product, error) {
	artisan, err := s.artisans.FindByID(input.ArtisanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	material := strings.TrimSpace(input.Material)
	if material == "" {
		return nil, invalidf("material is required")
	}
	if input.TimeSpent < 0 {
		return nil, invalidf("time spent cannot be negative")
	}
	if input.Image == nil {
		return nil, invalidf("product image is required")
	}

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(input.ImageName))
	imagePath, err := s.images.Save("products", filename, input.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to store product image: %w", err)
	}

	caption := strings.TrimSpace(input.Caption)
	if caption == "" {
		caption, err = s.engine.GenerateCaption(domain.RecommendationInput{
			Material:    material,
			TimeSpent:   input.TimeSpent,
			ArtisanName: artisan.Name,
			Location:    artisan.Location,
		})
		if err != nil {
			s.removeImage(imagePath)
			return nil, err
		}
	}

	priceMin, priceMax := input.PriceMin, input.PriceMax
	if priceMin <= 0 || priceMax <= 0 {
		priceRange, err := s.engine.RecommendPrice(material, input.TimeSpent)
		if err != nil {
			s.removeImage(imagePath)
			return nil, err
		}
		priceMin, priceMax = priceRange.Min, priceRange.Max
	}
	if priceMin > priceMax {
		s.removeImage(imagePath)
		return nil, invalidf("minimum price cannot exceed maximum price")
	}

	product := &domain.Product{
		ArtisanID:     artisan.ID,
		ImagePath:     imagePath,
		Material:      material,
		TimeSpent:     input.TimeSpent,
		Caption:       caption,
		PriceMin:      priceMin,
		PriceMax:      priceMax,
		CertificateID: s.engine.GenerateCertificateID(),
	}
	if err := s.repo.Create(product); err != nil {
		s.removeImage(imagePath)
		return nil, err
	}

	decorateProduct(product, artisan)
	return product, nil
}

// List returns catalog products, newest first. The verified-only filter is
// applied here because it needs the artisan join.
func (s *ProductService) List(filter domain.ProductFilter) ([]*domain.Product, error) {
	products, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	artisanCache := make(map[int64]*domain.Artisan)
	result := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		artisan, ok := artisanCache[product.ArtisanID]
		if !ok {
			artisan, err = s.artisans.FindByID(product.ArtisanID)
			if err != nil {
				log.Printf("Warning: product %d references missing artisan %d", product.ID, product.ArtisanID)
				continue
			}
			artisanCache[product.ArtisanID] = artisan
		}
		if filter.VerifiedOnly && !artisan.Verified {
			continue
		}
		decorateProduct(product, artisan)
		result = append(result, product)
	}
	return result, nil
}

func (s *ProductService) Get(id int64) (*domain.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	artisan, err := s.artisans.FindByID(product.ArtisanID)
	if err == nil {
		decorateProduct(product, artisan)
	}
	return product, nil
}

// Delete removes a product. Only the owning artisan may delete it.
func (s *ProductService) Delete(id, artisanID int64) error {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if product.ArtisanID != artisanID {
		return ErrForbidden
	}

	s.removeImage(product.ImagePath)
	return s.repo.Delete(id)
}

func (s *ProductService) removeImage(relPath string) {
	if err := s.images.Remove(relPath); err != nil {
		log.Printf("Warning: failed to remove image %s: %v", relPath, err)
	}
}

func decorateProduct(product *domain.Product, artisan *domain.Artisan) {
	product.ArtisanName = artisan.Name
	product.ArtisanLocation = artisan.Location
	product.ArtisanVerified = artisan.Verified
}
