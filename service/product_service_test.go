package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"threads-of-tradition/domain"
	"threads-of-tradition/repository"
)

func newTestProductService(t *testing.T) (*ProductService, repository.ArtisanRepository, *fakeImageStore) {
	t.Helper()

	artisanRepo := repository.NewArtisanRepositoryMemory()
	store := newFakeImageStore()
	svc := NewProductService(
		repository.NewProductRepositoryMemory(),
		artisanRepo,
		NewRecommendationService(nil, nil, nil),
		store,
	)
	return svc, artisanRepo, store
}

func seedArtisan(t *testing.T, repo repository.ArtisanRepository, name, location string, verified bool) *domain.Artisan {
	t.Helper()

	artisan := &domain.Artisan{
		Name:               name,
		Location:           location,
		Email:              strings.ToLower(name) + "@example.com",
		PasswordHash:       "x",
		Verified:           verified,
		VerificationStatus: domain.VerificationPending,
	}
	if verified {
		artisan.VerificationStatus = domain.VerificationVerified
	}
	if err := repo.Create(artisan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return artisan
}

func TestProductUpload_FillsDefaults(t *testing.T) {

	svc, artisans, store := newTestProductService(t)
	artisan := seedArtisan(t, artisans, "Asha", "Varanasi", true)

	product, err := svc.Upload(ProductUpload{
		ArtisanID: artisan.ID,
		Material:  "cotton",
		TimeSpent: 10,
		Image:     bytes.NewReader([]byte("jpeg bytes")),
		ImageName: "sari.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.ID == 0 {
		t.Errorf("expected product to be assigned an id")
	}
	if !strings.Contains(product.Caption, "Asha") || !strings.Contains(product.Caption, "Varanasi") {
		t.Errorf("generated caption missing artisan context: %q", product.Caption)
	}
	if product.PriceMin != 870 || product.PriceMax != 1180 {
		t.Errorf("expected recommended prices 870/1180, got %.2f/%.2f", product.PriceMin, product.PriceMax)
	}
	if !strings.HasPrefix(product.CertificateID, CertificatePrefix) {
		t.Errorf("expected engine-issued certificate id, got %s", product.CertificateID)
	}
	if !strings.HasPrefix(product.ImagePath, "products/") {
		t.Errorf("expected products subdir, got %s", product.ImagePath)
	}
	if product.ArtisanName != "Asha" || !product.ArtisanVerified {
		t.Errorf("expected artisan decoration, got %+v", product)
	}
	if len(store.saved) != 1 {
		t.Errorf("expected 1 stored image, got %d", len(store.saved))
	}
}

func TestProductUpload_RespectsProvidedFields(t *testing.T) {

	svc, artisans, _ := newTestProductService(t)
	artisan := seedArtisan(t, artisans, "Ramesh", "Jaipur", false)

	product, err := svc.Upload(ProductUpload{
		ArtisanID: artisan.ID,
		Material:  "silk",
		TimeSpent: 20,
		Caption:   "Hand-painted silk stole",
		PriceMin:  1500,
		PriceMax:  2200,
		Image:     bytes.NewReader([]byte("jpeg bytes")),
		ImageName: "stole.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.Caption != "Hand-painted silk stole" {
		t.Errorf("expected provided caption kept, got %q", product.Caption)
	}
	if product.PriceMin != 1500 || product.PriceMax != 2200 {
		t.Errorf("expected provided prices kept, got %.2f/%.2f", product.PriceMin, product.PriceMax)
	}
}

func TestProductUpload_ZeroHoursAccepted(t *testing.T) {

	svc, artisans, _ := newTestProductService(t)
	artisan := seedArtisan(t, artisans, "Meena", "Kanchipuram", true)

	// Zero labor time is a valid input end to end, same as the engine.
	product, err := svc.Upload(ProductUpload{
		ArtisanID: artisan.ID,
		Material:  "cotton",
		TimeSpent: 0,
		Image:     bytes.NewReader([]byte("jpeg bytes")),
		ImageName: "swatch.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.PriceMin < MinViablePrice || product.PriceMax < product.PriceMin+MinPriceBandWidth {
		t.Errorf("price invariants violated: %+v", product)
	}
}

func TestProductUpload_Validation(t *testing.T) {

	svc, artisans, store := newTestProductService(t)
	artisan := seedArtisan(t, artisans, "Meena", "Kanchipuram", true)

	if _, err := svc.Upload(ProductUpload{
		ArtisanID: artisan.ID,
		Material:  "cotton",
		TimeSpent: 10,
	}); err == nil {
		t.Errorf("expected error for missing image")
	}

	if _, err := svc.Upload(ProductUpload{
		ArtisanID: artisan.ID,
		Material:  "",
		TimeSpent: 10,
		Image:     bytes.NewReader(nil),
	}); err == nil {
		t.Errorf("expected error for missing material")
	}

	if _, err := svc.Upload(ProductUpload{
		ArtisanID: artisan.ID,
		Material:  "cotton",
		TimeSpent: -2,
		Image:     bytes.NewReader(nil),
	}); err == nil {
		t.Errorf("expected error for negative time spent")
	}

	if _, err := svc.Upload(ProductUpload{
		ArtisanID: 9999,
		Material:  "cotton",
		TimeSpent: 10,
		Image:     bytes.NewReader(nil),
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown artisan, got %v", err)
	}

	// Inverted band fails after the image was stored, so it must be removed.
	if _, err := svc.Upload(ProductUpload{
		ArtisanID: artisan.ID,
		Material:  "cotton",
		TimeSpent: 10,
		PriceMin:  900,
		PriceMax:  500,
		Image:     bytes.NewReader([]byte("jpeg bytes")),
		ImageName: "sari.jpg",
	}); err == nil {
		t.Errorf("expected error for inverted price band")
	}
	if len(store.saved) != 0 {
		t.Errorf("expected stored image to be rolled back, %d left", len(store.saved))
	}
}

func TestProductDelete_OwnerOnly(t *testing.T) {

	svc, artisans, store := newTestProductService(t)
	owner := seedArtisan(t, artisans, "Asha", "Varanasi", true)
	other := seedArtisan(t, artisans, "Ramesh", "Jaipur", true)

	product, err := svc.Upload(ProductUpload{
		ArtisanID: owner.ID,
		Material:  "wool",
		TimeSpent: 15,
		Image:     bytes.NewReader([]byte("jpeg bytes")),
		ImageName: "shawl.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(product.ID, other.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(product.ID, owner.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(product.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("expected image removed with the product, %d left", len(store.saved))
	}
	if err := svc.Delete(product.ID, owner.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing product, got %v", err)
	}
}

func TestProductList_Filters(t *testing.T) {

	svc, artisans, _ := newTestProductService(t)
	verified := seedArtisan(t, artisans, "Asha", "Varanasi", true)
	pending := seedArtisan(t, artisans, "Ramesh", "Jaipur", false)

	upload := func(artisanID int64, material string, hours float64) {
		t.Helper()
		if _, err := svc.Upload(ProductUpload{
			ArtisanID: artisanID,
			Material:  material,
			TimeSpent: hours,
			Image:     bytes.NewReader([]byte("jpeg bytes")),
			ImageName: "item.jpg",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	upload(verified.ID, "silk", 40)
	upload(verified.ID, "cotton", 5)
	upload(pending.ID, "silk", 40)

	all, err := svc.List(domain.ProductFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	silk, err := svc.List(domain.ProductFilter{Material: "silk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(silk) != 2 {
		t.Errorf("expected 2 silk products, got %d", len(silk))
	}

	verifiedOnly, err := svc.List(domain.ProductFilter{VerifiedOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(verifiedOnly) != 2 {
		t.Errorf("expected 2 products from verified artisans, got %d", len(verifiedOnly))
	}
	for _, product := range verifiedOnly {
		if !product.ArtisanVerified {
			t.Errorf("unverified artisan leaked into verified-only listing: %+v", product)
		}
	}

	minPrice := 2000.0
	expensive, err := svc.List(domain.ProductFilter{MinPrice: &minPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, product := range expensive {
		if product.PriceMin < minPrice {
			t.Errorf("product below min price filter: %+v", product)
		}
	}
}
