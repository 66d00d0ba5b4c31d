package domain

import "time"

type Product struct {
	ID            int64     `json:"id"`
	ArtisanID     int64     `json:"artisan_id"`
	ImagePath     string    `json:"image_path"`
	Material      string    `json:"material"`
	TimeSpent     float64   `json:"time_spent"` // hours
	Caption       string    `json:"caption"`
	PriceMin      float64   `json:"price_min"`
	PriceMax      float64   `json:"price_max"`
	CertificateID string    `json:"certificate_id"`
	CreatedAt     time.Time `json:"created_at"`

	// Denormalized artisan fields, filled on read for API responses.
	ArtisanName     string `json:"artisan_name,omitempty"`
	ArtisanLocation string `json:"artisan_location,omitempty"`
	ArtisanVerified bool   `json:"artisan_verified"`
}

// ProductFilter narrows catalog listings. Zero values mean "no filter";
// MinPrice/MaxPrice use pointers so an explicit 0 can be expressed.
type ProductFilter struct {
	Material     string
	MinPrice     *float64
	MaxPrice     *float64
	VerifiedOnly bool
}
