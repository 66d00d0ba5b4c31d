package domain

import "time"

// Verification workflow states for an artisan account.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

type Artisan struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Location           string    `json:"location"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	CertificatePath    string    `json:"certificate_path,omitempty"`
	Verified           bool      `json:"is_verified"`
	VerificationStatus string    `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
	ProductCount       int       `json:"product_count"`
}

type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type PlatformStats struct {
	TotalArtisans    int `json:"total_artisans"`
	VerifiedArtisans int `json:"verified_artisans"`
	PendingArtisans  int `json:"pending_artisans"`
	TotalProducts    int `json:"total_products"`
}
