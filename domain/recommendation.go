package domain

// RecommendationInput carries everything caption synthesis needs.
// Constructed fresh per call, never persisted.
type RecommendationInput struct {
	Material    string  `json:"material"`
	TimeSpent   float64 `json:"time_spent"` // hours, must be >= 0
	ArtisanName string  `json:"artisan_name"`
	Location    string  `json:"location"`
}

// PriceRange is a recommended (min, max) price pair in INR.
// Invariants: Min <= Max, Min >= 200, Max >= Min+100.
type PriceRange struct {
	Min float64 `json:"price_min"`
	Max float64 `json:"price_max"`
}
