package service

const (
	// Skilled labor rate in INR per hour.
	HourlyLaborRate = 50.0

	// Handmade premium as a fraction of the material base price.
	HandmadePremiumRate = 0.30

	// Quality multiplier brackets, in hours of labor.
	QualityTier3Hours = 48.0
	QualityTier2Hours = 24.0
	QualityTier1Hours = 8.0

	QualityTier3Multiplier = 1.5
	QualityTier2Multiplier = 1.3
	QualityTier1Multiplier = 1.15
	QualityBaseMultiplier  = 1.0

	// Price range is recommended value +/- this margin.
	PriceMargin = 0.15

	// Floors applied after rounding.
	MinViablePrice    = 200.0
	MinPriceBandWidth = 100.0

	// Durations at or above this many hours render as days in captions.
	HoursPerDay = 24.0

	CertificatePrefix = "TOT-"

	TokenTTLHours = 24
)
