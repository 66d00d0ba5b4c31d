package service

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"threads-of-tradition/domain"
	"threads-of-tradition/repository"

	"github.com/google/uuid"
)

// captionTemplates are the fixed marketing templates. Placeholders:
// %[1]s material description, %[2]s formatted duration with unit,
// %[3]s artisan name, %[4]s location.
var captionTemplates = []string{
	"Embrace the artistry of %[4]s with this exquisite %[1]s creation. Handcrafted with love over %[2]s by %[3]s, this piece embodies generations of Indian tradition and cultural heritage. Each thread tells a story of dedication and mastery.",
	"Discover the magic of handwoven %[1]s from the heart of %[4]s. Artisan %[3]s has poured %[2]s of meticulous craftsmanship into this masterpiece. A perfect blend of tradition and elegance for the discerning connoisseur.",
	"This stunning %[1]s piece carries the soul of %[4]s's rich textile heritage. Created by skilled artisan %[3]s over %[2]s, it represents the pinnacle of Indian handloom tradition. Own a piece of living history.",
	"From the looms of %[4]s comes this breathtaking %[1]s creation. Artisan %[3]s has invested %[2]s to bring you authentic Indian craftsmanship. Each motif whispers tales of our ancestors.",
	"Experience the warmth of tradition with this handcrafted %[1]s treasure from %[4]s. %[3]s's %[2]s of dedicated work shine through every intricate detail. A celebration of India's artisanal legacy.",
	"Unveil the beauty of authentic Indian handicraft with this %[1]s masterpiece. Born from %[2]s of patient work by %[3]s of %[4]s, it carries forward centuries of weaving tradition.",
	"Let this exquisite %[1]s piece transport you to the artistic heritage of %[4]s. Handmade by %[3]s with %[2]s of passionate craftsmanship, it's more than a product, it's a cultural treasure.",
	"Celebrate the spirit of Make in India with this gorgeous %[1]s creation from %[4]s. Artisan %[3]s's %[2]s of labor have produced a timeless piece that honors our textile traditions.",
}

// RandSource supplies template selection entropy. Production uses the
// process-wide math/rand generator, which is locked and safe under
// concurrent requests; tests inject a seeded *rand.Rand.
type RandSource interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// priceCacheTTL bounds cache entries; results are deterministic so the TTL
// only limits memory, not correctness.
const priceCacheTTL = 24 * time.Hour

// RecommendationService is the pricing and caption engine. It holds no
// mutable state and is safe for concurrent use.
type RecommendationService struct {
	rng   RandSource
	cache repository.CacheRepository
	ai    *AIService
}

// NewRecommendationService creates the engine. cache and ai may be nil;
// a nil rng selects the process-wide generator.
func NewRecommendationService(cache repository.CacheRepository, ai *AIService, rng RandSource) *RecommendationService {
	if rng == nil {
		rng = globalRand{}
	}
	return &RecommendationService{rng: rng, cache: cache, ai: ai}
}

// GenerateCaption produces a marketing caption for a handmade product.
// Repeated calls with identical input return different captions; that is
// the point of the template pool, not a bug.
func (s *RecommendationService) GenerateCaption(input domain.RecommendationInput) (string, error) {
	if strings.TrimSpace(input.Material) == "" {
		return "", invalidf("material is required")
	}
	if input.TimeSpent < 0 {
		return "", invalidf("time spent cannot be negative")
	}
	if strings.TrimSpace(input.ArtisanName) == "" {
		return "", invalidf("artisan name is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return "", invalidf("location is required")
	}

	template := captionTemplates[s.rng.Intn(len(captionTemplates))]
	caption := fmt.Sprintf(template,
		descriptionFor(input.Material),
		formatTimeSpent(input.TimeSpent),
		input.ArtisanName,
		input.Location,
	)

	if s.ai != nil {
		caption = s.ai.PolishCaption(caption, input)
	}

	return caption, nil
}

// RecommendPrice computes a recommended price range for a product. The
// computation is fully deterministic, which is what makes the result
// cacheable.
func (s *RecommendationService) RecommendPrice(material string, hours float64) (domain.PriceRange, error) {
	if strings.TrimSpace(material) == "" {
		return domain.PriceRange{}, invalidf("material is required")
	}
	if hours < 0 {
		return domain.PriceRange{}, invalidf("time spent cannot be negative")
	}

	cacheKey := fmt.Sprintf("price:%s:%g", strings.ToLower(material), hours)
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			var pr domain.PriceRange
			if err := json.Unmarshal([]byte(cached), &pr); err == nil {
				return pr, nil
			}
		}
	}

	basePrice := basePriceFor(material)
	timeComponent := hours * HourlyLaborRate
	premium := basePrice * HandmadePremiumRate
	recommended := (basePrice + timeComponent + premium) * qualityMultiplier(hours)

	minPrice := roundToNearestTen(recommended * (1 - PriceMargin))
	maxPrice := roundToNearestTen(recommended * (1 + PriceMargin))

	if minPrice < MinViablePrice {
		minPrice = MinViablePrice
	}
	if maxPrice < minPrice+MinPriceBandWidth {
		maxPrice = minPrice + MinPriceBandWidth
	}

	result := domain.PriceRange{Min: minPrice, Max: maxPrice}

	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(cacheKey, string(payload), priceCacheTTL); err != nil {
				log.Printf("Warning: failed to cache price recommendation: %v", err)
			}
		}
	}

	return result, nil
}

// Materials returns the configured material identifiers in catalog order.
func (s *RecommendationService) Materials() []string {
	return MaterialIDs()
}

// GenerateCertificateID produces a decorative certificate-of-authenticity
// token. Uniqueness is not enforced and the token is not a credential.
func (s *RecommendationService) GenerateCertificateID() string {
	id := uuid.New()
	return CertificatePrefix + strings.ToUpper(hex.EncodeToString(id[:4]))
}

// qualityMultiplier rewards higher labor-time investment in steps.
func qualityMultiplier(hours float64) float64 {
	switch {
	case hours > QualityTier3Hours:
		return QualityTier3Multiplier
	case hours > QualityTier2Hours:
		return QualityTier2Multiplier
	case hours > QualityTier1Hours:
		return QualityTier1Multiplier
	default:
		return QualityBaseMultiplier
	}
}

// roundToNearestTen rounds to the nearest multiple of 10, ties away from
// zero (the math.Round convention).
func roundToNearestTen(value float64) float64 {
	return math.Round(value/10) * 10
}

// formatTimeSpent renders labor time for captions. A day or more renders
// as "1.3 days (30 hours)"; shorter durations render as "10 hours". Days
// round half away from zero.
func formatTimeSpent(hours float64) string {
	if hours >= HoursPerDay {
		days := math.Round(hours/HoursPerDay*10) / 10
		return fmt.Sprintf("%.1f days (%.0f hours)", days, hours)
	}
	return fmt.Sprintf("%.0f hours", hours)
}
