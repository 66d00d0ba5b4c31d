package service

import (
	"math/rand"
	"strings"
	"testing"

	"threads-of-tradition/domain"
	"threads-of-tradition/repository"
)

func newTestEngine() *RecommendationService {
	return NewRecommendationService(nil, nil, nil)
}

func TestRecommendPrice_CottonExample(t *testing.T) {

	engine := newTestEngine()

	// base 300 + time 500 + premium 90 = 890, x1.15 = 1023.5
	// min: 869.975 -> 870, max: 1176.025 -> 1180
	result, err := engine.RecommendPrice("cotton", 10)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Min != 870 {
		t.Errorf("expected min 870, got %.2f", result.Min)
	}
	if result.Max != 1180 {
		t.Errorf("expected max 1180, got %.2f", result.Max)
	}
}

func TestRecommendPrice_Deterministic(t *testing.T) {

	engine := newTestEngine()

	first, err := engine.RecommendPrice("silk", 36)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.RecommendPrice("silk", 36)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestRecommendPrice_UnknownMaterialFallsBackToOther(t *testing.T) {

	engine := newTestEngine()

	unknown, err := engine.RecommendPrice("unknownmaterial", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := engine.RecommendPrice("other", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if unknown != other {
		t.Errorf("expected fallback to other, got %+v vs %+v", unknown, other)
	}
}

func TestRecommendPrice_CaseInsensitiveLookup(t *testing.T) {

	engine := newTestEngine()

	upper, _ := engine.RecommendPrice("SILK", 12)
	lower, _ := engine.RecommendPrice("silk", 12)

	if upper != lower {
		t.Errorf("expected case-insensitive lookup, got %+v vs %+v", upper, lower)
	}
}

func TestRecommendPrice_Floors(t *testing.T) {

	engine := newTestEngine()

	// jute at 0 hours: (250 + 0 + 75) x 1.0 = 325 -> min 280, max 370,
	// band widened to 380.
	result, err := engine.RecommendPrice("jute", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Min != 280 {
		t.Errorf("expected min 280, got %.2f", result.Min)
	}
	if result.Max != 380 {
		t.Errorf("expected band widened to 380, got %.2f", result.Max)
	}
}

func TestRecommendPrice_Invariants(t *testing.T) {

	engine := newTestEngine()

	hours := []float64{0, 1, 4, 8, 8.5, 10, 20, 24, 24.5, 30, 48, 48.5, 72, 200}
	for _, material := range []string{"silk", "jute", "other", "nonsense"} {
		for _, h := range hours {
			result, err := engine.RecommendPrice(material, h)
			if err != nil {
				t.Fatalf("unexpected error for %s/%.1f: %v", material, h, err)
			}
			if result.Min < MinViablePrice {
				t.Errorf("%s/%.1f: min %.2f below floor", material, h, result.Min)
			}
			if result.Max < result.Min+MinPriceBandWidth {
				t.Errorf("%s/%.1f: band too narrow: %+v", material, h, result)
			}
		}
	}
}

func TestRecommendPrice_MonotonicInHours(t *testing.T) {

	engine := newTestEngine()

	// Crosses all quality multiplier brackets (8, 24, 48).
	hours := []float64{0, 4, 8, 8.5, 16, 24, 24.5, 36, 48, 48.5, 96}

	prevMin, prevMax := 0.0, 0.0
	for _, h := range hours {
		result, err := engine.RecommendPrice("wool", h)
		if err != nil {
			t.Fatalf("unexpected error at %.1f hours: %v", h, err)
		}
		if result.Min < prevMin {
			t.Errorf("min decreased at %.1f hours: %.2f -> %.2f", h, prevMin, result.Min)
		}
		if result.Max < prevMax {
			t.Errorf("max decreased at %.1f hours: %.2f -> %.2f", h, prevMax, result.Max)
		}
		prevMin, prevMax = result.Min, result.Max
	}
}

func TestRecommendPrice_InvalidInput(t *testing.T) {

	engine := newTestEngine()

	if _, err := engine.RecommendPrice("", 10); err == nil {
		t.Errorf("expected error for empty material")
	}
	if _, err := engine.RecommendPrice("silk", -1); err == nil {
		t.Errorf("expected error for negative hours")
	}
}

func TestRecommendPrice_NoUpperBoundOnHours(t *testing.T) {

	engine := newTestEngine()

	// Labor time has no cap; any non-negative float prices.
	result, err := engine.RecommendPrice("silk", 2500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Min < MinViablePrice || result.Max < result.Min+MinPriceBandWidth {
		t.Errorf("invariants violated for large hours: %+v", result)
	}

	// (800 + 125000 + 240) x 1.5 = 189060 -> 160700 / 217420 -> 217420.
	if result.Min != 160700 {
		t.Errorf("expected min 160700, got %.2f", result.Min)
	}
}

func TestRecommendPrice_UsesCache(t *testing.T) {

	cache := repository.NewMemoryCache()
	engine := NewRecommendationService(cache, nil, nil)

	first, err := engine.RecommendPrice("cotton", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected 1 cache entry, got %d", cache.Len())
	}

	second, err := engine.RecommendPrice("cotton", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestRecommendPrice_ReadsCachedValue(t *testing.T) {

	cache := repository.NewMemoryCache()
	if err := cache.Set("price:cotton:10", `{"price_min":210,"price_max":320}`, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	engine := NewRecommendationService(cache, nil, nil)

	result, err := engine.RecommendPrice("cotton", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Min != 210 || result.Max != 320 {
		t.Errorf("expected cached value, got %+v", result)
	}
}

func TestGenerateCaption_ContainsInputs(t *testing.T) {

	engine := newTestEngine()

	caption, err := engine.GenerateCaption(domain.RecommendationInput{
		Material:    "silk",
		TimeSpent:   30,
		ArtisanName: "Asha",
		Location:    "Varanasi",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(caption, "Asha") {
		t.Errorf("caption missing artisan name: %q", caption)
	}
	if !strings.Contains(caption, "Varanasi") {
		t.Errorf("caption missing location: %q", caption)
	}
	if !strings.Contains(caption, "1.3 days (30 hours)") {
		t.Errorf("caption missing day rendering: %q", caption)
	}
	if !strings.Contains(caption, "luxurious silk") {
		t.Errorf("caption missing material description: %q", caption)
	}
}

func TestGenerateCaption_ShortDurationRendersHours(t *testing.T) {

	engine := newTestEngine()

	caption, err := engine.GenerateCaption(domain.RecommendationInput{
		Material:    "cotton",
		TimeSpent:   10,
		ArtisanName: "Ramesh",
		Location:    "Jaipur",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(caption, "10 hours") {
		t.Errorf("caption missing hour rendering: %q", caption)
	}
}

func TestGenerateCaption_UnknownMaterialUsesRawIdentifier(t *testing.T) {

	engine := newTestEngine()

	caption, err := engine.GenerateCaption(domain.RecommendationInput{
		Material:    "Dragonhide",
		TimeSpent:   5,
		ArtisanName: "Meena",
		Location:    "Kanchipuram",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(caption, "Dragonhide") {
		t.Errorf("caption should carry the raw identifier: %q", caption)
	}
	if strings.Contains(caption, "traditional fiber") {
		t.Errorf("caption should not use the other-entry phrase: %q", caption)
	}
}

func TestGenerateCaption_DeterministicWithSeededSource(t *testing.T) {

	input := domain.RecommendationInput{
		Material:    "khadi",
		TimeSpent:   12,
		ArtisanName: "Lakshmi",
		Location:    "Varanasi",
	}

	first, err := NewRecommendationService(nil, nil, rand.New(rand.NewSource(7))).GenerateCaption(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewRecommendationService(nil, nil, rand.New(rand.NewSource(7))).GenerateCaption(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("seeded captions differ:\n%q\n%q", first, second)
	}
}

func TestGenerateCaption_Validation(t *testing.T) {

	engine := newTestEngine()

	cases := []domain.RecommendationInput{
		{Material: "", TimeSpent: 5, ArtisanName: "Asha", Location: "Varanasi"},
		{Material: "silk", TimeSpent: -1, ArtisanName: "Asha", Location: "Varanasi"},
		{Material: "silk", TimeSpent: 5, ArtisanName: "", Location: "Varanasi"},
		{Material: "silk", TimeSpent: 5, ArtisanName: "Asha", Location: ""},
	}
	for i, input := range cases {
		if _, err := engine.GenerateCaption(input); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestMaterials_OrderAndSentinel(t *testing.T) {

	engine := newTestEngine()

	materials := engine.Materials()

	if len(materials) != len(materialCatalog) {
		t.Fatalf("expected %d materials, got %d", len(materialCatalog), len(materials))
	}
	if materials[0] != "silk" {
		t.Errorf("expected catalog order to start with silk, got %s", materials[0])
	}
	if materials[len(materials)-1] != materialFallbackID {
		t.Errorf("expected other last, got %s", materials[len(materials)-1])
	}

	seen := make(map[string]bool)
	for _, id := range materials {
		if seen[id] {
			t.Errorf("duplicate material identifier: %s", id)
		}
		seen[id] = true
	}
	if !seen[materialFallbackID] {
		t.Errorf("fallback sentinel missing from listing")
	}
}

func TestGenerateCertificateID_Format(t *testing.T) {

	engine := newTestEngine()

	id := engine.GenerateCertificateID()

	if !strings.HasPrefix(id, CertificatePrefix) {
		t.Errorf("expected %s prefix, got %s", CertificatePrefix, id)
	}
	if len(id) != len(CertificatePrefix)+8 {
		t.Errorf("expected %d chars, got %d (%s)", len(CertificatePrefix)+8, len(id), id)
	}
	if id != strings.ToUpper(id) {
		t.Errorf("expected upper-case token, got %s", id)
	}
}
