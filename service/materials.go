package service

import "strings"

const materialFallbackID = "other"

// materialEntry is one row of the materials catalog. The slice keeps
// configuration order for dropdowns; lookups go through the map built in
// init. Adding a material here is the only change needed to support it.
type materialEntry struct {
	ID        string
	BasePrice float64 // INR
}

var materialCatalog = []materialEntry{
	{"silk", 800},
	{"cotton", 300},
	{"wool", 500},
	{"linen", 400},
	{"jute", 250},
	{"bamboo", 350},
	{"khadi", 450},
	{"pashmina", 1200},
	{"chiffon", 600},
	{"georgette", 550},
	{"velvet", 700},
	{"brocade", 900},
	{materialFallbackID, 350},
}

// materialDescriptions is the caption phrase table. It is defined
// independently of the price table: pricing falls back to the "other"
// entry, captions fall back to the raw identifier (see descriptionFor).
var materialDescriptions = map[string]string{
	"silk":             "luxurious silk",
	"cotton":           "soft, breathable cotton",
	"wool":             "warm, natural wool",
	"linen":            "elegant linen",
	"jute":             "eco-friendly jute",
	"bamboo":           "sustainable bamboo fiber",
	"khadi":            "authentic, hand-spun khadi",
	"pashmina":         "premium Kashmiri pashmina",
	"chiffon":          "delicate chiffon",
	"georgette":        "flowing georgette",
	"velvet":           "rich velvet",
	"brocade":          "ornate brocade",
	materialFallbackID: "traditional fiber",
}

var materialPrices = make(map[string]float64, len(materialCatalog))

func init() {
	for _, m := range materialCatalog {
		materialPrices[m.ID] = m.BasePrice
	}
}

// basePriceFor resolves a material's base price. Identifiers are matched
// case-insensitively; unknown identifiers fall back to the "other" entry,
// so lookup never fails.
func basePriceFor(material string) float64 {
	if price, ok := materialPrices[strings.ToLower(material)]; ok {
		return price
	}
	return materialPrices[materialFallbackID]
}

// descriptionFor resolves a material's caption phrase. Unknown identifiers
// fall back to the identifier as supplied by the caller, not the "other"
// phrase.
func descriptionFor(material string) string {
	if desc, ok := materialDescriptions[strings.ToLower(material)]; ok {
		return desc
	}
	return material
}

// MaterialIDs returns every configured material identifier in catalog
// order, for building selection lists.
func MaterialIDs() []string {
	ids := make([]string, 0, len(materialCatalog))
	for _, m := range materialCatalog {
		ids = append(ids, m.ID)
	}
	return ids
}
