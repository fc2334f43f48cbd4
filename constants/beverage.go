package constants

import "strings"

// BeverageType is the regulatory category a label is evaluated under.
type BeverageType string

const (
	Wine             BeverageType = "wine"
	DistilledSpirits BeverageType = "distilled_spirits"
	MaltBeverage     BeverageType = "malt_beverage"
	Undetermined     BeverageType = "undetermined"
)

// CanonicalBeverageType maps free-form labels from the classifier to a
// BeverageType. Returns Undetermined, false when the input is unrecognized.
func CanonicalBeverageType(input string) (BeverageType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]BeverageType{
		"spirits":          DistilledSpirits,
		"distilled spirit": DistilledSpirits,
		"liquor":           DistilledSpirits,
		"beer":             MaltBeverage,
		"malt":             MaltBeverage,
		"malt beverage":    MaltBeverage,
	}
	if bt, ok := synonyms[normalized]; ok {
		return bt, true
	}
	for _, bt := range []BeverageType{Wine, DistilledSpirits, MaltBeverage} {
		if normalized == string(bt) || normalized == strings.ReplaceAll(string(bt), "_", " ") {
			return bt, true
		}
	}
	return Undetermined, false
}

// BeverageKeywords drives keyword-count beverage detection. Plain data so the
// tables can be tuned without touching the detection algorithm.
var BeverageKeywords = map[BeverageType][]string{
	Wine: {
		"wine", "winery", "vineyard", "vineyards", "chardonnay", "cabernet",
		"merlot", "pinot", "sauvignon", "riesling", "zinfandel", "vintage",
		"appellation", "estate bottled", "contains sulfites", "tannin", "rosé",
	},
	DistilledSpirits: {
		"whiskey", "whisky", "bourbon", "vodka", "gin", "rum", "tequila",
		"brandy", "distilled", "distillery", "distilleries", "proof",
		"aged", "barrel", "cask", "single malt", "small batch",
	},
	MaltBeverage: {
		"beer", "ale", "lager", "stout", "porter", "ipa", "pilsner",
		"brewed", "brewery", "brewing", "hops", "malted barley", "hard seltzer",
	},
}

// FrontKeywords and BackKeywords drive the front/back image-role heuristic.
// Front labels carry brand-forward marketing terms; back labels carry the
// regulatory fine print.
var FrontKeywords = []string{
	"estate", "reserve", "vintage", "handcrafted", "small batch",
	"single barrel", "premium", "original", "established", "est.",
}

var BackKeywords = []string{
	"government warning", "surgeon general", "consumption of alcoholic",
	"impairs your ability", "drive a car", "operate machinery",
	"contains sulfites", "produced and bottled by", "imported by",
	"net contents", "alc. by vol", "alc/vol", "www.", "recycl",
}

// StandardsOfFill lists the legal container sizes (mL) per beverage type.
// Malt beverages have no standard of fill; any size is legal for them.
var StandardsOfFill = map[BeverageType][]int{
	Wine:             {50, 100, 187, 250, 355, 375, 500, 750, 1000, 1500, 3000},
	DistilledSpirits: {50, 100, 200, 355, 375, 700, 750, 900, 1000, 1750, 1800},
}

// IsLegalFill reports whether containerML is a legal standard of fill for the
// beverage type. Unknown/undetermined types are not gated here; that decision
// belongs to the status engine's caller.
func IsLegalFill(bt BeverageType, containerML int) bool {
	sizes, ok := StandardsOfFill[bt]
	if !ok {
		return true
	}
	for _, s := range sizes {
		if s == containerML {
			return true
		}
	}
	return false
}
