package domain

// PreferenceKind classifies a preference key as part of the fixed schema
// or as a caller-defined custom allergen.
type PreferenceKind int

const (
	PreferenceStandardAllergen PreferenceKind = iota
	PreferenceStandardDiet
	PreferenceCustom
)

// PreferenceEntry is a single tagged preference record parsed from the
// caller's userPreferences object.
type PreferenceEntry struct {
	Key     string
	Kind    PreferenceKind
	Enabled bool
}

// standardAllergenLabels maps the 8 fixed allergen keys to the display
// labels used in the analysis request.
var standardAllergenLabels = map[string]string{
	"gluten":    "gluten",
	"dairy":     "dairy/milk",
	"nuts":      "nuts (all types)",
	"soy":       "soy",
	"eggs":      "eggs",
	"shellfish": "shellfish",
	"peanuts":   "peanuts",
	"treeNuts":  "tree nuts",
}

// standardAllergenOrder fixes the output order of the standard allergen
// labels regardless of map iteration order.
var standardAllergenOrder = []string{
	"gluten", "dairy", "nuts", "soy", "eggs", "shellfish", "peanuts", "treeNuts",
}

// standardDietKeys are the legacy boolean diet flags.
var standardDietKeys = map[string]bool{
	"vegan":       true,
	"vegetarian":  true,
	"pescatarian": true,
	"kosher":      true,
	"halal":       true,
	"jain":        true,
}

// standardDietOrder fixes the fallback order of legacy diet flags.
var standardDietOrder = []string{
	"vegan", "vegetarian", "pescatarian", "kosher", "halal", "jain",
}

// knownDietNames are diet tags the analysis prompt carries explicit rules
// for; anything else is treated as a custom diet needing the generic
// reasoning-guidance block.
var knownDietNames = map[string]bool{
	"vegan":        true,
	"vegetarian":   true,
	"jain":         true,
	"halal":        true,
	"kosher":       true,
	"pescatarian":  true,
	"gluten-free":  true,
	"lactose-free": true,
	"nut-free":     true,
}

// StandardAllergenLabel returns the display label for a standard allergen
// key, or "" if the key is not one of the 8 standard allergens.
func StandardAllergenLabel(key string) string {
	return standardAllergenLabels[key]
}

// StandardAllergenKeys returns the fixed allergen keys in canonical order.
func StandardAllergenKeys() []string {
	return standardAllergenOrder
}

// IsStandardDietKey reports whether key is one of the legacy diet flags.
func IsStandardDietKey(key string) bool {
	return standardDietKeys[key]
}

// StandardDietKeys returns the legacy diet flags in canonical order.
func StandardDietKeys() []string {
	return standardDietOrder
}

// IsKnownDiet reports whether the prompt carries explicit rules for the
// given diet tag.
func IsKnownDiet(name string) bool {
	return knownDietNames[name]
}

// ClassifyPreferenceKey tags a preference key as standard allergen,
// standard diet, or custom.
func ClassifyPreferenceKey(key string) PreferenceKind {
	if _, ok := standardAllergenLabels[key]; ok {
		return PreferenceStandardAllergen
	}
	if standardDietKeys[key] {
		return PreferenceStandardDiet
	}
	return PreferenceCustom
}

// ParseProfile converts the caller's free-form boolean preference object
// into tagged entries, preserving a stable order: standard allergens
// first, then standard diets, then custom keys in first-seen order.
func ParseProfile(prefs map[string]bool, customOrder []string) []PreferenceEntry {
	entries := make([]PreferenceEntry, 0, len(prefs))
	for _, key := range standardAllergenOrder {
		if enabled, ok := prefs[key]; ok {
			entries = append(entries, PreferenceEntry{Key: key, Kind: PreferenceStandardAllergen, Enabled: enabled})
		}
	}
	for _, key := range standardDietOrder {
		if enabled, ok := prefs[key]; ok {
			entries = append(entries, PreferenceEntry{Key: key, Kind: PreferenceStandardDiet, Enabled: enabled})
		}
	}
	for _, key := range customOrder {
		if ClassifyPreferenceKey(key) != PreferenceCustom {
			continue
		}
		entries = append(entries, PreferenceEntry{Key: key, Kind: PreferenceCustom, Enabled: prefs[key]})
	}
	return entries
}

// CheckRequest is the compiled evaluation scope derived from a profile:
// which allergens and diets the analysis must check.
type CheckRequest struct {
	Allergens    []string // display names, standard labels first then custom keys
	Diets        []string // diet tags, verbatim or legacy-flag derived
	UnknownDiets []string // subset of Diets with no explicit rule table
}
