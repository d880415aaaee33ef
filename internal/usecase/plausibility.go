package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/labelscan/backend/internal/domain"
)

// referenceVocabulary lists common food terms and fragments used to
// estimate whether extracted ingredients are real words or OCR noise.
// Matching is by exact entry, substring in either direction, or any
// single whitespace-delimited word.
var referenceVocabulary = []string{
	// Grains & starches
	"wheat", "flour", "rice", "corn", "oat", "oats", "barley", "rye",
	"maize", "semolina", "bran", "malt", "starch", "tapioca", "quinoa",
	"millet", "buckwheat", "couscous", "pasta", "bread", "cracker",

	// Sugars & sweeteners
	"sugar", "glucose", "fructose", "sucrose", "dextrose", "lactose",
	"maltose", "syrup", "honey", "molasses", "caramel", "stevia",
	"aspartame", "sucralose", "sorbitol", "xylitol", "maltodextrin",

	// Fats & oils
	"oil", "palm", "canola", "sunflower", "soybean", "coconut", "olive",
	"butter", "margarine", "shortening", "lard", "ghee", "lecithin",

	// Dairy
	"milk", "cream", "cheese", "cheddar", "mozzarella", "parmesan",
	"whey", "casein", "yogurt", "curd", "buttermilk",

	// Proteins & meats
	"chicken", "beef", "pork", "fish", "salmon", "tuna", "egg", "eggs",
	"gelatin", "tofu", "protein", "anchovy", "shrimp", "turkey",

	// Produce
	"tomato", "onion", "garlic", "potato", "carrot", "celery", "spinach",
	"apple", "banana", "orange", "lemon", "lime", "grape", "strawberry",
	"raspberry", "blueberry", "cherry", "mango", "pineapple", "raisin",
	"date", "fig", "mushroom", "pea", "bean", "lentil",
	"chickpea", "cocoa", "chocolate", "vanilla", "coffee", "tea",

	// Nuts & seeds
	"almond", "cashew", "peanut", "walnut", "pecan", "hazelnut",
	"pistachio", "macadamia", "sesame", "chia", "flax", "pumpkin",

	// Seasonings & additives
	"salt", "pepper", "paprika", "turmeric", "cumin", "coriander",
	"cinnamon", "ginger", "nutmeg", "clove", "basil", "oregano",
	"thyme", "rosemary", "mustard", "vinegar", "yeast", "baking",
	"soda", "powder", "spice", "spices", "flavor", "flavoring",
	"flavour", "extract", "seasoning", "emulsifier", "stabilizer",
	"thickener",

	// Vitamins & minerals
	"vitamin", "niacin", "riboflavin", "thiamine", "folic", "folate",
	"iron", "calcium", "zinc", "magnesium", "potassium", "sodium",
	"ascorbic", "tocopherol", "biotin",

	// Soy & legumes
	"soy", "soya", "edamame", "miso", "tempeh",

	// Preservatives & acids
	"acid", "citric", "lactic", "malic", "sorbate", "benzoate",
	"nitrite", "nitrate", "sulfite", "preservative", "antioxidant",
	"carbonate", "bicarbonate", "phosphate", "glycerin", "glycerol",
	"pectin", "gum", "carrageenan", "cellulose",

	// Misc
	"water", "juice", "concentrate", "puree", "paste", "sauce", "broth",
	"stock", "wine", "beer", "color", "colour", "annatto", "curcumin",
}

// vocabularyIndex supports O(1) exact and per-word lookups.
var vocabularyIndex = func() map[string]bool {
	idx := make(map[string]bool, len(referenceVocabulary))
	for _, term := range referenceVocabulary {
		idx[term] = true
	}
	return idx
}()

// Plausibility thresholds. The checker never blocks a request: it only
// biases the downstream confidence score and surfaces a warning that is
// injected into the analysis prompt.
const (
	warnFraction         = 0.30 // >=30% unmatched: likely OCR failure
	invalidFraction      = 0.50 // >=50% unmatched: list flagged invalid
	maxWarningExamples   = 3
	maxVerdictExamples   = 5
	adjustmentThreshold  = 3   // more than this many suspicious entries
	confidencePenalty    = -10 // applied to the model's confidence score
	suspiciousMinLength  = 3   // entries this short are never flagged
)

// CheckPlausibility cross-references an ingredient list against the
// reference vocabulary and reports how much of it looks like OCR noise.
func CheckPlausibility(ingredients []string) domain.PlausibilityVerdict {
	verdict := domain.PlausibilityVerdict{Valid: true}

	total := len(ingredients)
	if total == 0 {
		return verdict
	}

	var suspicious []string
	for _, ingredient := range ingredients {
		lowered := strings.ToLower(ingredient)
		if matchesVocabulary(lowered) {
			continue
		}
		if utf8.RuneCountInString(lowered) > suspiciousMinLength {
			suspicious = append(suspicious, ingredient)
		}
	}

	verdict.SuspiciousCount = len(suspicious)
	if len(suspicious) > maxVerdictExamples {
		verdict.SuspiciousExamples = suspicious[:maxVerdictExamples]
	} else {
		verdict.SuspiciousExamples = suspicious
	}

	fraction := float64(verdict.SuspiciousCount) / float64(total)
	verdict.Valid = fraction < invalidFraction

	switch {
	case verdict.SuspiciousCount > 0 && fraction < warnFraction:
		examples := suspicious
		if len(examples) > maxWarningExamples {
			examples = examples[:maxWarningExamples]
		}
		verdict.Warnings = append(verdict.Warnings, fmt.Sprintf(
			"Some extracted ingredients look unusual and may be OCR artifacts: %s",
			strings.Join(examples, ", ")))
	case fraction >= warnFraction:
		verdict.Warnings = append(verdict.Warnings, fmt.Sprintf(
			"%d of %d extracted ingredients do not match known food terms; the label text may have been corrupted during OCR",
			verdict.SuspiciousCount, total))
	}

	if verdict.SuspiciousCount > adjustmentThreshold {
		verdict.ConfidenceAdjustment = confidencePenalty
	}

	return verdict
}

// matchesVocabulary reports whether an ingredient looks like a known
// food term: exact match, substring containment in either direction, or
// any single word matching exactly.
func matchesVocabulary(ingredient string) bool {
	if vocabularyIndex[ingredient] {
		return true
	}

	for _, term := range referenceVocabulary {
		if strings.Contains(ingredient, term) || strings.Contains(term, ingredient) {
			return true
		}
	}

	for _, word := range strings.Fields(ingredient) {
		if vocabularyIndex[word] {
			return true
		}
	}

	return false
}
