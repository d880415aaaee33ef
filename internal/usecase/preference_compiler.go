package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labelscan/backend/internal/domain"
)

// dietNoneSentinel is the diet-tag value meaning "no diet selected".
const dietNoneSentinel = "none"

// ParsePreferences decodes the caller's userPreferences JSON object into
// tagged preference entries. Object key order is preserved so custom
// allergens keep their first-seen order.
func ParsePreferences(raw json.RawMessage) ([]domain.PreferenceEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: userPreferences is not an object", domain.ErrInvalidRequest)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: userPreferences is not an object", domain.ErrInvalidRequest)
	}

	prefs := make(map[string]bool)
	var order []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed userPreferences", domain.ErrInvalidRequest)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: malformed userPreferences", domain.ErrInvalidRequest)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: malformed userPreferences", domain.ErrInvalidRequest)
		}

		if _, exists := prefs[key]; !exists {
			order = append(order, key)
		}
		prefs[key] = truthy(value)
	}

	return domain.ParseProfile(prefs, order), nil
}

// truthy mirrors JSON truthiness: false, 0, "", and null are false.
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case nil:
		return false
	default:
		return true
	}
}

// CompileCheckRequest flattens tagged preference entries and an optional
// diet-tag list into the evaluation scope for the analysis prompt.
//
// Allergens: every enabled standard allergen contributes its display
// label; every enabled custom key contributes the key itself. Diets: the
// tag list is used verbatim when it names at least one real diet,
// otherwise the enabled legacy diet flags are used.
func CompileCheckRequest(entries []domain.PreferenceEntry, dietTags []string) domain.CheckRequest {
	var check domain.CheckRequest

	for _, entry := range entries {
		if !entry.Enabled {
			continue
		}
		switch entry.Kind {
		case domain.PreferenceStandardAllergen:
			check.Allergens = append(check.Allergens, domain.StandardAllergenLabel(entry.Key))
		case domain.PreferenceCustom:
			check.Allergens = append(check.Allergens, entry.Key)
		}
	}

	check.Diets = compileDiets(entries, dietTags)

	for _, diet := range check.Diets {
		if !domain.IsKnownDiet(strings.ToLower(strings.TrimSpace(diet))) {
			check.UnknownDiets = append(check.UnknownDiets, diet)
		}
	}

	return check
}

// compileDiets picks the diets-to-check list: the explicit tag list when
// it carries anything beyond the "none" sentinel, else the legacy flags.
func compileDiets(entries []domain.PreferenceEntry, dietTags []string) []string {
	if hasRealDietTag(dietTags) {
		return dietTags
	}

	var diets []string
	for _, entry := range entries {
		if entry.Kind == domain.PreferenceStandardDiet && entry.Enabled {
			diets = append(diets, entry.Key)
		}
	}
	return diets
}

// hasRealDietTag reports whether the tag list names at least one diet
// other than the "none" sentinel.
func hasRealDietTag(dietTags []string) bool {
	for _, tag := range dietTags {
		if !strings.EqualFold(strings.TrimSpace(tag), dietNoneSentinel) {
			return true
		}
	}
	return false
}
