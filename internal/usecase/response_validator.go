package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labelscan/backend/internal/domain"
)

// validImpactLevels are the accepted animalImpact values.
var validImpactLevels = map[string]bool{
	"Low":    true,
	"Medium": true,
	"High":   true,
}

// requiredSections maps each required top-level section to its required
// sub-fields, in validation order.
var requiredSections = []struct {
	Name   string
	Fields []string
}{
	{Name: "environmental", Fields: []string{"totalCO2", "waterUsage", "animalImpact", "rating", "breakdown"}},
	{Name: "allergens", Fields: []string{"definiteViolations", "cautionWarnings", "safe"}},
	{Name: "dietary", Fields: []string{"compatible", "violations", "tags"}},
	{Name: "health", Fields: []string{"score", "concerns", "benefits"}},
	{Name: "recommendations", Fields: []string{"environmental", "health", "allergenFree", "insights"}},
}

// ExtractReport locates the JSON payload embedded in free-form model
// output. The span runs from the first '{' to the last '}' in the text
// (the widest span), matching the upstream service's extraction.
func ExtractReport(text string) (domain.Report, error) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last < first {
		return nil, domain.ErrMalformedResponse
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(text[first:last+1]), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	return report, nil
}

// ApplyConfidenceAdjustment folds the plausibility penalty into the
// report's self-reported confidence, clamped to [0, 100], and records
// why in confidenceFactors.
func ApplyConfidenceAdjustment(report domain.Report, adjustment int) {
	if adjustment == 0 {
		return
	}

	confidence, ok := numericValue(report["confidence"])
	if !ok {
		return
	}

	adjusted := confidence + float64(adjustment)
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > 100 {
		adjusted = 100
	}
	report["confidence"] = adjusted

	factor := fmt.Sprintf("Confidence adjusted by %d: extracted ingredient list contains terms that may be OCR artifacts", adjustment)
	switch factors := report["confidenceFactors"].(type) {
	case []interface{}:
		report["confidenceFactors"] = append(factors, factor)
	default:
		report["confidenceFactors"] = []interface{}{factor}
	}
}

// ValidateReport checks the report against the required-field schema and
// collects the paths of everything missing or mistyped.
func ValidateReport(report domain.Report) domain.ValidationOutcome {
	var errs []string

	for _, section := range requiredSections {
		value, present := report[section.Name]
		if !present {
			errs = append(errs, section.Name)
			continue
		}
		obj, ok := value.(map[string]interface{})
		if !ok {
			errs = append(errs, section.Name)
			continue
		}
		for _, field := range section.Fields {
			if _, present := obj[field]; !present {
				errs = append(errs, section.Name+"."+field)
			}
		}
	}

	errs = append(errs, validateTypes(report)...)

	return domain.ValidationOutcome{Valid: len(errs) == 0, Errors: errs}
}

// validateTypes performs the type and range checks on fields that are
// present.
func validateTypes(report domain.Report) []string {
	var errs []string

	if environmental, ok := report["environmental"].(map[string]interface{}); ok {
		if value, present := environmental["totalCO2"]; present {
			if _, ok := numericValue(value); !ok {
				errs = append(errs, "environmental.totalCO2 must be numeric")
			}
		}
		if value, present := environmental["waterUsage"]; present {
			if _, ok := numericValue(value); !ok {
				errs = append(errs, "environmental.waterUsage must be numeric")
			}
		}
		if value, present := environmental["animalImpact"]; present {
			impact, ok := value.(string)
			if !ok || !validImpactLevels[impact] {
				errs = append(errs, "environmental.animalImpact must be Low, Medium, or High")
			}
		}
	}

	if allergens, ok := report["allergens"].(map[string]interface{}); ok {
		if value, present := allergens["safe"]; present {
			if _, ok := value.(bool); !ok {
				errs = append(errs, "allergens.safe must be a boolean")
			}
		}
	}

	if health, ok := report["health"].(map[string]interface{}); ok {
		if value, present := health["score"]; present {
			score, ok := numericValue(value)
			if !ok || score < 1 || score > 10 {
				errs = append(errs, "health.score must be numeric between 1 and 10")
			}
		}
	}

	if value, present := report["confidence"]; present {
		confidence, ok := numericValue(value)
		if !ok || confidence < 0 || confidence > 100 {
			errs = append(errs, "confidence must be numeric between 0 and 100")
		}
	}

	return errs
}

// numericValue extracts a float from a decoded JSON value.
func numericValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
