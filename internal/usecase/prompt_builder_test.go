package usecase

import (
	"strings"
	"testing"

	"github.com/labelscan/backend/internal/domain"
)

func analysisInput() domain.AnalysisInput {
	return domain.AnalysisInput{
		Ingredients: []string{"wheat flour", "milk powder", "salt"},
		Check: domain.CheckRequest{
			Allergens:    []string{"gluten", "dairy/milk"},
			Diets:        []string{"vegan"},
			UnknownDiets: nil,
		},
		Warnings: []string{"Some extracted ingredients look unusual"},
	}
}

func TestBuildAnalysisPrompt(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		input := analysisInput()
		if BuildAnalysisPrompt(input) != BuildAnalysisPrompt(input) {
			t.Error("identical inputs produced different prompts")
		}
	})

	t.Run("includes ingredients and check scope", func(t *testing.T) {
		prompt := BuildAnalysisPrompt(analysisInput())

		if !strings.Contains(prompt, "wheat flour, milk powder, salt") {
			t.Error("prompt missing ingredient list")
		}
		if !strings.Contains(prompt, "Check ONLY for these allergens: gluten, dairy/milk") {
			t.Error("prompt missing allergen scope")
		}
		if !strings.Contains(prompt, "Check compatibility with: vegan") {
			t.Error("prompt missing diet scope")
		}
	})

	t.Run("includes rule tables", func(t *testing.T) {
		prompt := BuildAnalysisPrompt(analysisInput())

		for _, rule := range dietRules {
			if !strings.Contains(prompt, rule.Name+": "+rule.Rule) {
				t.Errorf("prompt missing diet rule for %s", rule.Name)
			}
		}
		for _, rule := range allergenDerivatives {
			if !strings.Contains(prompt, rule.Base+": ") {
				t.Errorf("prompt missing derivative rule for %s", rule.Base)
			}
		}
		for _, band := range environmentalBands {
			if !strings.Contains(prompt, band.CO2Range) {
				t.Errorf("prompt missing environmental band for %s", band.Category)
			}
		}
	})

	t.Run("includes plausibility warnings", func(t *testing.T) {
		prompt := BuildAnalysisPrompt(analysisInput())
		if !strings.Contains(prompt, "DATA QUALITY NOTE") {
			t.Error("prompt missing data quality section")
		}
		if !strings.Contains(prompt, "Some extracted ingredients look unusual") {
			t.Error("prompt missing warning text")
		}

		input := analysisInput()
		input.Warnings = nil
		if strings.Contains(BuildAnalysisPrompt(input), "DATA QUALITY NOTE") {
			t.Error("data quality section present without warnings")
		}
	})

	t.Run("custom diet guidance only for unknown diets", func(t *testing.T) {
		input := analysisInput()
		prompt := BuildAnalysisPrompt(input)
		if strings.Contains(prompt, "without a fixed definition") {
			t.Error("custom diet guidance present with only known diets")
		}

		input.Check.Diets = []string{"keto"}
		input.Check.UnknownDiets = []string{"keto"}
		prompt = BuildAnalysisPrompt(input)
		if !strings.Contains(prompt, "without a fixed definition above: keto") {
			t.Error("custom diet guidance missing for unknown diet")
		}
		if !strings.Contains(prompt, "Keto: ") {
			t.Error("custom diet heuristics missing")
		}
		if !strings.Contains(prompt, "research what it prohibits") {
			t.Error("generic research-and-apply instruction missing")
		}
	})

	t.Run("empty scope uses placeholder lines", func(t *testing.T) {
		prompt := BuildAnalysisPrompt(domain.AnalysisInput{Ingredients: []string{"salt"}})

		if !strings.Contains(prompt, "No specific allergens to check") {
			t.Error("prompt missing empty-allergen placeholder")
		}
		if !strings.Contains(prompt, "No dietary restrictions specified") {
			t.Error("prompt missing empty-diet placeholder")
		}
	})

	t.Run("pins output contract", func(t *testing.T) {
		prompt := BuildAnalysisPrompt(analysisInput())

		for _, field := range []string{`"environmental"`, `"allergens"`, `"dietary"`, `"health"`, `"recommendations"`, `"confidence"`, `"confidenceFactors"`} {
			if !strings.Contains(prompt, field) {
				t.Errorf("output contract missing %s", field)
			}
		}
	})
}

func TestBuildCO2Prompt(t *testing.T) {
	ingredients := []string{"beef", "rice"}
	prompt := BuildCO2Prompt(ingredients)

	if !strings.Contains(prompt, "beef, rice") {
		t.Error("prompt missing ingredient list")
	}
	if !strings.Contains(prompt, `"totalCO2"`) || !strings.Contains(prompt, `"breakdown"`) {
		t.Error("prompt missing output contract fields")
	}
	if prompt != BuildCO2Prompt(ingredients) {
		t.Error("prompt construction is not deterministic")
	}
}
