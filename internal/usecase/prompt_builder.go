package usecase

import (
	"fmt"
	"strings"

	"github.com/labelscan/backend/internal/domain"
)

// BuildAnalysisPrompt constructs the full structured-evaluation request
// for the reasoning model. Identical inputs always produce an identical
// prompt; all judgment is the model's.
func BuildAnalysisPrompt(input domain.AnalysisInput) string {
	var b strings.Builder

	b.WriteString("You are a comprehensive food analysis expert covering environmental impact, allergens, nutrition, and health.\n\n")

	fmt.Fprintf(&b, "Analyze these ingredients: %s\n\n", JoinIngredients(input.Ingredients))

	writeCheckScope(&b, input.Check)
	writeWarnings(&b, input.Warnings)
	writeEnvironmentalGuidance(&b)
	writeAllergenGuidance(&b, input.Check.Allergens)
	writeDietaryGuidance(&b, input.Check)
	writeHealthGuidance(&b)
	writeRecommendationGuidance(&b)
	writeOutputContract(&b)

	return b.String()
}

// writeCheckScope states exactly which allergens and diets to evaluate.
func writeCheckScope(b *strings.Builder, check domain.CheckRequest) {
	b.WriteString("USER'S PREFERENCES:\n")

	if len(check.Allergens) > 0 {
		fmt.Fprintf(b, "- Check ONLY for these allergens: %s\n", strings.Join(check.Allergens, ", "))
	} else {
		b.WriteString("- No specific allergens to check\n")
	}

	if len(check.Diets) > 0 {
		fmt.Fprintf(b, "- Check compatibility with: %s\n", strings.Join(check.Diets, ", "))
	} else {
		b.WriteString("- No dietary restrictions specified\n")
	}

	b.WriteString("\n")
}

// writeWarnings injects plausibility notes so the model can weigh its
// own confidence against possible OCR corruption.
func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("DATA QUALITY NOTE:\n")
	for _, warning := range warnings {
		fmt.Fprintf(b, "- %s\n", warning)
	}
	b.WriteString("\n")
}

// writeEnvironmentalGuidance renders the CO2/water band table.
func writeEnvironmentalGuidance(b *strings.Builder) {
	b.WriteString("1. ENVIRONMENTAL IMPACT:\n")
	b.WriteString("   - Total CO2 emissions (kg CO2 per 100g)\n")
	b.WriteString("   - Water usage (liters per 100g)\n")
	b.WriteString("   - Animal impact score (Low/Medium/High - based on animal products like meat, dairy, eggs)\n")
	b.WriteString("   - Overall sustainability rating (Low/Medium/High)\n")
	b.WriteString("   - Top 5 highest-impact ingredients with their individual CO2 values and percentages\n")
	b.WriteString("   Use these typical per-100g bands when estimating:\n")
	for _, band := range environmentalBands {
		fmt.Fprintf(b, "   - %s: %s kg CO2, %s L water\n", band.Category, band.CO2Range, band.Water)
	}
	b.WriteString("   For animalImpact: Low = plant-based only; Medium = dairy or eggs but no meat; High = meat, fish, or multiple animal products.\n\n")
}

// writeAllergenGuidance renders severity rules and the derivative table.
func writeAllergenGuidance(b *strings.Builder, allergens []string) {
	b.WriteString("2. ALLERGEN ANALYSIS (ONLY check for the user's selected allergens):\n")
	b.WriteString("   Use THREE severity levels:\n")
	b.WriteString("   a) DEFINITE violations (severity \"Severe\"): the allergen or one of its derivatives is directly listed in the ingredients\n")
	b.WriteString("   b) POSSIBLE violations (severity \"Caution\"): \"may contain\" warnings, cross-contamination risk, or uncertain ingredients such as \"natural flavors\"\n")
	b.WriteString("   c) SAFE: no allergen present and no cross-contamination indicators - do not include in the violation arrays\n")
	b.WriteString("   Treat derived ingredients as the base allergen:\n")
	for _, rule := range allergenDerivatives {
		fmt.Fprintf(b, "   - %s: %s\n", rule.Base, strings.Join(rule.Derivatives, ", "))
	}
	if len(allergens) > 0 {
		fmt.Fprintf(b, "   Apply the same derivative reasoning to every custom allergen the user listed (%s).\n", strings.Join(allergens, ", "))
	}
	b.WriteString("   Return separate arrays for \"definiteViolations\" and \"cautionWarnings\".\n\n")
}

// writeDietaryGuidance renders diet definitions, plus reasoning
// heuristics when the user supplied diets with no fixed rule.
func writeDietaryGuidance(b *strings.Builder, check domain.CheckRequest) {
	b.WriteString("3. DIETARY COMPATIBILITY:\n")
	b.WriteString("   - Check if the product meets the user's dietary restrictions\n")
	b.WriteString("   - List any violations (e.g., \"Contains milk - not vegan\")\n")
	b.WriteString("   - Overall compatibility score (Compatible/Partially Compatible/Not Compatible)\n")
	b.WriteString("   Diet definitions:\n")
	for _, rule := range dietRules {
		fmt.Fprintf(b, "   - %s: %s\n", rule.Name, rule.Rule)
	}

	if len(check.UnknownDiets) > 0 {
		fmt.Fprintf(b, "   The user follows diets without a fixed definition above: %s.\n", strings.Join(check.UnknownDiets, ", "))
		b.WriteString("   Common examples of how to reason about such diets:\n")
		for _, rule := range customDietHeuristics {
			fmt.Fprintf(b, "   - %s: %s\n", rule.Name, rule.Rule)
		}
		b.WriteString("   For any diet name you do not recognize, research what it prohibits and apply those prohibitions to the ingredient list.\n")
	}
	b.WriteString("\n")
}

func writeHealthGuidance(b *strings.Builder) {
	b.WriteString("4. HEALTH ANALYSIS:\n")
	b.WriteString("   - Nutritional concerns (high sodium, saturated fats, added sugars, artificial additives)\n")
	b.WriteString("   - Health benefits (fiber, vitamins, minerals, antioxidants)\n")
	b.WriteString("   - Overall health score (1-10, where 10 is healthiest)\n\n")
}

func writeRecommendationGuidance(b *strings.Builder) {
	b.WriteString("5. RECOMMENDATIONS:\n")
	b.WriteString("   - Environmental alternatives (lower CO2/water usage)\n")
	b.WriteString("   - Healthier alternatives\n")
	b.WriteString("   - Allergen-free alternatives if violations found\n")
	b.WriteString("   - General insights\n")
	b.WriteString("   When the product is incompatible, propose concrete branded alternative products, not just categories.\n\n")
}

// writeOutputContract pins the exact JSON shape expected back.
func writeOutputContract(b *strings.Builder) {
	b.WriteString("Also self-report a \"confidence\" score from 0-100 for this analysis, with the factors that raised or lowered it in \"confidenceFactors\".\n\n")
	b.WriteString("Return ONLY valid JSON in this EXACT format (no extra text):\n")
	b.WriteString(`{
  "environmental": {
    "totalCO2": <number>,
    "waterUsage": <number>,
    "animalImpact": "<Low/Medium/High>",
    "rating": "<Low/Medium/High>",
    "breakdown": [
      {"ingredient": "<name>", "co2": <number>, "percentage": <number>}
    ]
  },
  "allergens": {
    "definiteViolations": [
      {"allergen": "<name>", "severity": "Severe", "source": "<ingredient>", "warning": "<message>"}
    ],
    "cautionWarnings": [
      {"allergen": "<name>", "severity": "Caution", "source": "<reason>", "warning": "<message>"}
    ],
    "safe": <true/false>
  },
  "dietary": {
    "compatible": "<Compatible/Partially Compatible/Not Compatible>",
    "violations": ["<violation1>", "<violation2>"],
    "tags": ["<tag1>", "<tag2>"]
  },
  "health": {
    "score": <1-10>,
    "concerns": ["<concern1>", "<concern2>"],
    "benefits": ["<benefit1>", "<benefit2>"]
  },
  "recommendations": {
    "environmental": ["<alt1>", "<alt2>"],
    "health": ["<alt1>", "<alt2>"],
    "allergenFree": ["<alt1>", "<alt2>"],
    "insights": ["<insight1>", "<insight2>"]
  },
  "confidence": <0-100>,
  "confidenceFactors": ["<factor1>", "<factor2>"]
}
`)
}

// BuildCO2Prompt constructs the standalone carbon-footprint request.
func BuildCO2Prompt(ingredients []string) string {
	var b strings.Builder

	b.WriteString("You are an environmental impact expert specializing in food production carbon footprints.\n\n")
	fmt.Fprintf(&b, "Analyze the CO2 emissions for these food ingredients: %s\n\n", JoinIngredients(ingredients))
	b.WriteString("Based on scientific research and lifecycle assessments, provide:\n")
	b.WriteString("1. Total estimated CO2 emissions in kg CO2 for a typical serving (100g) of a product with these ingredients\n")
	b.WriteString("2. Per-ingredient CO2 impact breakdown (only for major contributors)\n")
	b.WriteString("3. Overall sustainability rating (Low/Medium/High impact)\n")
	b.WriteString("4. Key environmental concerns\n")
	b.WriteString("5. Suggestions for lower-impact alternatives\n\n")
	b.WriteString("Consider agricultural production, processing and manufacturing, transportation (assume an average supply chain), and packaging materials.\n")
	b.WriteString("Use these typical per-100g bands when estimating:\n")
	for _, band := range environmentalBands {
		fmt.Fprintf(&b, "- %s: %s kg CO2, %s L water\n", band.Category, band.CO2Range, band.Water)
	}
	b.WriteString("\nReturn ONLY valid JSON in this exact format:\n")
	b.WriteString(`{
  "totalCO2": <number in kg>,
  "rating": "<Low/Medium/High>",
  "breakdown": [
    {"ingredient": "<name>", "co2": <kg>, "percentage": <number>}
  ],
  "concerns": ["<concern1>", "<concern2>"],
  "alternatives": ["<alt1>", "<alt2>"]
}
`)

	return b.String()
}
