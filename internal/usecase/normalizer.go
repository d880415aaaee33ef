package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// labelMarkers are leading list/label markers stripped from raw model
// output. Ordered longest-first so the longest applicable marker wins.
var labelMarkers = []string{
	"ingredients:",
	"ingredient:",
	"- ",
	"* ",
	"• ",
}

// edgeCutset contains characters stripped from the edges of each piece.
// Internal occurrences are preserved (e.g. "vitamin b-12").
const edgeCutset = "0123456789.-*•() "

// BuildIngredientExtractionPrompt returns the instruction sent to the
// model to locate, flatten, and translate the ingredients section of
// raw label text.
func BuildIngredientExtractionPrompt(labelText string) string {
	var b strings.Builder

	b.WriteString("You are an expert food label analyzer. Extract ALL ingredients from this food product label text.\n\n")
	b.WriteString("CRITICAL INSTRUCTIONS:\n")
	b.WriteString("1. Find the \"INGREDIENTS:\" section (may be in any language)\n")
	b.WriteString("2. List EVERY SINGLE ingredient, including sub-ingredients in parentheses\n")
	b.WriteString("3. For compound ingredients like \"ENRICHED WHEAT FLOUR (WHEAT FLOUR, NIACIN, REDUCED IRON, THIAMINE MONONITRATE, RIBOFLAVIN, FOLIC ACID)\", list each component\n")
	b.WriteString("4. TRANSLATE ALL INGREDIENTS TO ENGLISH if they are in another language\n")
	b.WriteString("5. Return as a simple comma-separated list IN ENGLISH\n")
	b.WriteString("6. Use lowercase\n")
	b.WriteString("7. Keep full ingredient names (don't abbreviate)\n\n")
	b.WriteString("Example:\n")
	b.WriteString("If the label says \"INGREDIENTES: HARINA DE TRIGO, QUESO CHEDDAR, ACEITE DE PALMA\"\n")
	b.WriteString("Return: wheat flour, cheddar cheese, palm oil\n\n")
	b.WriteString("If the label says \"成分: 小麦粉、チーズ、パーム油\"\n")
	b.WriteString("Return: wheat flour, cheese, palm oil\n\n")
	b.WriteString("Now extract from this text and return ONLY in English:\n")
	b.WriteString(labelText)
	b.WriteString("\n")

	return b.String()
}

// CleanIngredientText turns the model's raw comma-separated answer into
// an ordered list of distinct lowercase ingredient names. Running it on
// its own joined output yields the same list.
func CleanIngredientText(raw string) []string {
	// Normalize separators: newlines and semicolons become commas,
	// double spaces collapse to single.
	normalized := strings.ReplaceAll(raw, "\n", ",")
	normalized = strings.ReplaceAll(normalized, ";", ",")
	normalized = strings.ReplaceAll(normalized, "  ", " ")

	seen := make(map[string]bool)
	var ingredients []string

	for _, piece := range strings.Split(normalized, ",") {
		cleaned := strings.ToLower(strings.TrimSpace(piece))
		cleaned = stripLabelMarker(cleaned)
		cleaned = strings.Trim(cleaned, edgeCutset)

		if cleaned == "" || utf8.RuneCountInString(cleaned) < 3 {
			continue
		}

		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		ingredients = append(ingredients, cleaned)
	}

	return ingredients
}

// stripLabelMarker removes at most one leading label marker, longest
// match first.
func stripLabelMarker(s string) string {
	for _, marker := range labelMarkers {
		if strings.HasPrefix(s, marker) {
			return strings.TrimSpace(s[len(marker):])
		}
	}
	return s
}

// JoinIngredients renders an ingredient list for prompt inclusion.
func JoinIngredients(ingredients []string) string {
	return strings.Join(ingredients, ", ")
}

// describeCount is a small helper used in log lines.
func describeCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
