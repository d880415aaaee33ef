package usecase

import (
	"strings"
	"testing"
)

func TestCheckPlausibility(t *testing.T) {
	t.Run("known ingredients raise no suspicion", func(t *testing.T) {
		verdict := CheckPlausibility([]string{"wheat flour", "cheddar cheese", "salt"})

		if verdict.SuspiciousCount != 0 {
			t.Errorf("SuspiciousCount = %d, want 0", verdict.SuspiciousCount)
		}
		if !verdict.Valid {
			t.Error("Valid = false, want true")
		}
		if len(verdict.Warnings) != 0 {
			t.Errorf("Warnings = %v, want none", verdict.Warnings)
		}
		if verdict.ConfidenceAdjustment != 0 {
			t.Errorf("ConfidenceAdjustment = %d, want 0", verdict.ConfidenceAdjustment)
		}
	})

	t.Run("fully garbled list is invalid", func(t *testing.T) {
		garbled := []string{"xqzvwj", "qwkjzx", "zzxqvk", "vkqzzx", "jqxwzv"}

		verdict := CheckPlausibility(garbled)

		if verdict.SuspiciousCount != len(garbled) {
			t.Errorf("SuspiciousCount = %d, want %d", verdict.SuspiciousCount, len(garbled))
		}
		if verdict.Valid {
			t.Error("Valid = true, want false when every entry is unmatched")
		}
		if verdict.ConfidenceAdjustment != -10 {
			t.Errorf("ConfidenceAdjustment = %d, want -10", verdict.ConfidenceAdjustment)
		}
		if len(verdict.Warnings) != 1 {
			t.Fatalf("Warnings = %v, want exactly one", verdict.Warnings)
		}
		if !strings.Contains(verdict.Warnings[0], "OCR") {
			t.Errorf("warning %q does not mention OCR", verdict.Warnings[0])
		}
	})

	t.Run("few garbled entries produce informational warning", func(t *testing.T) {
		ingredients := []string{
			"wheat flour", "sugar", "palm oil", "salt", "cocoa butter",
			"milk powder", "soy lecithin", "vanilla extract", "qzxwvj",
		}

		verdict := CheckPlausibility(ingredients)

		if verdict.SuspiciousCount != 1 {
			t.Fatalf("SuspiciousCount = %d, want 1", verdict.SuspiciousCount)
		}
		if !verdict.Valid {
			t.Error("Valid = false, want true")
		}
		if verdict.ConfidenceAdjustment != 0 {
			t.Errorf("ConfidenceAdjustment = %d, want 0 for a single suspicious entry", verdict.ConfidenceAdjustment)
		}
		if len(verdict.Warnings) != 1 {
			t.Fatalf("Warnings = %v, want exactly one", verdict.Warnings)
		}
		if !strings.Contains(verdict.Warnings[0], "qzxwvj") {
			t.Errorf("warning %q does not name the suspicious entry", verdict.Warnings[0])
		}
	})

	t.Run("suspicious examples are capped at five", func(t *testing.T) {
		var garbled []string
		for _, s := range []string{"qjxwz", "zzwxq", "xwqjz", "wqzxj", "jzxqw", "zqwjx", "xjzwq"} {
			garbled = append(garbled, s)
		}

		verdict := CheckPlausibility(garbled)

		if verdict.SuspiciousCount != 7 {
			t.Errorf("SuspiciousCount = %d, want 7", verdict.SuspiciousCount)
		}
		if len(verdict.SuspiciousExamples) != 5 {
			t.Errorf("SuspiciousExamples has %d entries, want 5", len(verdict.SuspiciousExamples))
		}
	})

	t.Run("short unmatched entries are not flagged", func(t *testing.T) {
		verdict := CheckPlausibility([]string{"qxz", "salt"})

		if verdict.SuspiciousCount != 0 {
			t.Errorf("SuspiciousCount = %d, want 0 for a 3-char entry", verdict.SuspiciousCount)
		}
	})

	t.Run("empty list is valid", func(t *testing.T) {
		verdict := CheckPlausibility(nil)

		if !verdict.Valid || verdict.SuspiciousCount != 0 {
			t.Errorf("verdict = %+v, want valid zero verdict", verdict)
		}
	})
}

func TestMatchesVocabulary(t *testing.T) {
	testCases := []struct {
		name       string
		ingredient string
		want       bool
	}{
		{name: "exact match", ingredient: "salt", want: true},
		{name: "substring of vocabulary term", ingredient: "card", want: false},
		{name: "vocabulary term inside ingredient", ingredient: "enriched wheat flour", want: true},
		{name: "ingredient inside vocabulary term", ingredient: "ribofla", want: true},
		{name: "single word match", ingredient: "hydrolyzed soy isolate", want: true},
		{name: "no match", ingredient: "xqzvwj", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchesVocabulary(tc.ingredient); got != tc.want {
				t.Errorf("matchesVocabulary(%q) = %v, want %v", tc.ingredient, got, tc.want)
			}
		})
	}
}
