package usecase

import (
	"context"
	"log"

	"github.com/labelscan/backend/internal/domain"
)

// AnalysisService produces preference-aware analysis reports from an
// already-normalized ingredient list. All judgment is delegated to the
// reasoning model; this service compiles the request, pre-checks the
// ingredient list for OCR noise, and validates/repairs the answer.
type AnalysisService struct {
	generator domain.Generator
}

// NewAnalysisService creates an analysis service with its reasoning
// collaborator.
func NewAnalysisService(generator domain.Generator) *AnalysisService {
	return &AnalysisService{generator: generator}
}

// Comprehensive runs the full preference-aware analysis. Malformed or
// incomplete model output is returned as an error-shaped report rather
// than a Go error: partial value still reaches the caller.
func (s *AnalysisService) Comprehensive(
	ctx context.Context,
	ingredients []string,
	entries []domain.PreferenceEntry,
	dietTags []string,
) (domain.Report, error) {
	if len(ingredients) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	check := CompileCheckRequest(entries, dietTags)
	verdict := CheckPlausibility(ingredients)
	if !verdict.Valid {
		log.Printf("[ANALYZE] Plausibility: %d/%d ingredients suspicious, list flagged invalid",
			verdict.SuspiciousCount, len(ingredients))
	}

	prompt := BuildAnalysisPrompt(domain.AnalysisInput{
		Ingredients: ingredients,
		Check:       check,
		Warnings:    verdict.Warnings,
	})

	answer, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[ANALYZE] Gemini error: %v", err)
		return nil, err
	}
	if answer == "" {
		return domain.Report{"error": "No response from AI"}, nil
	}

	report, err := ExtractReport(answer)
	if err != nil {
		return domain.Report{
			"error":       "Unable to parse AI response",
			"rawResponse": answer,
		}, nil
	}

	ApplyConfidenceAdjustment(report, verdict.ConfidenceAdjustment)

	outcome := ValidateReport(report)
	if !outcome.Valid {
		log.Printf("[ANALYZE] Incomplete report, missing: %v", outcome.Errors)
		return domain.Report{
			"error":       "AI returned incomplete response",
			"details":     outcome.Errors,
			"partialData": map[string]interface{}(report),
		}, nil
	}

	return report, nil
}

// AnalyzeCO2 runs the standalone carbon-footprint analysis. When the
// model's answer contains no parseable JSON, a zero-filled report is
// returned so the caller still gets a usable shape.
func (s *AnalysisService) AnalyzeCO2(ctx context.Context, ingredients []string) (domain.Report, error) {
	if len(ingredients) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	answer, err := s.generator.GenerateContent(ctx, BuildCO2Prompt(ingredients))
	if err != nil {
		log.Printf("[ANALYZE] Gemini error: %v", err)
		return nil, err
	}
	if answer == "" {
		return domain.Report{"error": "No response from AI"}, nil
	}

	report, err := ExtractReport(answer)
	if err != nil {
		return domain.Report{
			"totalCO2":     0,
			"rating":       "Unknown",
			"breakdown":    []interface{}{},
			"concerns":     []interface{}{"Unable to parse AI response"},
			"alternatives": []interface{}{},
		}, nil
	}

	return report, nil
}
