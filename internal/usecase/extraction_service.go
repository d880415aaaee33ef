package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/labelscan/backend/internal/domain"
)

// ExtractionService turns a photographed label into a normalized
// ingredient list: OCR, then model-driven extraction and translation,
// then local cleaning.
type ExtractionService struct {
	ocr       domain.OCRClient
	generator domain.Generator
}

// NewExtractionService creates an extraction service with its
// collaborator clients.
func NewExtractionService(ocr domain.OCRClient, generator domain.Generator) *ExtractionService {
	return &ExtractionService{
		ocr:       ocr,
		generator: generator,
	}
}

// ExtractText decodes the base64 image and returns the raw OCR text,
// which may be empty when the image contains no text regions.
func (s *ExtractionService) ExtractText(ctx context.Context, imageBase64 string) (string, error) {
	image, err := decodeImage(imageBase64)
	if err != nil {
		return "", err
	}

	text, err := s.ocr.DetectText(ctx, image)
	if err != nil {
		log.Printf("[EXTRACT] OCR error: %v", err)
		return "", err
	}

	return text, nil
}

// ExtractIngredients runs the full image-to-ingredient-list pipeline.
func (s *ExtractionService) ExtractIngredients(ctx context.Context, imageBase64 string) ([]string, error) {
	text, err := s.ExtractText(ctx, imageBase64)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrNoTextDetected
	}

	return s.NormalizeIngredients(ctx, text)
}

// NormalizeIngredients asks the model to extract and translate the
// ingredients section from raw label text, then cleans the answer into
// a deduplicated lowercase list.
func (s *ExtractionService) NormalizeIngredients(ctx context.Context, labelText string) ([]string, error) {
	prompt := BuildIngredientExtractionPrompt(labelText)

	answer, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[EXTRACT] Gemini error: %v", err)
		return nil, err
	}

	ingredients := CleanIngredientText(strings.TrimSpace(answer))
	if len(ingredients) == 0 {
		return nil, domain.ErrNoIngredients
	}

	log.Printf("[EXTRACT] Extracted %s", describeCount(len(ingredients), "ingredient"))
	return ingredients, nil
}

// decodeImage decodes base64 image content, accepting both padded and
// unpadded encodings.
func decodeImage(imageBase64 string) ([]byte, error) {
	image, err := base64.StdEncoding.DecodeString(imageBase64)
	if err == nil {
		return image, nil
	}
	image, err = base64.RawStdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: imageBase64 is not valid base64", domain.ErrInvalidRequest)
	}
	return image, nil
}
