package domain

import "context"

// OCRClient defines the interface for the image-to-text collaborator.
type OCRClient interface {
	// DetectText returns the primary detected text block for the image
	// bytes, or "" when no text regions are found.
	DetectText(ctx context.Context, image []byte) (string, error)
}

// Generator defines the interface for the structured-generation
// reasoning collaborator.
type Generator interface {
	// GenerateContent sends a text prompt and returns the model's
	// free-form text answer, or "" when the model produced no text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Translator defines the interface for the third-party translation
// collaborator.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
