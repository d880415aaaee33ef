package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are missing or invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoTextDetected is returned when OCR finds no text regions in the image
	ErrNoTextDetected = errors.New("no text found in image")

	// ErrNoIngredients is returned when the normalizer produces an empty ingredient list
	ErrNoIngredients = errors.New("no ingredients identified")

	// ErrVisionAPIFailure is returned when the Cloud Vision request fails
	ErrVisionAPIFailure = errors.New("vision API request failed")

	// ErrGeminiAPIFailure is returned when the Gemini request fails
	ErrGeminiAPIFailure = errors.New("gemini API request failed")

	// ErrTranslateAPIFailure is returned when the LibreTranslate request fails
	ErrTranslateAPIFailure = errors.New("translation request failed")

	// ErrMalformedResponse is returned when model output contains no parseable JSON
	ErrMalformedResponse = errors.New("unable to parse AI response")
)
