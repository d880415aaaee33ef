package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labelscan/backend/internal/domain"
	"github.com/labelscan/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extraction *usecase.ExtractionService
	analysis   *usecase.AnalysisService
	translator domain.Translator
}

// NewHandler creates a new HTTP handler
func NewHandler(
	extraction *usecase.ExtractionService,
	analysis *usecase.AnalysisService,
	translator domain.Translator,
) *Handler {
	return &Handler{
		extraction: extraction,
		analysis:   analysis,
		translator: translator,
	}
}

// imageRequest is the body of the image-based endpoints
type imageRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// analysisRequest is the body of /comprehensive-analysis
type analysisRequest struct {
	Ingredients        []string        `json:"ingredients"`
	UserPreferences    json.RawMessage `json:"userPreferences"`
	DietaryPreferences []string        `json:"dietaryPreferences"`
}

// co2Request is the body of /analyze-co2
type co2Request struct {
	Ingredients []string `json:"ingredients"`
}

// translateRequest is the body of /translate
type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelscan-backend",
		"version": "1.0.0",
	})
}

// ExtractIngredients extracts a normalized ingredient list from a food
// package image
func (h *Handler) ExtractIngredients(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	ingredients, err := h.extraction.ExtractIngredients(c.Request.Context(), req.ImageBase64)
	if err != nil {
		status, message := mapError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

// ComprehensiveAnalysis runs the preference-aware analysis over an
// already-extracted ingredient list
func (h *Handler) ComprehensiveAnalysis(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredients provided"})
		return
	}

	entries, err := usecase.ParsePreferences(req.UserPreferences)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userPreferences"})
		return
	}

	report, err := h.analysis.Comprehensive(c.Request.Context(), req.Ingredients, entries, req.DietaryPreferences)
	if err != nil {
		status, message := mapError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	// Malformed or incomplete model output still returns 200 with an
	// error key: the payload carries partial value.
	c.JSON(http.StatusOK, report)
}

// AnalyzeCO2 runs the standalone carbon-footprint analysis
func (h *Handler) AnalyzeCO2(c *gin.Context) {
	var req co2Request
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredients provided"})
		return
	}

	report, err := h.analysis.AnalyzeCO2(c.Request.Context(), req.Ingredients)
	if err != nil {
		status, message := mapError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, report)
}

// OCR extracts raw text from an image without further processing
func (h *Handler) OCR(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	text, err := h.extraction.ExtractText(c.Request.Context(), req.ImageBase64)
	if err != nil {
		status, message := mapError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Translate proxies a translation request to the translation service
func (h *Handler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" || req.TargetLang == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text or target language"})
		return
	}

	translated, err := h.translator.Translate(c.Request.Context(), req.Text, req.TargetLang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"translatedText": translated})
}

// mapError converts pipeline errors to an HTTP status and caller-visible
// message. Missing input and empty results are 400; collaborator
// failures are 500 with the message passed through.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrNoTextDetected),
		errors.Is(err, domain.ErrNoIngredients):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
