package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/domain"
	"github.com/platewise/backend/internal/units"
	"github.com/platewise/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	parser  *usecase.ParserService
	matcher *usecase.MatchingService
	timing  *usecase.TimingService
}

// NewHandler creates a new HTTP handler
func NewHandler(parser *usecase.ParserService, matcher *usecase.MatchingService, timing *usecase.TimingService) *Handler {
	return &Handler{parser: parser, matcher: matcher, timing: timing}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "platewise-backend",
		"version":   "1.0.0",
		"languages": units.SupportedLanguages(),
	})
}

type parseIngredientRequest struct {
	Text                    string `json:"text" binding:"required"`
	Language                string `json:"language"`
	FallbackLanguage        string `json:"fallbackLanguage"`
	IncludeExtra            *bool  `json:"includeExtra"`
	IncludeAlternativeUnits bool   `json:"includeAlternativeUnits"`
}

// ParseIngredient turns one free-text ingredient line into a structured
// record. Lines the grammar cannot read at all come back with only the
// ingredient phrase filled in; a null result means empty input.
func (h *Handler) ParseIngredient(c *gin.Context) {
	var req parseIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	includeExtra := true
	if req.IncludeExtra != nil {
		includeExtra = *req.IncludeExtra
	}

	result, err := h.parser.ParseIngredient(c.Request.Context(), req.Text, usecase.IngredientParseOptions{
		Language:                req.Language,
		FallbackLanguage:        req.FallbackLanguage,
		IncludeExtra:            includeExtra,
		IncludeAlternativeUnits: req.IncludeAlternativeUnits,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

type parseInstructionRequest struct {
	Text                              string `json:"text" binding:"required"`
	Language                          string `json:"language"`
	FallbackLanguage                  string `json:"fallbackLanguage"`
	IncludeAlternativeTemperatureUnit bool   `json:"includeAlternativeTemperatureUnit"`
}

// ParseInstruction extracts durations and temperatures from one
// instruction sentence.
func (h *Handler) ParseInstruction(c *gin.Context) {
	var req parseInstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.parser.ParseInstruction(c.Request.Context(), req.Text, usecase.InstructionParseOptions{
		Language:                          req.Language,
		FallbackLanguage:                  req.FallbackLanguage,
		IncludeAlternativeTemperatureUnit: req.IncludeAlternativeTemperatureUnit,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

type matchIngredientsRequest struct {
	StepText    string                    `json:"stepText" binding:"required"`
	Ingredients []domain.RecipeIngredient `json:"ingredients" binding:"required"`
	Debug       bool                      `json:"debug"`
}

// MatchIngredients returns the subset of the recipe's ingredients that the
// step's prose mentions, ordered by first occurrence.
func (h *Handler) MatchIngredients(c *gin.Context) {
	var req matchIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Debug {
		matched, diagnostics := h.matcher.MatchIngredientsDebug(req.StepText, req.Ingredients)
		c.JSON(http.StatusOK, gin.H{"ingredients": matched, "diagnostics": diagnostics})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": h.matcher.MatchIngredients(req.StepText, req.Ingredients)})
}

type matchTimingsRequest struct {
	Step domain.RecipeStep `json:"step" binding:"required"`
}

// MatchTimings locates each of the step's extracted durations in its raw
// instruction text.
func (h *Handler) MatchTimings(c *gin.Context) {
	var req matchTimingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timings": h.timing.MatchedTimings(req.Step)})
}

type analyzeStepRequest struct {
	Step        domain.RecipeStep         `json:"step" binding:"required"`
	Ingredients []domain.RecipeIngredient `json:"ingredients"`
}

// AnalyzeStep runs ingredient matching and timing location for one step in
// a single call, the way the app processes a step at display time.
func (h *Handler) AnalyzeStep(c *gin.Context) {
	var req analyzeStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ingredients": h.matcher.MatchIngredients(req.Step.InstructionText, req.Ingredients),
		"timings":     h.timing.MatchedTimings(req.Step),
	})
}

// abortWithError maps engine sentinels to HTTP status codes
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrLanguageNotSupported) || errors.Is(err, domain.ErrInvalidRequest) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
