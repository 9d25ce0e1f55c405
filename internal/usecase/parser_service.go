package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/platewise/backend/internal/domain"
	"github.com/platewise/backend/internal/units"
)

// ParserServiceConfig holds configuration for the parser service
type ParserServiceConfig struct {
	DefaultLanguage    string
	FallbackLanguage   string
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ParserService turns free-text ingredient lines and instruction sentences
// into structured records, caching results per language and input text.
type ParserService struct {
	cache              domain.CacheRepository
	cacheTTL           time.Duration
	defaultLanguage    string
	fallbackLanguage   string
	enableDebugLogging bool
}

// NewParserService creates a parser service. The cache may be nil, in which
// case every call parses from scratch.
func NewParserService(cache domain.CacheRepository, config ParserServiceConfig) *ParserService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour // Default 30 days
	}
	defaultLanguage := config.DefaultLanguage
	if defaultLanguage == "" {
		defaultLanguage = "en"
	}
	return &ParserService{
		cache:              cache,
		cacheTTL:           cacheTTL,
		defaultLanguage:    defaultLanguage,
		fallbackLanguage:   config.FallbackLanguage,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// IngredientParseOptions selects language and optional outputs for one
// ingredient parse. IncludeExtra preserves the trailing phrase after the
// ingredient name; the HTTP layer defaults it to true.
type IngredientParseOptions struct {
	Language                string
	FallbackLanguage        string
	IncludeExtra            bool
	IncludeAlternativeUnits bool
}

// InstructionParseOptions selects language and optional outputs for one
// instruction parse.
type InstructionParseOptions struct {
	Language                          string
	FallbackLanguage                  string
	IncludeAlternativeTemperatureUnit bool
}

// resolveCatalog finds the unit catalog for the requested language, then
// the fallback. Only when neither has a catalog does the service fail.
func (s *ParserService) resolveCatalog(language, fallback string) (*units.Config, error) {
	if language == "" {
		language = s.defaultLanguage
	}
	if catalog, ok := units.ForLanguage(language); ok {
		return catalog, nil
	}
	if fallback == "" {
		fallback = s.fallbackLanguage
	}
	if fallback != "" {
		if catalog, ok := units.ForLanguage(fallback); ok {
			return catalog, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrLanguageNotSupported, language)
}

// ParseIngredient parses one ingredient line. Returns (nil, nil) for empty
// input; fails only when no catalog exists for the language or fallback.
func (s *ParserService) ParseIngredient(ctx context.Context, text string, opts IngredientParseOptions) (*domain.IngredientParseResult, error) {
	catalog, err := s.resolveCatalog(opts.Language, opts.FallbackLanguage)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("ingredient:%s:%t:%t:%s", catalog.Language, opts.IncludeExtra, opts.IncludeAlternativeUnits, text)
	if cached := s.cachedResult(ctx, key, &domain.IngredientParseResult{}); cached != nil {
		return cached.(*domain.IngredientParseResult), nil
	}

	result := parseIngredient(text, catalog, ingredientParseOptions{
		includeExtra:            opts.IncludeExtra,
		includeAlternativeUnits: opts.IncludeAlternativeUnits,
	})
	if s.enableDebugLogging {
		log.Printf("[PARSE] ingredient %q (%s) -> %+v", text, catalog.Language, result)
	}
	if result != nil && s.cache != nil {
		_ = s.cache.Set(ctx, key, result, s.cacheTTL)
	}
	return result, nil
}

// ParseInstruction parses one instruction sentence. Same contract as
// ParseIngredient.
func (s *ParserService) ParseInstruction(ctx context.Context, text string, opts InstructionParseOptions) (*domain.InstructionParseResult, error) {
	catalog, err := s.resolveCatalog(opts.Language, opts.FallbackLanguage)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("instruction:%s:%t:%s", catalog.Language, opts.IncludeAlternativeTemperatureUnit, text)
	if cached := s.cachedResult(ctx, key, &domain.InstructionParseResult{}); cached != nil {
		return cached.(*domain.InstructionParseResult), nil
	}

	result := parseInstruction(text, catalog, opts.IncludeAlternativeTemperatureUnit)
	if s.enableDebugLogging {
		log.Printf("[PARSE] instruction %q (%s) -> %+v", text, catalog.Language, result)
	}
	if result != nil && s.cache != nil {
		_ = s.cache.Set(ctx, key, result, s.cacheTTL)
	}
	return result, nil
}

// cachedResult fetches and re-types a cached value. The memory cache stores
// JSON-shaped values, so hits are remarshalled into the target type.
func (s *ParserService) cachedResult(ctx context.Context, key string, target interface{}) interface{} {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return nil
	}
	if s.enableDebugLogging {
		log.Printf("[PARSE] cache hit for %q", key)
	}
	return target
}
