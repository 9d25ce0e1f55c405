package usecase

import (
	"log"
	"sort"

	"github.com/platewise/backend/internal/domain"
	"github.com/platewise/backend/internal/units"
)

// matchKind classifies how a variant occurrence relates to its ingredient's
// canonical token sequence.
type matchKind int

const (
	kindModifierSingle matchKind = iota // lone modifier token ("chicken" of "chicken breast")
	kindHeadSingle                      // lone head token ("breast" of "chicken breast")
	kindFullSingle                      // single token matching a single-token canonical
	kindFullSpan                        // multi-token span
)

func (k matchKind) String() string {
	switch k {
	case kindFullSpan:
		return "fullSpan"
	case kindFullSingle:
		return "fullSingle"
	case kindHeadSingle:
		return "headSingle"
	default:
		return "modifierSingle"
	}
}

// Base points per match kind, plus bonuses
const (
	scoreFullSpan       = 1000.0
	scoreFullSingle     = 900.0
	scoreHeadSingle     = 700.0
	scoreModifierSingle = 500.0
	spanLengthBonus     = 50.0 // per token, spans of 2 or more only
	exactCanonicalBonus = 75.0 // variant equals the full canonical sequence
)

// MatchingConfig holds the tunable tables and bounds of the step-ingredient
// matcher. Construct once (DefaultMatchingConfig) and pass by value; there
// is no ambient shared instance.
type MatchingConfig struct {
	NGramMin int
	NGramMax int

	// MinTokenLength drops shorter tokens from ingredient phrases unless
	// allow-listed.
	MinTokenLength      int
	ShortTokenAllowlist map[string]bool

	StopWords map[string]bool

	// LowInfoHeads are tokens too generic to identify an ingredient alone.
	LowInfoHeads map[string]bool

	// ModifierAllowHeads are phrase heads that permit matching on a lone
	// modifier ("chicken" may stand in for "chicken breast").
	ModifierAllowHeads map[string]bool

	// Synonyms maps a filtered phrase to alternative names.
	Synonyms map[string][]string

	// IncludeExtraInformation adds the ingredient's extra-information field
	// as a variant source. Current policy excludes it.
	IncludeExtraInformation bool

	EnableDebugLogging bool
}

// DefaultMatchingConfig returns the tuned defaults.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		NGramMin:            1,
		NGramMax:            3,
		MinTokenLength:      3,
		ShortTokenAllowlist: map[string]bool{},
		StopWords: map[string]bool{
			"the": true, "and": true, "fresh": true, "freshly": true,
			"chopped": true, "diced": true, "sliced": true, "minced": true,
			"grated": true, "peeled": true, "crushed": true, "halved": true,
			"quartered": true, "trimmed": true, "beaten": true, "drained": true,
			"rinsed": true, "melted": true, "softened": true, "finely": true,
			"thinly": true, "roughly": true, "optional": true, "taste": true,
			"serve": true, "serving": true, "extra": true, "more": true,
			"needed": true, "sized": true, "thumb-sized": true,
		},
		LowInfoHeads: map[string]bool{
			"oil": true, "sauce": true, "powder": true, "paste": true,
			"stock": true, "cream": true, "water": true, "juice": true,
			"seed": true, "flake": true, "leaf": true, "vinegar": true,
		},
		ModifierAllowHeads: map[string]bool{
			"breast": true, "fillet": true, "thigh": true, "leg": true,
		},
		Synonyms: map[string][]string{
			"coriander":    {"cilantro"},
			"spring onion": {"scallion", "green onion"},
			"aubergine":    {"eggplant"},
			"courgette":    {"zucchini"},
			"chickpea":     {"garbanzo bean"},
		},
	}
}

// matchCandidate is one scored occurrence of one ingredient variant in a
// step's token sequence. Candidates live only for the duration of a single
// MatchIngredients call.
type matchCandidate struct {
	ingredientIndex int
	variantText     string
	variantTokens   []string
	start           int
	spanLength      int
	kind            matchKind
	score           float64
}

// MatchDiagnostic reports an ingredient's best candidate, kept for every
// ingredient whether or not it was selected.
type MatchDiagnostic struct {
	IngredientIndex int     `json:"ingredientIndex"`
	VariantText     string  `json:"variantText"`
	Start           int     `json:"start"`
	SpanLength      int     `json:"spanLength"`
	Kind            string  `json:"kind"`
	Score           float64 `json:"score"`
	Selected        bool    `json:"selected"`
}

// MatchingService decides which of a recipe's ingredients a step's prose
// actually mentions. Stateless between calls; safe for concurrent use.
type MatchingService struct {
	config     MatchingConfig
	catalog    *units.Config
	lemmatizer domain.Lemmatizer
}

// NewMatchingService creates a matching service over one language catalog.
func NewMatchingService(config MatchingConfig, catalog *units.Config, lemmatizer domain.Lemmatizer) *MatchingService {
	if config.NGramMin <= 0 {
		config.NGramMin = 1
	}
	if config.NGramMax < config.NGramMin {
		config.NGramMax = 3
	}
	if config.MinTokenLength <= 0 {
		config.MinTokenLength = 3
	}
	return &MatchingService{config: config, catalog: catalog, lemmatizer: lemmatizer}
}

// MatchIngredients returns the ingredients mentioned in stepText, ordered
// by first occurrence. Ingredients that never occur are omitted; no
// ingredient is returned twice and no two results claim overlapping text.
func (s *MatchingService) MatchIngredients(stepText string, ingredients []domain.RecipeIngredient) []domain.RecipeIngredient {
	matched, _ := s.match(stepText, ingredients, false)
	return matched
}

// MatchIngredientsDebug additionally reports every ingredient's best
// candidate for diagnostics.
func (s *MatchingService) MatchIngredientsDebug(stepText string, ingredients []domain.RecipeIngredient) ([]domain.RecipeIngredient, []MatchDiagnostic) {
	return s.match(stepText, ingredients, true)
}

func (s *MatchingService) match(stepText string, ingredients []domain.RecipeIngredient, debug bool) ([]domain.RecipeIngredient, []MatchDiagnostic) {
	step := normalizeStep(stepText, s.lemmatizer)
	if len(step.tokens) == 0 || len(ingredients) == 0 {
		return nil, nil
	}

	var candidates []matchCandidate
	bestByIngredient := make(map[int]matchCandidate)

	for index, ingredient := range ingredients {
		profile := s.buildProfile(index, ingredient)
		for key, variant := range profile.variants {
			if !allTokensPresent(variant, step.tokenSet) {
				continue
			}
			for _, start := range findOccurrences(step.tokens, variant) {
				candidate := matchCandidate{
					ingredientIndex: index,
					variantText:     key,
					variantTokens:   variant,
					start:           start,
					spanLength:      len(variant),
					kind:            classifyKind(variant, profile.canonical),
				}
				candidate.score = scoreCandidate(candidate, profile.canonical)
				candidates = append(candidates, candidate)
				if best, ok := bestByIngredient[index]; !ok || candidate.score > best.score {
					bestByIngredient[index] = candidate
				}
			}
		}
	}

	// Highest score first; longer spans, then earlier positions break ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.spanLength != b.spanLength {
			return a.spanLength > b.spanLength
		}
		if a.start != b.start {
			return a.start < b.start
		}
		// Full ties stay deterministic regardless of variant map order.
		if a.ingredientIndex != b.ingredientIndex {
			return a.ingredientIndex < b.ingredientIndex
		}
		return a.variantText < b.variantText
	})

	selected := s.selectCandidates(step.tokens, candidates)

	sort.Slice(selected, func(i, j int) bool { return selected[i].start < selected[j].start })

	matched := make([]domain.RecipeIngredient, 0, len(selected))
	selectedIndexes := make(map[int]bool, len(selected))
	for _, c := range selected {
		matched = append(matched, ingredients[c.ingredientIndex])
		selectedIndexes[c.ingredientIndex] = true
		if s.config.EnableDebugLogging {
			log.Printf("[MATCH] selected %q (%s, score %.0f) at token %d for ingredient %d",
				c.variantText, c.kind, c.score, c.start, c.ingredientIndex)
		}
	}

	if !debug {
		return matched, nil
	}
	diagnostics := make([]MatchDiagnostic, 0, len(bestByIngredient))
	for index, best := range bestByIngredient {
		diagnostics = append(diagnostics, MatchDiagnostic{
			IngredientIndex: index,
			VariantText:     best.variantText,
			Start:           best.start,
			SpanLength:      best.spanLength,
			Kind:            best.kind.String(),
			Score:           best.score,
			Selected:        selectedIndexes[index],
		})
	}
	sort.Slice(diagnostics, func(i, j int) bool {
		return diagnostics[i].IngredientIndex < diagnostics[j].IngredientIndex
	})
	return matched, diagnostics
}

// selectCandidates greedily picks candidates in scored order, at most one
// per ingredient, never reusing an occupied token position. A fullSpan pick
// occupies every occurrence of its exact variant sequence so a repeated
// phrase cannot later be claimed by a weaker variant of another ingredient.
func (s *MatchingService) selectCandidates(stepTokens []string, candidates []matchCandidate) []matchCandidate {
	occupied := make([]bool, len(stepTokens))
	taken := make(map[int]bool)
	var selected []matchCandidate

	for _, c := range candidates {
		if taken[c.ingredientIndex] {
			continue
		}
		if spanOccupied(occupied, c.start, c.spanLength) {
			continue
		}
		taken[c.ingredientIndex] = true
		selected = append(selected, c)

		if c.kind == kindFullSpan {
			for _, start := range findOccurrences(stepTokens, c.variantTokens) {
				markSpan(occupied, start, c.spanLength)
			}
		} else {
			markSpan(occupied, c.start, c.spanLength)
		}
	}
	return selected
}

func classifyKind(variant, canonical []string) matchKind {
	if len(variant) >= 2 {
		return kindFullSpan
	}
	if len(canonical) <= 1 {
		return kindFullSingle
	}
	if variant[0] == canonical[len(canonical)-1] {
		return kindHeadSingle
	}
	return kindModifierSingle
}

func scoreCandidate(c matchCandidate, canonical []string) float64 {
	var score float64
	switch c.kind {
	case kindFullSpan:
		score = scoreFullSpan
	case kindFullSingle:
		score = scoreFullSingle
	case kindHeadSingle:
		score = scoreHeadSingle
	default:
		score = scoreModifierSingle
	}
	if c.spanLength >= 2 {
		score += float64(c.spanLength) * spanLengthBonus
	}
	if c.variantText == variantKey(canonical) {
		score += exactCanonicalBonus
	}
	return score
}

func allTokensPresent(variant []string, tokenSet map[string]bool) bool {
	for _, t := range variant {
		if !tokenSet[t] {
			return false
		}
	}
	return true
}

// findOccurrences returns the start index of every (non-overlapping, for
// multi-token variants) occurrence of variant in stepTokens.
func findOccurrences(stepTokens, variant []string) []int {
	var occurrences []int
	for i := 0; i+len(variant) <= len(stepTokens); {
		if tokensMatchAt(stepTokens, variant, i) {
			occurrences = append(occurrences, i)
			i += len(variant)
		} else {
			i++
		}
	}
	return occurrences
}

func tokensMatchAt(stepTokens, variant []string, at int) bool {
	for j, t := range variant {
		if stepTokens[at+j] != t {
			return false
		}
	}
	return true
}

func spanOccupied(occupied []bool, start, length int) bool {
	for i := start; i < start+length && i < len(occupied); i++ {
		if occupied[i] {
			return true
		}
	}
	return false
}

func markSpan(occupied []bool, start, length int) {
	for i := start; i < start+length && i < len(occupied); i++ {
		occupied[i] = true
	}
}
