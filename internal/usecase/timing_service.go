package usecase

import (
	"log"
	"regexp"
	"sort"

	"github.com/platewise/backend/internal/domain"
)

// TimingService maps a step's already-extracted duration entries back onto
// their literal substring occurrences in the raw instruction text.
type TimingService struct {
	enableDebugLogging bool
}

// NewTimingService creates a timing locator.
func NewTimingService(enableDebugLogging bool) *TimingService {
	return &TimingService{enableDebugLogging: enableDebugLogging}
}

type timingPair struct {
	text string
	unit string
}

// MatchedTimings finds one occurrence per timing entry, in document order,
// sorted by position. Entries sharing a (value, unit) pair draw from that
// pair's occurrence pool front to back; entries whose pool is exhausted are
// dropped silently. The occurrence search tolerates any interior whitespace
// between value and unit, including none ("20minutes").
func (s *TimingService) MatchedTimings(step domain.RecipeStep) []domain.MatchedTiming {
	if step.InstructionText == "" || len(step.Timings) == 0 {
		return nil
	}

	pools := make(map[timingPair][][]int)
	consumed := make(map[timingPair]int)

	var matched []domain.MatchedTiming
	for _, timing := range step.Timings {
		if timing.TimeText == "" || timing.TimeUnitText == "" {
			continue
		}
		pair := timingPair{text: timing.TimeText, unit: timing.TimeUnitText}
		pool, ok := pools[pair]
		if !ok {
			pool = findTimingOccurrences(step.InstructionText, pair)
			pools[pair] = pool
		}

		next := consumed[pair]
		if next >= len(pool) {
			if s.enableDebugLogging {
				log.Printf("[TIMING] no remaining occurrence of %q %q in step", pair.text, pair.unit)
			}
			continue
		}
		consumed[pair]++

		loc := pool[next]
		matched = append(matched, domain.MatchedTiming{
			Start:       loc[0],
			End:         loc[1],
			Seconds:     timing.TimeInSeconds,
			DisplayText: step.InstructionText[loc[0]:loc[1]],
		})
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Start < matched[j].Start })
	return matched
}

// findTimingOccurrences locates every case-insensitive, word-boundary
// occurrence of the pair in text. The pattern is assembled from quoted
// literals so ingredient-supplied text cannot inject pattern syntax.
func findTimingOccurrences(text string, pair timingPair) [][]int {
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(pair.text) + `\s*` + regexp.QuoteMeta(pair.unit) + `\b`)
	if err != nil {
		return nil
	}
	return pattern.FindAllStringIndex(text, -1)
}
