package usecase

import (
	"strconv"
	"strings"

	"github.com/platewise/backend/internal/domain"
	"github.com/platewise/backend/internal/units"
)

// parseInstruction scans an instruction sentence for "<number> <unit-word>"
// pairs, accumulating durations and recording the first unambiguous
// temperature. Returns nil for empty input; sentences without any match
// return a zero-valued result.
func parseInstruction(text string, catalog *units.Config, includeAlternativeTemperatureUnit bool) *domain.InstructionParseResult {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	result := &domain.InstructionParseResult{}
	tokens := tokenize(text, false)

	var pending *Token
	for i := range tokens {
		tok := &tokens[i]
		if isNumberToken(*tok) {
			pending = tok
			continue
		}
		if pending == nil {
			continue
		}
		lower := strings.ToLower(tok.Text)

		if catalog.TemperatureMarkers[lower] {
			// A bare marker ("180°") resolves through the locale default.
			// Locales without one leave the number pending so an explicit
			// unit right after the marker can still claim it.
			if catalog.DefaultTemperatureUnit == "" {
				continue
			}
			recordTemperature(result, pending, catalog.DefaultTemperatureUnit, tok.Text)
			pending = nil
			continue
		}

		if multiplier, ok := catalog.TimeUnits[lower]; ok {
			value, _ := strconv.ParseFloat(pending.Text, 64)
			seconds := value * multiplier
			result.TotalTimeSeconds += seconds
			result.TimeItems = append(result.TimeItems, domain.InstructionTime{
				TimeInSeconds: seconds,
				TimeUnitText:  tok.Text,
				TimeText:      pending.Text,
			})
			pending = nil
			continue
		}

		if symbol, ok := catalog.TemperatureUnits[lower]; ok {
			recordTemperature(result, pending, symbol, tok.Text)
			pending = nil
			continue
		}

		// Any other token breaks the pair.
		pending = nil
	}

	if includeAlternativeTemperatureUnit && result.TemperatureUnit != "" {
		result.AlternativeTemperatures = catalog.TemperatureConversions(result.Temperature, result.TemperatureUnit)
	}
	return result
}

// recordTemperature keeps only the first temperature/unit pair as the
// scalar reading.
func recordTemperature(result *domain.InstructionParseResult, value *Token, unitSymbol, unitText string) {
	if result.TemperatureText != "" {
		return
	}
	v, _ := strconv.ParseFloat(value.Text, 64)
	result.Temperature = v
	result.TemperatureUnit = unitSymbol
	result.TemperatureText = value.Text
	result.TemperatureUnitText = unitText
}
