package units

import (
	"math"

	"github.com/platewise/backend/internal/domain"
)

// Convert applies the catalog's formula for fromSymbol->toSymbol. When no
// formula is configured the value is returned unchanged, so callers can
// always convert without checking pair availability first.
func (c *Config) Convert(value float64, fromSymbol, toSymbol string) float64 {
	formula, ok := c.Conversions[fromSymbol+"->"+toSymbol]
	if !ok {
		return value
	}
	return value*formula.Scale + formula.Offset
}

// IngredientConversions converts a parsed quantity into every other unit of
// the source unit's conversion group, following the catalog's default target
// list. Results are rounded to 4 decimal places. Returns nil when the unit
// is not convertible.
func (c *Config) IngredientConversions(quantity, minQuantity, maxQuantity float64, fromSymbol string) []domain.AlternativeQuantity {
	from := c.UnitBySymbol(fromSymbol)
	if from == nil || from.ConversionGroup == "" {
		return nil
	}

	var alternatives []domain.AlternativeQuantity
	for _, target := range c.ConversionTargets[from.ConversionGroup] {
		if target == from.Symbol {
			continue
		}
		detail := c.UnitBySymbol(target)
		if detail == nil {
			continue
		}
		alternatives = append(alternatives, domain.AlternativeQuantity{
			Quantity:    Round(c.Convert(quantity, from.Symbol, target), 4),
			Unit:        detail.Symbol,
			UnitText:    detail.DisplayText,
			MinQuantity: Round(c.Convert(minQuantity, from.Symbol, target), 4),
			MaxQuantity: Round(c.Convert(maxQuantity, from.Symbol, target), 4),
		})
	}
	return alternatives
}

// TemperatureConversions converts a parsed temperature into the other units
// of the temperature group, rounded to 4 decimal places.
func (c *Config) TemperatureConversions(value float64, fromSymbol string) []domain.AlternativeTemperature {
	var alternatives []domain.AlternativeTemperature
	for _, target := range c.ConversionTargets[GroupTemperature] {
		if target == fromSymbol {
			continue
		}
		alternatives = append(alternatives, domain.AlternativeTemperature{
			Temperature: Round(c.Convert(value, fromSymbol, target), 4),
			Unit:        target,
		})
	}
	return alternatives
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
