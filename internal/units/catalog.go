package units

import "strings"

// UnitDetail describes one unit of measurement. A single instance is shared
// by every spelling that maps to it ("g", "gram" and "grams" all resolve to
// the same detail).
type UnitDetail struct {
	Symbol          string
	DisplayText     string
	ConversionGroup string // empty when the unit is not convertible
}

// Linear is a unit conversion formula: converted = value*Scale + Offset.
// Storing formulas as plain data keeps the table serializable and testable.
type Linear struct {
	Scale  float64
	Offset float64
}

// Config aggregates every per-language table the grammars consult.
// A Config is built once per language and never mutated afterwards, so it is
// safe to share across any number of goroutines.
type Config struct {
	Language string

	// Units maps every recognized lowercase spelling to its detail.
	Units map[string]*UnitDetail

	SizeAdjectives map[string]bool
	Prepositions   map[string]bool

	// NumberWords maps spelled-out numbers to their value ("half" -> 0.5).
	NumberWords map[string]float64

	// AdditionMarkers extend a quantity run ("1 and a half").
	AdditionMarkers map[string]bool
	// RangeMarkers close the minimum and start the maximum ("1 to 2").
	RangeMarkers map[string]bool

	// TemperatureMarkers are tokens that imply the locale's default
	// temperature unit ("°", "degrees").
	TemperatureMarkers map[string]bool
	// DefaultTemperatureUnit is empty for locales without one.
	DefaultTemperatureUnit string

	// TimeUnits maps time-unit spellings to their multiplier in seconds.
	TimeUnits map[string]float64

	// TemperatureUnits maps temperature-unit spellings to unit symbols.
	TemperatureUnits map[string]string

	// FractionGlyphs expands unicode vulgar fractions ("½" -> "1/2").
	FractionGlyphs map[string]string

	// Conversions holds linear formulas keyed "from->to" by unit symbol.
	Conversions map[string]Linear

	// ConversionTargets lists, per conversion group, the default units a
	// value in that group is converted into.
	ConversionTargets map[string][]string

	symbolIndex map[string]*UnitDetail
}

// ForLanguage returns the catalog for a language tag, or ok=false when the
// language has no catalog. Matching is case-insensitive and treats "_" and
// "-" as equivalent ("en_US" and "en-US" both resolve).
func ForLanguage(language string) (*Config, bool) {
	key := strings.ToLower(strings.ReplaceAll(language, "_", "-"))
	cfg, ok := catalogs[key]
	return cfg, ok
}

// SupportedLanguages returns the language tags that have a catalog.
func SupportedLanguages() []string {
	tags := make([]string, 0, len(catalogs))
	for tag := range catalogs {
		tags = append(tags, tag)
	}
	return tags
}

var catalogs map[string]*Config

func init() {
	en := english()
	enUS := americanEnglish()
	catalogs = map[string]*Config{
		"en":    en,
		"en-gb": en,
		"en-us": enUS,
	}
}

// Unit resolves a spelling (any case) to its detail, or nil if unknown.
func (c *Config) Unit(spelling string) *UnitDetail {
	return c.Units[strings.ToLower(spelling)]
}

// UnitBySymbol resolves a unit symbol to its detail, or nil if unknown.
func (c *Config) UnitBySymbol(symbol string) *UnitDetail {
	return c.symbolIndex[symbol]
}

// buildSymbolIndex must be called after the Units map is populated.
func (c *Config) buildSymbolIndex() {
	c.symbolIndex = make(map[string]*UnitDetail)
	for _, detail := range c.Units {
		c.symbolIndex[detail.Symbol] = detail
	}
}

// addUnit registers one detail under each of its spellings.
func addUnit(table map[string]*UnitDetail, detail *UnitDetail, spellings ...string) {
	for _, s := range spellings {
		table[s] = detail
	}
}

// addGroupConversions materializes every ordered pair within a group from
// per-unit base factors (value in unit u equals factor[u] base units).
// Deriving pairs from a common base keeps round trips exact.
func addGroupConversions(conversions map[string]Linear, factors map[string]float64) {
	for from, fromFactor := range factors {
		for to, toFactor := range factors {
			if from == to {
				continue
			}
			conversions[from+"->"+to] = Linear{Scale: fromFactor / toFactor}
		}
	}
}
