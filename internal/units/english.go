package units

// Conversion group identifiers
const (
	GroupMass        = "mass"
	GroupVolume      = "volume"
	GroupLength      = "length"
	GroupTemperature = "temperature"
)

// Base factors per group. Mass is based on the gram, length on the
// millimetre, volume on the millilitre; the US customary constants are the
// exact international definitions.
var (
	massFactors = map[string]float64{
		"g":  1,
		"kg": 1000,
		"oz": 28.349523125,
		"lb": 453.59237,
	}
	lengthFactors = map[string]float64{
		"mm": 1,
		"cm": 10,
		"in": 25.4,
	}
	volumeFactors = map[string]float64{
		"ml":   1,
		"l":    1000,
		"tsp":  4.92892159375,
		"tbsp": 14.78676478125,
		"floz": 29.5735295625,
		"cup":  236.5882365,
		"pt":   473.176473,
	}
)

// english builds the British English catalog. Mass, length and temperature
// are convertible; volume units are recognized but carry no conversion group
// (metric and imperial cup sizes disagree, so conversions are left to the
// American catalog where the customary definitions apply).
func english() *Config {
	cfg := &Config{
		Language: "en",
		Units:    make(map[string]*UnitDetail),

		SizeAdjectives: set("large", "medium", "small", "big", "little",
			"heaped", "heaping", "level", "generous"),

		Prepositions: set("of", "for", "with", "about", "approx", "approximately"),

		NumberWords: map[string]float64{
			"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
			"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
			"eleven": 11, "twelve": 12,
			"half": 0.5, "quarter": 0.25,
		},

		AdditionMarkers: set("and", "plus", "a", "an", "+"),
		RangeMarkers:    set("to", "or", "-", "–", "—"),

		TemperatureMarkers:     set("°", "degrees", "degree"),
		DefaultTemperatureUnit: "",

		TimeUnits: map[string]float64{
			"second": 1, "seconds": 1, "sec": 1, "secs": 1,
			"minute": 60, "minutes": 60, "min": 60, "mins": 60,
			"hour": 3600, "hours": 3600, "hr": 3600, "hrs": 3600,
			"day": 86400, "days": 86400,
		},

		TemperatureUnits: map[string]string{
			"c": "celsius", "celsius": "celsius", "centigrade": "celsius",
			"f": "fahrenheit", "fahrenheit": "fahrenheit",
		},

		FractionGlyphs: map[string]string{
			"½": "1/2", "⅓": "1/3", "⅔": "2/3", "¼": "1/4", "¾": "3/4",
			"⅕": "1/5", "⅖": "2/5", "⅗": "3/5", "⅘": "4/5",
			"⅙": "1/6", "⅚": "5/6", "⅛": "1/8", "⅜": "3/8", "⅝": "5/8", "⅞": "7/8",
		},

		Conversions: make(map[string]Linear),

		ConversionTargets: map[string][]string{
			GroupMass:        {"g", "kg", "oz", "lb"},
			GroupLength:      {"mm", "cm", "in"},
			GroupTemperature: {"celsius", "fahrenheit"},
		},
	}

	// Mass
	addUnit(cfg.Units, &UnitDetail{Symbol: "g", DisplayText: "g", ConversionGroup: GroupMass},
		"g", "gram", "grams")
	addUnit(cfg.Units, &UnitDetail{Symbol: "kg", DisplayText: "kg", ConversionGroup: GroupMass},
		"kg", "kilo", "kilos", "kilogram", "kilograms")
	addUnit(cfg.Units, &UnitDetail{Symbol: "oz", DisplayText: "oz", ConversionGroup: GroupMass},
		"oz", "ounce", "ounces")
	addUnit(cfg.Units, &UnitDetail{Symbol: "lb", DisplayText: "lb", ConversionGroup: GroupMass},
		"lb", "lbs", "pound", "pounds")

	// Length
	addUnit(cfg.Units, &UnitDetail{Symbol: "mm", DisplayText: "mm", ConversionGroup: GroupLength},
		"mm", "millimetre", "millimetres", "millimeter", "millimeters")
	addUnit(cfg.Units, &UnitDetail{Symbol: "cm", DisplayText: "cm", ConversionGroup: GroupLength},
		"cm", "centimetre", "centimetres", "centimeter", "centimeters")
	addUnit(cfg.Units, &UnitDetail{Symbol: "in", DisplayText: "inch", ConversionGroup: GroupLength},
		"inch", "inches")

	// Volume (not convertible in this catalog)
	addUnit(cfg.Units, &UnitDetail{Symbol: "ml", DisplayText: "ml"},
		"ml", "millilitre", "millilitres", "milliliter", "milliliters")
	addUnit(cfg.Units, &UnitDetail{Symbol: "l", DisplayText: "l"},
		"l", "litre", "litres", "liter", "liters")
	addUnit(cfg.Units, &UnitDetail{Symbol: "tsp", DisplayText: "tsp"},
		"tsp", "teaspoon", "teaspoons")
	addUnit(cfg.Units, &UnitDetail{Symbol: "tbsp", DisplayText: "tbsp"},
		"tbsp", "tbs", "tablespoon", "tablespoons")
	addUnit(cfg.Units, &UnitDetail{Symbol: "cup", DisplayText: "cup"},
		"cup", "cups")
	addUnit(cfg.Units, &UnitDetail{Symbol: "pt", DisplayText: "pint"},
		"pt", "pint", "pints")

	// Countable kitchen units
	addUnit(cfg.Units, &UnitDetail{Symbol: "pinch", DisplayText: "pinch"}, "pinch", "pinches")
	addUnit(cfg.Units, &UnitDetail{Symbol: "dash", DisplayText: "dash"}, "dash", "dashes")
	addUnit(cfg.Units, &UnitDetail{Symbol: "clove", DisplayText: "clove"}, "clove", "cloves")
	addUnit(cfg.Units, &UnitDetail{Symbol: "can", DisplayText: "can"}, "can", "cans")
	addUnit(cfg.Units, &UnitDetail{Symbol: "tin", DisplayText: "tin"}, "tin", "tins")
	addUnit(cfg.Units, &UnitDetail{Symbol: "slice", DisplayText: "slice"}, "slice", "slices")
	addUnit(cfg.Units, &UnitDetail{Symbol: "bunch", DisplayText: "bunch"}, "bunch", "bunches")
	addUnit(cfg.Units, &UnitDetail{Symbol: "handful", DisplayText: "handful"}, "handful", "handfuls")
	addUnit(cfg.Units, &UnitDetail{Symbol: "sprig", DisplayText: "sprig"}, "sprig", "sprigs")
	addUnit(cfg.Units, &UnitDetail{Symbol: "stick", DisplayText: "stick"}, "stick", "sticks")
	addUnit(cfg.Units, &UnitDetail{Symbol: "piece", DisplayText: "piece"}, "piece", "pieces")
	addUnit(cfg.Units, &UnitDetail{Symbol: "knob", DisplayText: "knob"}, "knob", "knobs")
	addUnit(cfg.Units, &UnitDetail{Symbol: "sheet", DisplayText: "sheet"}, "sheet", "sheets")
	addUnit(cfg.Units, &UnitDetail{Symbol: "drop", DisplayText: "drop"}, "drop", "drops")

	addGroupConversions(cfg.Conversions, massFactors)
	addGroupConversions(cfg.Conversions, lengthFactors)
	cfg.Conversions["celsius->fahrenheit"] = Linear{Scale: 1.8, Offset: 32}
	cfg.Conversions["fahrenheit->celsius"] = Linear{Scale: 5.0 / 9.0, Offset: -160.0 / 9.0}

	cfg.buildSymbolIndex()
	return cfg
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
