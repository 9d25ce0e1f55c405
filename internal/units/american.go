package units

// americanEnglish builds the US English catalog: everything the British
// catalog recognizes, plus a fully convertible volume group under the US
// customary definitions and fahrenheit as the default temperature unit.
func americanEnglish() *Config {
	cfg := english()

	clone := &Config{
		Language:               "en-US",
		Units:                  make(map[string]*UnitDetail, len(cfg.Units)),
		SizeAdjectives:         cfg.SizeAdjectives,
		Prepositions:           cfg.Prepositions,
		NumberWords:            cfg.NumberWords,
		AdditionMarkers:        cfg.AdditionMarkers,
		RangeMarkers:           cfg.RangeMarkers,
		TemperatureMarkers:     cfg.TemperatureMarkers,
		DefaultTemperatureUnit: "fahrenheit",
		TimeUnits:              cfg.TimeUnits,
		TemperatureUnits:       cfg.TemperatureUnits,
		FractionGlyphs:         cfg.FractionGlyphs,
		Conversions:            make(map[string]Linear, len(cfg.Conversions)+49),
		ConversionTargets: map[string][]string{
			GroupMass:        cfg.ConversionTargets[GroupMass],
			GroupLength:      cfg.ConversionTargets[GroupLength],
			GroupTemperature: cfg.ConversionTargets[GroupTemperature],
			GroupVolume:      {"tsp", "tbsp", "floz", "cup", "pt", "ml", "l"},
		},
	}

	for spelling, detail := range cfg.Units {
		clone.Units[spelling] = detail
	}
	for pair, formula := range cfg.Conversions {
		clone.Conversions[pair] = formula
	}

	// Volume units join the conversion group in this catalog; fresh details
	// so the shared British catalog is left untouched.
	addUnit(clone.Units, &UnitDetail{Symbol: "ml", DisplayText: "ml", ConversionGroup: GroupVolume},
		"ml", "millilitre", "millilitres", "milliliter", "milliliters")
	addUnit(clone.Units, &UnitDetail{Symbol: "l", DisplayText: "l", ConversionGroup: GroupVolume},
		"l", "litre", "litres", "liter", "liters")
	addUnit(clone.Units, &UnitDetail{Symbol: "tsp", DisplayText: "tsp", ConversionGroup: GroupVolume},
		"tsp", "teaspoon", "teaspoons")
	addUnit(clone.Units, &UnitDetail{Symbol: "tbsp", DisplayText: "tbsp", ConversionGroup: GroupVolume},
		"tbsp", "tbs", "tablespoon", "tablespoons")
	addUnit(clone.Units, &UnitDetail{Symbol: "floz", DisplayText: "fl oz", ConversionGroup: GroupVolume},
		"floz")
	addUnit(clone.Units, &UnitDetail{Symbol: "cup", DisplayText: "cup", ConversionGroup: GroupVolume},
		"cup", "cups")
	addUnit(clone.Units, &UnitDetail{Symbol: "pt", DisplayText: "pint", ConversionGroup: GroupVolume},
		"pt", "pint", "pints")

	addGroupConversions(clone.Conversions, volumeFactors)

	clone.buildSymbolIndex()
	return clone
}
