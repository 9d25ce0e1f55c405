package domain

// InstructionParseResult is the structured reading of one instruction
// sentence: accumulated cook time plus the first unambiguous temperature.
type InstructionParseResult struct {
	TotalTimeSeconds float64           `json:"totalTimeSeconds"`
	TimeItems        []InstructionTime `json:"timeItems,omitempty"`

	Temperature         float64 `json:"temperature,omitempty"`
	TemperatureUnit     string  `json:"temperatureUnit,omitempty"`
	TemperatureText     string  `json:"temperatureText,omitempty"`
	TemperatureUnitText string  `json:"temperatureUnitText,omitempty"`

	AlternativeTemperatures []AlternativeTemperature `json:"alternativeTemperatures,omitempty"`
}

// InstructionTime is one literal duration mention, e.g. ("5", "minutes", 300).
type InstructionTime struct {
	TimeInSeconds float64 `json:"timeInSeconds"`
	TimeUnitText  string  `json:"timeUnitText"`
	TimeText      string  `json:"timeText"`
}

// AlternativeTemperature is a converted reading of the parsed temperature.
type AlternativeTemperature struct {
	Temperature float64 `json:"temperature"`
	Unit        string  `json:"unit"`
}

// StepTiming mirrors the timing entries stored on a recipe step by the
// surrounding application (produced from InstructionTime at import time).
type StepTiming struct {
	TimeText      string  `json:"timeText"`
	TimeUnitText  string  `json:"timeUnitText"`
	TimeInSeconds float64 `json:"timeInSeconds"`
}

// RecipeStep is the surrounding application's step record. The engine only
// reads its instruction text and timings.
type RecipeStep struct {
	InstructionText string       `json:"instructionText"`
	Timings         []StepTiming `json:"timings,omitempty"`
}

// MatchedTiming is one literal occurrence of a step timing in the step's
// raw instruction text. Offsets are byte positions, end exclusive.
type MatchedTiming struct {
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Seconds     float64 `json:"seconds"`
	DisplayText string  `json:"displayText"`
}
