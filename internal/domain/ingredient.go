package domain

// IngredientParseResult is the structured reading of one free-text
// ingredient line, e.g. "1-2 tbsp coconut oil, melted".
type IngredientParseResult struct {
	Quantity     float64 `json:"quantity"`
	QuantityText string  `json:"quantityText"`
	MinQuantity  float64 `json:"minQuantity"`
	MaxQuantity  float64 `json:"maxQuantity"`
	Unit         string  `json:"unit,omitempty"`
	UnitText     string  `json:"unitText,omitempty"`
	Ingredient   string  `json:"ingredient"`
	Extra        string  `json:"extra,omitempty"`

	// AlternativeQuantities holds sibling unit readings: either the
	// bracketed/slash alternative written in the line itself ("400g (14 oz)")
	// or computed conversions into the rest of the unit's conversion group.
	AlternativeQuantities []AlternativeQuantity `json:"alternativeQuantities,omitempty"`
}

// AlternativeQuantity is one unit-equivalent reading of a parsed quantity.
type AlternativeQuantity struct {
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitText    string  `json:"unitText"`
	MinQuantity float64 `json:"minQuantity"`
	MaxQuantity float64 `json:"maxQuantity"`
}

// RecipeIngredient is the surrounding application's ingredient record.
// The engine only reads its text fields; it never persists or owns it.
type RecipeIngredient struct {
	IngredientText   string  `json:"ingredientText"`
	IngredientPart   string  `json:"ingredientPart,omitempty"`
	ExtraInformation string  `json:"extraInformation,omitempty"`
	Quantity         float64 `json:"quantity,omitempty"`
	QuantityText     string  `json:"quantityText,omitempty"`
	Unit             string  `json:"unit,omitempty"`
}
