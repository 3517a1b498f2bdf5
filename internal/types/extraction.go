package types

// ParsedIngredient is one ingredient line split into amount, unit and name.
// Amount and Unit are nil when the line could not be segmented; Name then
// holds the trimmed line as typed.
type ParsedIngredient struct {
	Amount *float64 `json:"amount"`
	Unit   *string  `json:"unit"`
	Name   string   `json:"name"`
}

// RecipeExtraction is the recipe metadata pulled from a web page.
// Every field is optional on its own.
type RecipeExtraction struct {
	Name             *string            `json:"name"`
	PrepTimeMinutes  *int               `json:"prep_time_minutes"`
	TotalTimeMinutes *int               `json:"total_time_minutes"`
	Instructions     *string            `json:"instructions"`
	Image            *string            `json:"image"`
	Ingredients      []ParsedIngredient `json:"ingredients"`
}

// ParseIngredientsResponse is the body returned by the ingredient text endpoint
type ParseIngredientsResponse struct {
	Items []ParsedIngredient `json:"items"`
}
