package usecase

// Rule tables injected into the analysis prompt. They live as structured
// data, not inline prompt strings, so they can be unit-tested and
// updated independently of request construction.

// ImpactBand describes typical environmental cost ranges for a food
// category, used by the model to estimate per-100g figures.
type ImpactBand struct {
	Category string
	CO2Range string // kg CO2 per 100g
	Water    string // liters per 100g
}

// environmentalBands are coarse lifecycle-assessment bands for the three
// broad ingredient classes.
var environmentalBands = []ImpactBand{
	{Category: "Plant-based (grains, vegetables, fruits, legumes)", CO2Range: "0.05 - 0.3", Water: "20 - 150"},
	{Category: "Dairy and eggs", CO2Range: "0.3 - 1.2", Water: "100 - 630"},
	{Category: "Meat and fish", CO2Range: "1.0 - 6.0", Water: "400 - 1550"},
}

// DerivativeRule names ingredient derivatives of a base allergen: names
// that do not literally contain the allergen but are derived from it.
type DerivativeRule struct {
	Base        string
	Derivatives []string
}

// allergenDerivatives drive detection of indirect allergen violations.
var allergenDerivatives = []DerivativeRule{
	{Base: "potato", Derivatives: []string{"potato starch", "potato flour", "potato protein"}},
	{Base: "corn", Derivatives: []string{"corn syrup", "corn starch", "maltodextrin", "dextrose", "corn oil"}},
	{Base: "sugar", Derivatives: []string{"cane sugar", "glucose", "sucrose", "fructose"}},
	{Base: "milk", Derivatives: []string{"whey", "casein", "lactose"}},
	{Base: "wheat", Derivatives: []string{"wheat flour", "semolina", "malt", "seitan"}},
	{Base: "soy", Derivatives: []string{"soy lecithin", "soy protein", "tofu", "miso"}},
	{Base: "egg", Derivatives: []string{"albumin", "lysozyme", "mayonnaise"}},
}

// DietRule describes what a named diet prohibits and allows.
type DietRule struct {
	Name string
	Rule string
}

// dietRules cover the diets the prompt carries explicit definitions for.
var dietRules = []DietRule{
	{Name: "Jain", Rule: "Excludes ALL root vegetables (potato, onion, garlic, carrot, beet, radish, ginger, turmeric root) including derived starches such as tapioca and arrowroot; allows dairy and eggs"},
	{Name: "Vegan", Rule: "Excludes ALL animal products: meat, fish, dairy, eggs, honey, gelatin, and animal-derived additives"},
	{Name: "Vegetarian", Rule: "Allows dairy and eggs; excludes meat, fish, and slaughter by-products such as gelatin and rennet"},
	{Name: "Pescatarian", Rule: "Allows fish and seafood; excludes all other meat"},
	{Name: "Halal", Rule: "Excludes pork and pork derivatives, alcohol, and non-halal animal by-products"},
	{Name: "Kosher", Rule: "Excludes pork, shellfish, and mixtures of meat and dairy"},
	{Name: "Gluten-Free", Rule: "Excludes wheat, barley, rye, malt, and anything derived from them"},
	{Name: "Dairy-Free", Rule: "Excludes all dairy derivatives: milk, cream, butter, cheese, whey, casein, lactose"},
	{Name: "Nut-Free", Rule: "Excludes all tree nuts and peanuts, including nut oils and nut flours"},
}

// customDietHeuristics are worked reasoning examples for diet names the
// caller may supply that have no fixed rule table.
var customDietHeuristics = []DietRule{
	{Name: "Keto", Rule: "Flag high-carbohydrate ingredients: sugars, grains, starches, most fruit"},
	{Name: "Paleo", Rule: "Flag grains, legumes, dairy, refined sugar, and processed additives"},
	{Name: "Low-FODMAP", Rule: "Flag onion, garlic, wheat, high-fructose sweeteners, and most legumes"},
	{Name: "Whole30", Rule: "Flag added sugar in any form, alcohol, grains, legumes, and dairy"},
	{Name: "Carnivore", Rule: "Flag all plant-derived ingredients"},
	{Name: "Mediterranean", Rule: "Flag heavily processed ingredients, refined sugars, and processed meats"},
	{Name: "Diabetic", Rule: "Flag added sugars, refined starches, and high-glycemic ingredients"},
	{Name: "Raw-Vegan", Rule: "Flag all animal products and anything processed above 48C, including refined oils"},
	{Name: "Macrobiotic", Rule: "Flag refined sugar, dairy, most meat, and highly processed ingredients"},
}
