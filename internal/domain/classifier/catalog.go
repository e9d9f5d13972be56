package classifier

import "strings"

// The second Cooktop category rule can never fire; it is kept so the list
// mirrors the import rules staff maintain.
var catalogCategoryRules = []rule{
	{containsAny("DISHWASHER"), Dishwasher},
	{containsAny("OVEN", "STOVE"), Oven},
	{containsAny("COOKTOP"), Cooktop},
	{containsAny("REFRIGERATOR", "FREEZER"), Refrigerator},
	{containsAny("RANGEHOOD"), Rangehood},
	{containsAny("MICROWAVE"), Microwave},
	{containsAny("WASHER", "DRYER"), WashingMachine},
	{containsAny("WINE"), WineCabinet},
	{containsAny("COOKTOP"), Cooktop},
}

var catalogDescriptionRules = []rule{
	{containsAny("DISHWASH"), Dishwasher},
	{containsAny("OVEN"), Oven},
	{containsAny("COOKTOP"), Cooktop},
	{containsAny("FRIDGE", "FREEZE"), Refrigerator},
	{containsAny("RANGEHOOD", "RH "), Rangehood},
	{containsAny("MICROWAVE", "MW "), Microwave},
	{containsAny("WASH", "DRY"), WashingMachine},
}

// ProductTypeFromCatalog derives a product type from a catalog category,
// falling back to the description and then Appliance.
func ProductTypeFromCatalog(category, description string) string {
	if pt := firstMatch(catalogCategoryRules, strings.ToUpper(category), ""); pt != "" {
		return pt
	}
	return firstMatch(catalogDescriptionRules, strings.ToUpper(description), Appliance)
}
