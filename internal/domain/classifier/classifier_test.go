package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyManufacturer(t *testing.T) {
	tests := []struct {
		sku  string
		want string
	}{
		{"B12345", Neff},
		{"C12345", Neff}, // also matches the Miele prefix set
		{"H7260BP", Miele},
		{"K2000", Miele},
		{"G7100SCi", Miele},
		{"M7244TC", Miele},
		{"DW60FC6X1", FisherPaykel},
		{"RB90S64", FisherPaykel},
		{"WH1060P4", FisherPaykel},
		{"SA60TCX", Smeg},
		{"STA9FX", Smeg},
		{"FAB28RPB5", Smeg},
		{"CX123", UnknownMaker},
		{"b12345", UnknownMaker},
		{"", UnknownMaker},
	}

	for _, tt := range tests {
		t.Run(tt.sku, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentifyManufacturer(tt.sku))
		})
	}
}

func TestIdentifyProductType(t *testing.T) {
	tests := []struct {
		sku  string
		want string
	}{
		{"DW1234", Dishwasher},
		{"ODW60", Dishwasher}, // DW wins over a later OV check
		{"B57CR22N0B", Oven},
		{"H2861B", Oven},
		{"OB60SC7", Appliance},
		{"TOV90", Oven},
		{"WM1490P2", WashingMachine},
		{"WH8560P3", WashingMachine},
		{"RB90S64MKIW1", Refrigerator},
		{"RS9120WRJ1", Refrigerator},
		{"CT60", Cooktop},
		{"KM6115", Cooktop},
		{"", Appliance},
	}

	for _, tt := range tests {
		t.Run(tt.sku, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentifyProductType(tt.sku))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Key{Manufacturer: Neff, ProductType: Oven, WarrantyStatus: InWarranty}, Classify("B12345", InWarranty))
	assert.Equal(t, Key{Manufacturer: UnknownMaker, ProductType: Appliance, WarrantyStatus: ""}, Classify("", ""))
}

func TestProductTypeFromCatalog(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		description string
		want        string
	}{
		{"category dishwasher", "DISHWASHERS", "BSH FULLY INT DW 15 P/S", Dishwasher},
		{"category beats description", "OVENS", "NEFF N50 FULL INT DW 60CM", Oven},
		{"stove", "Freestanding Stoves", "", Oven},
		{"cooktop lower case", "cooktops", "", Cooktop},
		{"freezer", "FREEZERS", "", Refrigerator},
		{"washer dryer in category", "WASHER DRYERS", "", WashingMachine},
		{"wine", "WINE CABINETS", "", WineCabinet},
		{"description fridge", "LAUNDRY", "FRENCH DOOR FRIDGE", Refrigerator},
		{"description rh token", "VENTILATION", "90CM RH BLACK", Rangehood},
		{"description mw token", "BUILT IN", "45CM MW COMBI", Microwave},
		{"description dry", "LAUNDRY", "HEAT PUMP DRYING CABINET", WashingMachine},
		{"default", "HOME ACCESSORIES", "MAREA 100 HAND TOWEL 70X40", Appliance},
		{"empty", "", "", Appliance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductTypeFromCatalog(tt.category, tt.description))
		})
	}
}
