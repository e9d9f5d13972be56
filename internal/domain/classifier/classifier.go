// Package classifier maps SKUs and catalog descriptions to canonical
// manufacturer and product type labels.
//
// Every classifier is an ordered rule list evaluated first-match-wins. Several
// rules overlap on purpose (C-prefixed SKUs match both Neff and Miele), so rule
// order decides the result and must not be changed.
package classifier

import (
	"regexp"
	"strings"
)

// Manufacturer labels.
const (
	Neff         = "Neff"
	Miele        = "Miele"
	FisherPaykel = "Fisher & Paykel"
	Smeg         = "Smeg"
	UnknownMaker = "Unknown"
)

// Product type labels.
const (
	Dishwasher     = "Dishwasher"
	Oven           = "Oven"
	WashingMachine = "Washing Machine"
	Refrigerator   = "Refrigerator"
	Cooktop        = "Cooktop"
	Rangehood      = "Rangehood"
	Microwave      = "Microwave"
	WineCabinet    = "Wine Cabinet"
	Appliance      = "Appliance"
)

// Warranty status labels.
const (
	InWarranty      = "In Warranty"
	OutOfWarranty   = "Out of Warranty"
	WarrantyUnknown = "Unknown"
)

// Key is the triple used to select service options.
type Key struct {
	Manufacturer   string
	ProductType    string
	WarrantyStatus string
}

type rule struct {
	match  func(s string) bool
	result string
}

func matches(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

func firstMatch(rules []rule, s, fallback string) string {
	for _, r := range rules {
		if r.match(s) {
			return r.result
		}
	}
	return fallback
}

var manufacturerRules = []rule{
	{matches(regexp.MustCompile(`^[BC]\d`)), Neff},
	{matches(regexp.MustCompile(`^[HKGCM]\d`)), Miele},
	{matches(regexp.MustCompile(`^(DW|RB|WH|WM)`)), FisherPaykel},
	{matches(regexp.MustCompile(`^(SA|STA|FAB)`)), Smeg},
}

var bhDigit = regexp.MustCompile(`^[BH]\d`)

var productTypeRules = []rule{
	{containsAny("DW"), Dishwasher},
	{func(s string) bool { return bhDigit.MatchString(s) || strings.Contains(s, "OV") }, Oven},
	{containsAny("WM", "WH"), WashingMachine},
	{containsAny("RB", "RS"), Refrigerator},
	{containsAny("CT", "KM"), Cooktop},
}

// IdentifyManufacturer returns the manufacturer for sku, or Unknown.
func IdentifyManufacturer(sku string) string {
	if sku == "" {
		return UnknownMaker
	}
	return firstMatch(manufacturerRules, sku, UnknownMaker)
}

// IdentifyProductType returns the product type for sku, or Appliance.
func IdentifyProductType(sku string) string {
	if sku == "" {
		return Appliance
	}
	return firstMatch(productTypeRules, sku, Appliance)
}

// Classify builds the option lookup key for sku. The warranty status is
// carried through verbatim.
func Classify(sku, warrantyStatus string) Key {
	return Key{
		Manufacturer:   IdentifyManufacturer(sku),
		ProductType:    IdentifyProductType(sku),
		WarrantyStatus: warrantyStatus,
	}
}
