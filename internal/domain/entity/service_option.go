package entity

// Column names of the published service options sheet.
const (
	ColumnManufacturer      = "Manufacturer"
	ColumnProductType       = "Product Type"
	ColumnWarrantyStatus    = "Warranty Status"
	ColumnServiceAgent      = "Service Agent"
	ColumnPhoneNumber       = "Phone Number"
	ColumnBusinessHours     = "Business Hours"
	ColumnServiceCallFee    = "Service Call Fee"
	ColumnExpectedTimeframe = "Expected Timeframe"
	ColumnPhoneInstructions = "Phone Instructions"
)

// ServiceOption is one row of the service options sheet. It lives only for
// the duration of a single lookup.
type ServiceOption struct {
	Manufacturer      string `json:"manufacturer"`
	ProductType       string `json:"product_type"`
	WarrantyStatus    string `json:"warranty_status"`
	ServiceAgent      string `json:"service_agent"`
	PhoneNumber       string `json:"phone_number"`
	BusinessHours     string `json:"business_hours"`
	ServiceCallFee    string `json:"service_call_fee"`
	ExpectedTimeframe string `json:"expected_timeframe"`
	PhoneInstructions string `json:"phone_instructions"`
}

// ServiceOptionFromRow maps a sheet row keyed by column name.
func ServiceOptionFromRow(row map[string]string) ServiceOption {
	return ServiceOption{
		Manufacturer:      row[ColumnManufacturer],
		ProductType:       row[ColumnProductType],
		WarrantyStatus:    row[ColumnWarrantyStatus],
		ServiceAgent:      row[ColumnServiceAgent],
		PhoneNumber:       row[ColumnPhoneNumber],
		BusinessHours:     row[ColumnBusinessHours],
		ServiceCallFee:    row[ColumnServiceCallFee],
		ExpectedTimeframe: row[ColumnExpectedTimeframe],
		PhoneInstructions: row[ColumnPhoneInstructions],
	}
}
