// Package extract pulls structured fields out of pasted order pages and
// customer reply emails. Extraction never fails: unmatched fields come back
// empty or with a documented default, and callers validate separately.
package extract

import (
	"regexp"
	"strings"
)

// Order page labels as exported from the sales system.
const (
	LabelCustomerName = "Sell-to Customer Name"
	LabelEmail        = "Sell-to Email"
	LabelPhone        = "Sell-to Mobile Phone No."
	LabelShipmentDate = "Shipment Date"
	LabelAddress      = "Sell-to Address"
	LabelAddress2     = "Sell-to Address 2"
	LabelCity         = "Sell-to City"
	LabelState        = "Sell-to State"
	LabelPostCode     = "Sell-to Post Code"
)

// Field names reported by OrderPageFields.Missing.
const (
	FieldSINumber = "siNumber"
	FieldEmail    = "email"
)

// OrderPageFields are the customer and order details found on an order page.
type OrderPageFields struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	SINumber     string `json:"siNumber"`
	ShipmentDate string `json:"shipmentDate"`
}

// Missing lists the required fields that could not be extracted.
func (f OrderPageFields) Missing() []string {
	var missing []string
	if f.SINumber == "" {
		missing = append(missing, FieldSINumber)
	}
	if f.Email == "" {
		missing = append(missing, FieldEmail)
	}
	return missing
}

var siNumberPattern = regexp.MustCompile(`SI\d{8}`)

var addressLabels = []string{LabelAddress, LabelAddress2, LabelCity, LabelState, LabelPostCode}

var labelPatterns = compileLabels(
	LabelCustomerName, LabelEmail, LabelPhone, LabelShipmentDate,
	LabelAddress, LabelAddress2, LabelCity, LabelState, LabelPostCode,
)

func compileLabels(labels ...string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(labels))
	for _, label := range labels {
		patterns[label] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `\s*:*\s*([^\n]+)`)
	}
	return patterns
}

// LabelValue returns the trimmed remainder of the line following the first
// occurrence of label, or "" when the label is absent.
func LabelValue(text, label string) string {
	re, ok := labelPatterns[label]
	if !ok {
		re = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `\s*:*\s*([^\n]+)`)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// OrderPage extracts order page fields from text.
func OrderPage(text string) OrderPageFields {
	var parts []string
	for _, label := range addressLabels {
		if v := LabelValue(text, label); v != "" {
			parts = append(parts, v)
		}
	}

	return OrderPageFields{
		Name:         LabelValue(text, LabelCustomerName),
		Email:        LabelValue(text, LabelEmail),
		Phone:        LabelValue(text, LabelPhone),
		Address:      strings.Join(parts, ", "),
		SINumber:     siNumberPattern.FindString(text),
		ShipmentDate: LabelValue(text, LabelShipmentDate),
	}
}
