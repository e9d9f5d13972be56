package entity

import "time"

const CatalogStatusActive = "Active"

type CatalogProduct struct {
	ID           int64     `json:"id"`
	SKU          string    `json:"sku"`
	Manufacturer string    `json:"manufacturer"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	ProductType  string    `json:"product_type"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ManufacturerCount struct {
	Manufacturer string `json:"manufacturer"`
	Count        int64  `json:"count"`
}

// CatalogStats summarises the catalog table after an import.
type CatalogStats struct {
	Total            int64               `json:"total"`
	Manufacturers    int64               `json:"manufacturers"`
	ProductTypes     int64               `json:"product_types"`
	TopManufacturers []ManufacturerCount `json:"top_manufacturers"`
}
