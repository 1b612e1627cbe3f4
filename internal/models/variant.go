package models

// Variant is the host's product variant as seen by the stock sync flow.
// Stock is the only field this service ever writes; the host persists the
// variant after the before-save hook returns.
type Variant struct {
	ID                string `json:"id"`
	SKU               string `json:"sku"`
	SaasuID           string `json:"saasuId"`
	HasUnlimitedStock bool   `json:"has_unlimited_stock"`
	Stock             int    `json:"stock"`
}
