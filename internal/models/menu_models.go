package models

// MenuItem is a single orderable product on the storefront menu.
// Items are created, edited and deleted only through the admin mutation
// layer; the customer-facing catalog reads them as-is.
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price"` // whole currency units, never negative
	Description string `json:"desc"`
	Image       string `json:"image"` // opaque URL or data-URL blob reference
}

// Well-known menu categories. The set is open: the admin may introduce new
// category strings and the catalog filter matches them verbatim.
const (
	CategoryAll    = "all"
	CategoryVeg    = "veg"
	CategoryNonVeg = "non-veg"
	CategorySides  = "sides"
)
