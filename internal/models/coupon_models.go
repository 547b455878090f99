package models

// Coupon is an admin-defined percentage discount keyed by a unique code.
// Codes are stored upper-cased and compared case-insensitively. Setting
// Active to false retires the coupon without deleting it: customers can no
// longer resolve it but the record stays visible in the admin console.
type Coupon struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount"` // integer percent in [0,100]
	Active          bool   `json:"active"`
}
