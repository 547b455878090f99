package models

import "time"

// Order status values. The lifecycle is deliberately permissive: the admin
// may move an order from any status to any other (delivered back to pending
// included). That is how a small delivery operation corrects mistakes;
// callers validate membership in this set, nothing more.
const (
	StatusPending    = "pending"
	StatusPreparing  = "preparing"
	StatusDispatched = "dispatched"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderStatuses lists every legal status value.
var OrderStatuses = []string{
	StatusPending,
	StatusPreparing,
	StatusDispatched,
	StatusDelivered,
	StatusCancelled,
}

// IsValidOrderStatus reports whether s is one of the legal status values.
func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CartLine is one line of a cart: a snapshot copy of the menu item taken at
// add time plus a quantity. The embedded item is a value, so a line is
// insulated from later menu edits and from mutation of other carts or
// historical orders. Quantity is always positive while the line exists; a
// quantity reaching zero removes the line.
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// LineTotal returns price times quantity for this line.
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Order is the committed record of a checkout. Every field except Status is
// immutable once written; Status changes only through the admin status
// update path. Orders are never deleted individually, only through the
// admin bulk clear.
type Order struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	Landmark      string     `json:"landmark"`
	PaymentMethod string     `json:"payment"`
	Items         []CartLine `json:"items"`
	Subtotal      int64      `json:"subtotal"`
	Discount      int64      `json:"discount"`
	Total         int64      `json:"total"` // always Subtotal - Discount
	CouponUsed    *string    `json:"couponUsed,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"timestamp"`
}
