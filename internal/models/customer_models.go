package models

// CustomerProfile is the last-known-good contact info for the local
// customer, overwritten wholesale on every successful order submission.
// It exists only to prefill future checkout forms.
type CustomerProfile struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Landmark string `json:"landmark"`
}

// CustomerRollup is a derived, never-persisted summary of one customer,
// recomputed on demand from the order history. Phone is the natural key
// since no explicit customer entity exists.
type CustomerRollup struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LastAddress   string `json:"last_address"`
	OrderCount    int    `json:"order_count"`
	LifetimeValue int64  `json:"lifetime_value"`
}
