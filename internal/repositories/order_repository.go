package repositories

import (
	"fmt"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/store"
)

// OrderRepository owns the persisted order history, which is the only state
// shared between the customer and admin surfaces. History is append-ordered;
// Append is the single writer path that grows it, so array position is a
// reliable recency order.
type OrderRepository interface {
	GetHistory() []models.Order
	GetByID(id string) (*models.Order, error)
	Append(o *models.Order) error
	UpdateStatus(id, status string) (*models.Order, error)
	ClearAll() error
}

type orderRepository struct {
	store *store.Store
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(st *store.Store) OrderRepository {
	return &orderRepository{store: st}
}

func (r *orderRepository) GetHistory() []models.Order {
	history := []models.Order{}
	r.store.Read(store.KeyHistory, &history)
	return history
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	for _, o := range r.GetHistory() {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

func (r *orderRepository) Append(o *models.Order) error {
	history := r.GetHistory()
	history = append(history, *o)
	return r.store.Write(store.KeyHistory, history)
}

// UpdateStatus mutates only the status field of the matching record and
// persists the whole history back. Every other field of every record is
// rewritten byte-identically.
func (r *orderRepository) UpdateStatus(id, status string) (*models.Order, error) {
	history := r.GetHistory()
	for i := range history {
		if history[i].ID == id {
			history[i].Status = status
			if err := r.store.Write(store.KeyHistory, history); err != nil {
				return nil, err
			}
			updated := history[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// ClearAll drops the entire order history. Admin bulk operation; individual
// orders are never deleted.
func (r *orderRepository) ClearAll() error {
	return r.store.Delete(store.KeyHistory)
}
