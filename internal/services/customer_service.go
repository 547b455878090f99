package services

import (
	"dpizza_backend/internal/models"
	"dpizza_backend/internal/repositories"
)

// DashboardSummary is the admin landing-page rollup.
type DashboardSummary struct {
	TotalOrders    int   `json:"total_orders"`
	TotalSales     int64 `json:"total_sales"`
	TotalCustomers int   `json:"total_customers"`
}

// CustomerService derives per-customer rollups from the order history. It
// is a pure read-only projection: nothing here is persisted and repeated
// calls over the same history yield identical results.
type CustomerService interface {
	Aggregate() []models.CustomerRollup
	Summary() DashboardSummary
}

type customerService struct {
	orderRepo repositories.OrderRepository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(orderRepo repositories.OrderRepository) CustomerService {
	return &customerService{orderRepo: orderRepo}
}

// Aggregate groups the history by phone in a single pass. The first order
// for a phone seeds the name, every order adds to count and lifetime value,
// and each later order's address overwrites the last address. History is
// append-ordered through the single Append writer, so array position is the
// recency order; no timestamp comparison is needed.
func (s *customerService) Aggregate() []models.CustomerRollup {
	history := s.orderRepo.GetHistory()

	index := make(map[string]int, len(history))
	rollups := make([]models.CustomerRollup, 0, len(history))
	for _, order := range history {
		if order.Phone == "" {
			continue
		}
		i, seen := index[order.Phone]
		if !seen {
			i = len(rollups)
			index[order.Phone] = i
			rollups = append(rollups, models.CustomerRollup{
				Name:  order.CustomerName,
				Phone: order.Phone,
			})
		}
		rollups[i].LastAddress = order.Address
		rollups[i].OrderCount++
		rollups[i].LifetimeValue += order.Total
	}
	return rollups
}

func (s *customerService) Summary() DashboardSummary {
	history := s.orderRepo.GetHistory()
	summary := DashboardSummary{TotalOrders: len(history)}
	phones := map[string]struct{}{}
	for _, order := range history {
		summary.TotalSales += order.Total
		phones[order.Phone] = struct{}{}
	}
	summary.TotalCustomers = len(phones)
	return summary
}
