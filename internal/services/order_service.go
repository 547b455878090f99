package services

import (
	"errors"
	"fmt"
	"time"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/repositories"
	"dpizza_backend/pkg/utils"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cannot submit an order with an empty cart")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// TrackCurrent is the sentinel id that resolves to the most recently
// submitted order via the last-order pointer.
const TrackCurrent = "current"

// --- Order DTOs ---

// SubmitOrderRequest carries the checkout form fields. Field format
// validation (phone syntax and the like) belongs to the form layer; the
// engine only enforces presence and the non-empty-cart rule.
type SubmitOrderRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Landmark      string `json:"landmark"`
	PaymentMethod string `json:"payment" binding:"required"`
}

// UpdateOrderStatusRequest is used by the admin console to move an order
// through the lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderService converts a cart into an immutable order record and tracks it
// through the status lifecycle shared with the admin console.
type OrderService interface {
	Submit(sessionID string, req SubmitOrderRequest) (*models.Order, error)
	Track(orderID string) (*models.Order, error)
	// GetOrders returns history newest-first, optionally filtered by phone.
	GetOrders(phone string) []models.Order
	UpdateStatus(orderID string, req UpdateOrderStatusRequest) (*models.Order, error)
	ClearAll() error
	GetProfile() (*models.CustomerProfile, error)
}

type orderService struct {
	cart        CartService
	coupons     CouponService
	orderRepo   repositories.OrderRepository
	profileRepo repositories.ProfileRepository
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	cart CartService,
	coupons CouponService,
	orderRepo repositories.OrderRepository,
	profileRepo repositories.ProfileRepository,
) OrderService {
	return &orderService{
		cart:        cart,
		coupons:     coupons,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
	}
}

// newOrderID returns a fresh order id. A UUID replaces the random numeric
// suffix the storefront started with, so ids are unique without a scan of
// existing history.
func newOrderID() string {
	return "ORD-" + uuid.NewString()
}

// Submit commits the session's cart as a new order: it rejects an empty
// cart, computes subtotal/discount/total from the live lines, snapshots the
// lines into an immutable record with status pending, appends it to
// history, overwrites the customer profile and records the last-order
// pointer. The cart is cleared only after the order is safely persisted.
func (s *orderService) Submit(sessionID string, req SubmitOrderRequest) (*models.Order, error) {
	lines, coupon := s.cart.Snapshot(sessionID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal int64
	for _, line := range lines {
		subtotal += line.LineTotal()
	}
	discount := s.coupons.DiscountFor(coupon, subtotal)

	order := models.Order{
		ID:            newOrderID(),
		CustomerName:  req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Landmark:      req.Landmark,
		PaymentMethod: req.PaymentMethod,
		Items:         lines,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         subtotal - discount,
		Status:        models.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if coupon != nil {
		order.CouponUsed = utils.NewNullString(coupon.Code)
	}

	if err := s.orderRepo.Append(&order); err != nil {
		return nil, fmt.Errorf("failed to append order to history: %w", err)
	}

	profile := models.CustomerProfile{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Landmark: req.Landmark,
	}
	if err := s.profileRepo.SaveProfile(&profile); err != nil {
		// The order is already committed; a failed profile write only costs
		// the next checkout its prefill.
		utils.LogError(err, "Failed to save customer profile after order submit")
	}
	if err := s.profileRepo.SetLastOrderID(order.ID); err != nil {
		utils.LogError(err, "Failed to record last order pointer")
	}

	s.cart.Clear(sessionID)

	utils.LogInfo("Order submitted", map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    len(order.Items),
	})
	return &order, nil
}

// Track looks up an order by id. The sentinel "current" resolves through
// the last-order pointer first. Not-found is reported to the caller, never
// treated as fatal.
func (s *orderService) Track(orderID string) (*models.Order, error) {
	if orderID == TrackCurrent {
		lastID, err := s.profileRepo.GetLastOrderID()
		if err != nil {
			return nil, ErrOrderNotFound
		}
		orderID = lastID
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to look up order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *orderService) GetOrders(phone string) []models.Order {
	history := s.orderRepo.GetHistory()
	orders := make([]models.Order, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		if phone == "" || history[i].Phone == phone {
			orders = append(orders, history[i])
		}
	}
	return orders
}

// UpdateStatus moves an order to any member of the status set. Transitions
// are intentionally unconstrained (see models.OrderStatuses): delivered
// back to pending is legal, because that is how a small shop undoes a
// mis-click. Only membership is validated.
func (s *orderService) UpdateStatus(orderID string, req UpdateOrderStatusRequest) (*models.Order, error) {
	if !models.IsValidOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, req.Status)
	}
	order, err := s.orderRepo.UpdateStatus(orderID, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *orderService) ClearAll() error {
	if err := s.orderRepo.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear order history: %w", err)
	}
	utils.LogInfo("Order history cleared")
	return nil
}

func (s *orderService) GetProfile() (*models.CustomerProfile, error) {
	profile, err := s.profileRepo.GetProfile()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load customer profile: %w", err)
	}
	return profile, nil
}
