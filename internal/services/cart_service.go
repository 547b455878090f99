package services

import (
	"errors"
	"fmt"
	"sync"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/repositories"
	"dpizza_backend/pkg/utils"
)

// DefaultSessionID is used when the client supplies no session id. The
// modelled deployment is a single local customer, so one shared session is
// the common case; the id exists so a second tab can opt into its own cart.
const DefaultSessionID = "default"

// CartView is the derived read model of one cart, recomputed from the live
// lines on every call. The discount is never cached: a quantity change is
// immediately reflected in the next view, so a stale discount amount cannot
// survive a cart mutation.
type CartView struct {
	Items     []models.CartLine `json:"items"`
	ItemCount int               `json:"item_count"` // sum of quantities, drives the cart badge
	Subtotal  int64             `json:"subtotal"`
	Discount  int64             `json:"discount"`
	Total     int64             `json:"total"`
	Coupon    *models.Coupon    `json:"coupon,omitempty"`
}

// CartService is the session-scoped cart engine. Each session owns an
// insertion-ordered list of lines keyed by menu item id plus an optionally
// applied coupon. Sessions are process-local transient state, never
// persisted; only a submitted order reaches the store.
type CartService interface {
	Add(sessionID string, itemID int64) *CartView
	ChangeQuantity(sessionID string, itemID int64, delta int) *CartView
	View(sessionID string) *CartView
	Clear(sessionID string)
	ApplyCoupon(sessionID, code string) (*CartView, error)
	RemoveCoupon(sessionID string) *CartView
	Reorder(sessionID, orderID string) (*CartView, error)
	// Snapshot returns a deep copy of the session's lines plus the applied
	// coupon, for the order lifecycle to commit.
	Snapshot(sessionID string) ([]models.CartLine, *models.Coupon)
}

// cartSession is the explicit session-state object that replaces ad hoc
// globals: constructed empty, reset after a successful submit or on "go
// home". Lines keep insertion order; the id index makes merge-on-add cheap.
type cartSession struct {
	lines  []models.CartLine
	coupon *models.Coupon
}

type cartService struct {
	catalog   CatalogService
	coupons   CouponService
	orderRepo repositories.OrderRepository

	mu       sync.Mutex
	sessions map[string]*cartSession
}

// NewCartService creates a new instance of CartService.
func NewCartService(catalog CatalogService, coupons CouponService, orderRepo repositories.OrderRepository) CartService {
	return &cartService{
		catalog:   catalog,
		coupons:   coupons,
		orderRepo: orderRepo,
		sessions:  map[string]*cartSession{},
	}
}

func (s *cartService) session(sessionID string) *cartSession {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &cartSession{}
		s.sessions[sessionID] = sess
	}
	return sess
}

func (sess *cartSession) findLine(itemID int64) int {
	for i := range sess.lines {
		if sess.lines[i].ID == itemID {
			return i
		}
	}
	return -1
}

// view recomputes all derived totals from the current lines.
func (s *cartService) view(sess *cartSession) *CartView {
	v := &CartView{
		Items:  append([]models.CartLine{}, sess.lines...),
		Coupon: sess.coupon,
	}
	for _, line := range sess.lines {
		v.ItemCount += line.Quantity
		v.Subtotal += line.LineTotal()
	}
	v.Discount = s.coupons.DiscountFor(sess.coupon, v.Subtotal)
	v.Total = v.Subtotal - v.Discount
	return v
}

// Add looks up the item in the catalog and merges it into the cart: a
// repeat add increments the existing line's quantity, a first add appends a
// new line with quantity 1. An unknown item id is a logged no-op.
func (s *cartService) Add(sessionID string, itemID int64) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	item, err := s.catalog.GetItem(itemID)
	if err != nil {
		utils.LogDebug("Ignoring add of unknown menu item", map[string]interface{}{"item_id": itemID})
		return s.view(sess)
	}
	if i := sess.findLine(itemID); i >= 0 {
		sess.lines[i].Quantity++
	} else {
		sess.lines = append(sess.lines, models.CartLine{MenuItem: *item, Quantity: 1})
	}
	return s.view(sess)
}

// ChangeQuantity adds delta (positive or negative) to a line's quantity and
// removes the line entirely when the result drops to zero or below. An item
// id not present in the cart is a no-op.
func (s *cartService) ChangeQuantity(sessionID string, itemID int64, delta int) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if i := sess.findLine(itemID); i >= 0 {
		sess.lines[i].Quantity += delta
		if sess.lines[i].Quantity <= 0 {
			sess.lines = append(sess.lines[:i], sess.lines[i+1:]...)
		}
	}
	return s.view(sess)
}

func (s *cartService) View(sessionID string) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.session(sessionID))
}

// Clear empties the cart and drops any applied coupon. Called after a
// successful submission and on "return home".
func (s *cartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)
	sess.lines = nil
	sess.coupon = nil
}

// ApplyCoupon resolves the code against the active coupon set and attaches
// it to the session. A failed resolution also detaches any previously
// applied coupon, matching how the storefront treats a bad re-entry.
func (s *cartService) ApplyCoupon(sessionID, code string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	coupon, err := s.coupons.Resolve(code)
	if err != nil {
		sess.coupon = nil
		if errors.Is(err, ErrCouponNotFound) {
			return s.view(sess), ErrCouponNotFound
		}
		return s.view(sess), fmt.Errorf("failed to apply coupon: %w", err)
	}
	sess.coupon = coupon
	return s.view(sess), nil
}

func (s *cartService) RemoveCoupon(sessionID string) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)
	sess.coupon = nil
	return s.view(sess)
}

// Reorder seeds the cart from a past order's item snapshot, replacing any
// current contents. The copy is deep with respect to the stored order:
// mutating the new cart cannot alter the historical record.
func (s *cartService) Reorder(sessionID, orderID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order %s for reorder: %w", orderID, err)
	}
	sess.lines = append([]models.CartLine{}, order.Items...)
	sess.coupon = nil
	return s.view(sess), nil
}

func (s *cartService) Snapshot(sessionID string) ([]models.CartLine, *models.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)
	return append([]models.CartLine{}, sess.lines...), sess.coupon
}
