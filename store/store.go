// Package store owns the live ordering state: the cart, the placed orders,
// and the open service requests. All mutations go through it; consumers only
// ever see snapshot copies.
//
// Orders and service requests persist to the storage backend under fixed
// record keys and are replayed from it when another process sharing the
// backend writes them. The cart is deliberately not persisted; it lives and
// dies with the process.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DhaatuTheGamer/seamless-qr-dining/models"
	"github.com/DhaatuTheGamer/seamless-qr-dining/storage"
	"github.com/DhaatuTheGamer/seamless-qr-dining/toast"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

type Store struct {
	mu       sync.RWMutex
	backend  storage.Backend
	notifier toast.Notifier

	cart            []models.CartItem
	orders          []models.Order
	serviceRequests []models.ServiceRequest

	// initialized flips once Load has completed. Until then no write reaches
	// the backend, so a fresh instance can never clobber previously saved
	// collections with its empty initial state.
	initialized bool

	// onExternal, when set, is called after an external change has been
	// applied, with the record key that changed.
	onExternal func(key string)
}

func New(backend storage.Backend, notifier toast.Notifier) *Store {
	return &Store{
		backend:         backend,
		notifier:        notifier,
		cart:            []models.CartItem{},
		orders:          []models.Order{},
		serviceRequests: []models.ServiceRequest{},
	}
}

// OnExternalChange registers a callback fired after each applied external
// change. Must be set before StartSync.
func (s *Store) OnExternalChange(fn func(key string)) {
	s.onExternal = fn
}

// Load seeds the collections from the backend. A missing record or one that
// no longer parses both mean "no prior data". Persistence stays suppressed
// until Load has run once.
func (s *Store) Load(ctx context.Context) error {
	orders, err := loadRecord[models.Order](ctx, s.backend, storage.KeyOrders)
	if err != nil {
		return err
	}
	requests, err := loadRecord[models.ServiceRequest](ctx, s.backend, storage.KeyServiceRequests)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	s.serviceRequests = requests
	s.initialized = true
	return nil
}

func loadRecord[T any](ctx context.Context, backend storage.Backend, key string) ([]T, error) {
	raw, err := backend.Get(ctx, key)
	if err != nil {
		if err == storage.ErrNotFound {
			return []T{}, nil
		}
		return nil, err
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		utils.ErrorLogger.Printf("Corrupt %s record, starting empty: %v", key, err)
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// StartSync subscribes to backend changes and replays external writes into
// the in-memory collections. Each change replaces the whole collection for
// its key; last write observed wins.
func (s *Store) StartSync(ctx context.Context) error {
	changes, err := s.backend.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		for change := range changes {
			s.applyExternal(change)
		}
	}()
	return nil
}

func (s *Store) applyExternal(change storage.Change) {
	switch change.Key {
	case storage.KeyOrders:
		var orders []models.Order
		if err := json.Unmarshal(change.Value, &orders); err != nil {
			utils.ErrorLogger.Printf("Ignoring unparseable external %s change: %v", change.Key, err)
			return
		}
		s.mu.Lock()
		s.orders = orders
		s.mu.Unlock()
	case storage.KeyServiceRequests:
		var requests []models.ServiceRequest
		if err := json.Unmarshal(change.Value, &requests); err != nil {
			utils.ErrorLogger.Printf("Ignoring unparseable external %s change: %v", change.Key, err)
			return
		}
		s.mu.Lock()
		s.serviceRequests = requests
		s.mu.Unlock()
	default:
		return
	}

	if s.onExternal != nil {
		s.onExternal(change.Key)
	}
}

// AddToCart appends a new line with a fresh cart id. Lines are never merged;
// adding the same menu item twice gives two lines. Quantity sanity is the
// caller's responsibility.
func (s *Store) AddToCart(item models.MenuItem, quantity int, notes string) models.CartItem {
	line := models.CartItem{
		MenuItem: item,
		CartID:   uuid.NewString(),
		Quantity: quantity,
		Notes:    notes,
	}

	s.mu.Lock()
	s.cart = append(s.cart, line)
	s.mu.Unlock()

	s.notifier.Notify(fmt.Sprintf("Added %dx %s to cart", quantity, item.Name), toast.Success)
	return line
}

// RemoveFromCart drops the matching line. Unknown ids are a no-op.
func (s *Store) RemoveFromCart(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, line := range s.cart {
		if line.CartID == cartID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateCartQuantity adds delta to the line's quantity, flooring at zero; a
// line that reaches zero is removed. Unknown ids are a no-op.
func (s *Store) UpdateCartQuantity(cartID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, line := range s.cart {
		if line.CartID != cartID {
			continue
		}
		quantity := line.Quantity + delta
		if quantity <= 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		} else {
			s.cart[i].Quantity = quantity
		}
		return
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []models.CartItem{}
}

// Cart returns a snapshot of the cart lines in display order.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal sums price x quantity over the current cart lines.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CartTotal(s.cart)
}

// PlaceOrder turns the current cart into a pending order and clears the
// cart. An empty cart is a no-op and returns ok=false. The order's items and
// total are snapshots taken now; later cart activity never touches them.
func (s *Store) PlaceOrder(ctx context.Context, tableID, customerName string, payNow bool) (models.Order, bool) {
	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return models.Order{}, false
	}

	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)

	order := models.Order{
		ID:           uuid.NewString(),
		TableID:      tableID,
		Items:        items,
		Status:       models.OrderPending,
		Timestamp:    time.Now().UnixMilli(),
		Total:        models.CartTotal(items),
		IsPaid:       payNow,
		CustomerName: customerName,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = []models.CartItem{}
	s.persistOrders(ctx)
	s.mu.Unlock()

	s.notifier.Notify("Order placed successfully!", toast.Success)
	return order, true
}

// UpdateOrderStatus overwrites the order's status unconditionally; no
// transition table is enforced, so staff can move an order backwards to
// correct a mistake. Unknown ids are a no-op.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, bool) {
	s.mu.Lock()
	var updated models.Order
	found := false
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			updated = s.orders[i]
			found = true
			break
		}
	}
	if found {
		s.persistOrders(ctx)
	}
	s.mu.Unlock()

	if !found {
		return models.Order{}, false
	}
	s.notifier.Notify(fmt.Sprintf("Order #%s status: %s", updated.ShortID(), status), toast.Info)
	return updated, true
}

// ToggleOrderPayment flips the order's paid flag. No notification is emitted.
func (s *Store) ToggleOrderPayment(ctx context.Context, orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].IsPaid = !s.orders[i].IsPaid
			s.persistOrders(ctx)
			return s.orders[i], true
		}
	}
	return models.Order{}, false
}

// Orders returns a snapshot of all orders, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersByTable filters orders to one table, preserving order.
func (s *Store) OrdersByTable(tableID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Order{}
	for _, order := range s.orders {
		if order.TableID == tableID {
			out = append(out, order)
		}
	}
	return out
}

// OrdersByStatus groups all orders by status for the kitchen dashboard.
func (s *Store) OrdersByStatus() map[models.OrderStatus][]models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	grouped := make(map[models.OrderStatus][]models.Order)
	for _, order := range s.orders {
		grouped[order.Status] = append(grouped[order.Status], order)
	}
	return grouped
}

// FindOrder looks an order up by id.
func (s *Store) FindOrder(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// RequestService files a pending service request for the table. A custom
// request is expected to carry a message, but that is on the caller.
func (s *Store) RequestService(ctx context.Context, tableID string, reqType models.ServiceRequestType, message string) models.ServiceRequest {
	request := models.ServiceRequest{
		ID:        uuid.NewString(),
		TableID:   tableID,
		Type:      reqType,
		Status:    models.RequestPending,
		Timestamp: time.Now().UnixMilli(),
		Message:   message,
	}

	s.mu.Lock()
	s.serviceRequests = append([]models.ServiceRequest{request}, s.serviceRequests...)
	s.persistServiceRequests(ctx)
	s.mu.Unlock()

	s.notifier.Notify("Service request sent", toast.Info)
	return request
}

// ResolveServiceRequest deletes the request outright. Unknown ids are a
// no-op; resolving twice is safe.
func (s *Store) ResolveServiceRequest(ctx context.Context, requestID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, request := range s.serviceRequests {
		if request.ID == requestID {
			s.serviceRequests = append(s.serviceRequests[:i], s.serviceRequests[i+1:]...)
			s.persistServiceRequests(ctx)
			return true
		}
	}
	return false
}

// ServiceRequests returns a snapshot of the open requests, newest first.
func (s *Store) ServiceRequests() []models.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ServiceRequest, len(s.serviceRequests))
	copy(out, s.serviceRequests)
	return out
}

// ServiceRequestsByTable filters requests to one table.
func (s *Store) ServiceRequestsByTable(tableID string) []models.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.ServiceRequest{}
	for _, request := range s.serviceRequests {
		if request.TableID == tableID {
			out = append(out, request)
		}
	}
	return out
}

// persistOrders serializes the whole collection to its record. Callers hold
// the lock. Failures are logged, not surfaced; no store operation fails.
func (s *Store) persistOrders(ctx context.Context) {
	if !s.initialized {
		return
	}
	raw, err := json.Marshal(s.orders)
	if err != nil {
		utils.ErrorLogger.Printf("Error serializing orders: %v", err)
		return
	}
	if err := s.backend.Set(ctx, storage.KeyOrders, raw); err != nil {
		utils.ErrorLogger.Printf("Error persisting orders: %v", err)
	}
}

func (s *Store) persistServiceRequests(ctx context.Context) {
	if !s.initialized {
		return
	}
	raw, err := json.Marshal(s.serviceRequests)
	if err != nil {
		utils.ErrorLogger.Printf("Error serializing service requests: %v", err)
		return
	}
	if err := s.backend.Set(ctx, storage.KeyServiceRequests, raw); err != nil {
		utils.ErrorLogger.Printf("Error persisting service requests: %v", err)
	}
}
