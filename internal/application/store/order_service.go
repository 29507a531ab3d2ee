package store

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/nexera/storefront/internal/domain/shared"
	"github.com/nexera/storefront/internal/domain/store"
)

// OrderService owns the order history. All reads and writes go through a
// single mutex so the slice behaves like the one event loop of a browser
// storefront; the cloud append and the summary generation run on their own
// goroutines and patch orders back in by id.
type OrderService struct {
	mu     sync.Mutex
	orders []*store.Order

	orderStore store.OrderStore
	cloud      store.CloudStore
	summarizer store.Summarizer
	logger     *zap.Logger

	endpoint atomic.Value // string
	syncing  atomic.Bool

	subMu       sync.Mutex
	subscribers []func()

	// pending tracks the background goroutines spawned by Submit so tests
	// and shutdown can wait for them.
	pending sync.WaitGroup
}

// NewOrderService creates the service. Call Load before serving requests.
func NewOrderService(orderStore store.OrderStore, cloud store.CloudStore, summarizer store.Summarizer, logger *zap.Logger) *OrderService {
	s := &OrderService{
		orderStore: orderStore,
		cloud:      cloud,
		summarizer: summarizer,
		logger:     logger,
	}
	s.endpoint.Store("")
	return s
}

// Load restores the persisted order history. A corrupt or missing history
// degrades to an empty list inside the store, so Load only fails on real
// storage errors.
func (s *OrderService) Load(ctx context.Context) error {
	orders, err := s.orderStore.LoadOrders(ctx)
	if err != nil {
		return err
	}
	store.SortByDateDesc(orders)

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// SetEndpoint changes the spreadsheet endpoint used for cloud calls. An
// empty value disables them.
func (s *OrderService) SetEndpoint(url string) {
	s.endpoint.Store(url)
}

// Endpoint returns the currently configured spreadsheet endpoint.
func (s *OrderService) Endpoint() string {
	return s.endpoint.Load().(string)
}

// Subscribe registers a callback invoked after every change to the order
// history. Callbacks run synchronously under no lock and must be fast.
func (s *OrderService) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.subMu.Unlock()
}

func (s *OrderService) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Submit places a new order built from the given cart lines. The order is
// recorded and returned immediately; delivering it to the spreadsheet and
// generating the thank-you note happen in the background and patch the
// order when they complete.
func (s *OrderService) Submit(ctx context.Context, items []store.CartItem, customerName, customerPhone string) (store.Order, error) {
	order, err := store.NewOrder(items, customerName, customerPhone)
	if err != nil {
		return store.Order{}, err
	}

	s.mu.Lock()
	s.orders = append([]*store.Order{order}, s.orders...)
	s.saveLocked(ctx)
	snapshot := *order.Clone()
	s.mu.Unlock()
	s.notify()

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("total", snapshot.Total().String()))

	// The request context ends with the HTTP response; the background work
	// must outlive it.
	bg := context.WithoutCancel(ctx)

	if endpoint := s.Endpoint(); endpoint != "" {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			s.appendToCloud(bg, endpoint, order.ID)
		}()
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.generateSummary(bg, order.ID)
	}()

	return snapshot, nil
}

func (s *OrderService) appendToCloud(ctx context.Context, endpoint, orderID string) {
	s.mu.Lock()
	target := s.findLocked(orderID)
	if target == nil {
		s.mu.Unlock()
		return
	}
	doc := target.Clone()
	s.mu.Unlock()

	status, err := s.cloud.Append(ctx, endpoint, doc)
	if err != nil || status != store.DispatchAccepted {
		s.logger.Warn("cloud append failed",
			zap.String("order_id", orderID),
			zap.Error(err))
		return
	}

	s.patch(ctx, orderID, func(o *store.Order) { o.MarkSynced() })
}

func (s *OrderService) generateSummary(ctx context.Context, orderID string) {
	s.mu.Lock()
	target := s.findLocked(orderID)
	if target == nil {
		s.mu.Unlock()
		return
	}
	snap := target.Clone()
	s.mu.Unlock()

	text := s.summarizer.Summarize(ctx, snap)

	s.patch(ctx, orderID, func(o *store.Order) { o.ApplySummary(text) })
}

// patch applies fn to the order with the given id if it still exists. An
// order can disappear between dispatch and completion when a reconcile
// replaced the history, in which case the patch is dropped.
func (s *OrderService) patch(ctx context.Context, orderID string, fn func(*store.Order)) {
	s.mu.Lock()
	target := s.findLocked(orderID)
	if target == nil {
		s.mu.Unlock()
		s.logger.Debug("order vanished before patch", zap.String("order_id", orderID))
		return
	}
	fn(target)
	s.saveLocked(ctx)
	s.mu.Unlock()
	s.notify()
}

func (s *OrderService) findLocked(orderID string) *store.Order {
	for _, o := range s.orders {
		if o.ID == orderID {
			return o
		}
	}
	return nil
}

// saveLocked persists the current history. Storage failures are logged and
// otherwise ignored; the in-memory history stays authoritative for the
// lifetime of the process.
func (s *OrderService) saveLocked(ctx context.Context) {
	if err := s.orderStore.SaveOrders(ctx, s.orders); err != nil {
		s.logger.Error("failed to persist order history", zap.Error(err))
	}
}

// Reconcile fetches every order from the spreadsheet endpoint and merges it
// into the local history, remote side winning on conflicting ids. Only one
// reconcile runs at a time.
func (s *OrderService) Reconcile(ctx context.Context) ([]store.Order, error) {
	endpoint := s.Endpoint()
	if endpoint == "" {
		return nil, shared.ErrCloudNotConfigured
	}
	if !s.syncing.CompareAndSwap(false, true) {
		return nil, shared.ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	remote, err := s.cloud.FetchAll(ctx, endpoint)
	if err != nil {
		s.logger.Warn("cloud fetch failed", zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	s.orders = store.MergeOrders(s.orders, remote)
	s.saveLocked(ctx)
	result := s.listLocked()
	s.mu.Unlock()
	s.notify()

	s.logger.Info("order history reconciled",
		zap.Int("remote_orders", len(remote)),
		zap.Int("total_orders", len(result)))
	return result, nil
}

// Syncing reports whether a reconcile is currently running.
func (s *OrderService) Syncing() bool {
	return s.syncing.Load()
}

// List returns the order history newest first.
func (s *OrderService) List(ctx context.Context) []store.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

func (s *OrderService) listLocked() []store.Order {
	store.SortByDateDesc(s.orders)
	result := make([]store.Order, len(s.orders))
	for i, o := range s.orders {
		result[i] = *o.Clone()
	}
	return result
}

// Wait blocks until all background work spawned by Submit has finished.
// Used during shutdown so in-flight cloud appends are not cut off.
func (s *OrderService) Wait() {
	s.pending.Wait()
}
