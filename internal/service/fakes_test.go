package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/segmentio/kafka-go"
)

var errStoreDown = errors.New("store down")

// fakeStore implements every repository interface over in-memory slices.
type fakeStore struct {
	products []domain.Product
	sellers  []domain.Seller
	orders   []domain.Order
	reviews  []domain.Review
	users    []domain.User
	wishlist []domain.WishlistItem

	productUpdates int
	// failUpdateAfter makes the n-th product update (1-based) fail.
	failUpdateAfter int
	cleared         []string

	undecodable []string
	productsErr error
	lastFilter  pkgdto.Filter
}

func (f *fakeStore) GetProducts(ctx context.Context, param pkgdto.Filter) ([]domain.Product, []string, error) {
	f.lastFilter = param
	if f.productsErr != nil {
		return nil, nil, f.productsErr
	}

	var out []domain.Product
	for _, p := range f.products {
		if param.Category == "" || p.Category == param.Category {
			out = append(out, p)
		}
	}
	return out, f.undecodable, nil
}

func (f *fakeStore) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errs.ErrNotFound
}

func (f *fakeStore) UpdateProductFields(ctx context.Context, id string, patch domain.ProductPatch, at time.Time) error {
	f.productUpdates++
	if f.failUpdateAfter > 0 && f.productUpdates >= f.failUpdateAfter {
		return errStoreDown
	}

	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Apply(patch)
			f.products[i].UpdatedAt = at
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeStore) AddProducts(ctx context.Context, data []domain.Product) error {
	f.products = append(f.products, data...)
	return nil
}

func (f *fakeStore) AddSellers(ctx context.Context, data []domain.Seller) error {
	f.sellers = append(f.sellers, data...)
	return nil
}

func (f *fakeStore) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, errs.ErrNotFound
}

func (f *fakeStore) GetOrdersByUserID(ctx context.Context, userID string, status string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.UserID == userID && (status == "" || o.Status == status) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeStore) CountOrdersByUserID(ctx context.Context, userID string) (int64, error) {
	orders, _ := f.GetOrdersByUserID(ctx, userID, "")
	return int64(len(orders)), nil
}

func (f *fakeStore) UpdateOrderStatus(ctx context.Context, id string, status string, at time.Time) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			f.orders[i].UpdatedAt = at
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeStore) AddOrders(ctx context.Context, data []domain.Order) error {
	f.orders = append(f.orders, data...)
	return nil
}

func (f *fakeStore) GetReviewsByUserID(ctx context.Context, userID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) AddReviews(ctx context.Context, data []domain.Review) error {
	f.reviews = append(f.reviews, data...)
	return nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (f *fakeStore) GetWishlistByUserID(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, w := range f.wishlist {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeStore) AddUsers(ctx context.Context, data []domain.User) error {
	f.users = append(f.users, data...)
	return nil
}

func (f *fakeStore) AddWishlistItems(ctx context.Context, data []domain.WishlistItem) error {
	f.wishlist = append(f.wishlist, data...)
	return nil
}

func (f *fakeStore) ClearCollections(ctx context.Context, names []string) (map[string]int64, error) {
	deleted := map[string]int64{
		"products": int64(len(f.products)),
		"sellers":  int64(len(f.sellers)),
		"orders":   int64(len(f.orders)),
		"reviews":  int64(len(f.reviews)),
		"users":    int64(len(f.users)),
		"wishlist": int64(len(f.wishlist)),
	}
	f.products, f.sellers, f.orders, f.reviews, f.users, f.wishlist = nil, nil, nil, nil, nil, nil
	f.cleared = append(f.cleared, names...)
	return deleted, nil
}

type publishedEvent struct {
	eventType string
	key       string
	data      interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{eventType: eventType, key: key, data: data})
	return nil
}

type fakeWriter struct {
	failures int
	calls    int
	messages []kafka.Message
}

func (w *fakeWriter) WriteMessages(msgs ...kafka.Message) (int, error) {
	w.calls++
	if w.calls <= w.failures {
		return 0, errors.New("leader not available")
	}
	w.messages = append(w.messages, msgs...)
	return len(msgs), nil
}
