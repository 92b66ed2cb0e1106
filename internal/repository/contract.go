package repository

import (
	"context"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
)

const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
	ReviewsCollection  = "reviews"
	UsersCollection    = "users"
	WishlistCollection = "wishlist"
	SellersCollection  = "sellers"
)

// SeededCollections are the collections the seeder writes to, in the order
// they are cleared.
var SeededCollections = []string{
	WishlistCollection,
	ReviewsCollection,
	OrdersCollection,
	ProductsCollection,
	UsersCollection,
	SellersCollection,
}

type ProductRepository interface {
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, undecodable []string, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProductFields(ctx context.Context, id string, patch domain.ProductPatch, at time.Time) (err error)
	AddProducts(ctx context.Context, data []domain.Product) (err error)
	AddSellers(ctx context.Context, data []domain.Seller) (err error)
}

type OrderRepository interface {
	GetOrderByID(ctx context.Context, id string) (order domain.Order, err error)
	GetOrdersByUserID(ctx context.Context, userID string, status string) (data []domain.Order, err error)
	CountOrdersByUserID(ctx context.Context, userID string) (count int64, err error)
	UpdateOrderStatus(ctx context.Context, id string, status string, at time.Time) (err error)
	AddOrders(ctx context.Context, data []domain.Order) (err error)
}

type ReviewRepository interface {
	GetReviewsByUserID(ctx context.Context, userID string) (data []domain.Review, err error)
	AddReviews(ctx context.Context, data []domain.Review) (err error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	GetWishlistByUserID(ctx context.Context, userID string) (data []domain.WishlistItem, err error)
	AddUsers(ctx context.Context, data []domain.User) (err error)
	AddWishlistItems(ctx context.Context, data []domain.WishlistItem) (err error)
}

type MaintenanceRepository interface {
	ClearCollections(ctx context.Context, names []string) (deleted map[string]int64, err error)
}
