package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/internal/repository"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const defaultSeedUsers = 3

type SeedServiceImpl struct {
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	reviewRepo      repository.ReviewRepository
	userRepo        repository.UserRepository
	maintenanceRepo repository.MaintenanceRepository
	now             func() time.Time
	newID           func() string
}

func CreateSeedService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, maintenanceRepo repository.MaintenanceRepository) SeedService {
	return &SeedServiceImpl{
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		reviewRepo:      reviewRepo,
		userRepo:        userRepo,
		maintenanceRepo: maintenanceRepo,
		now:             time.Now,
		newID: func() string {
			return ulid.Make().String()
		},
	}
}

type demoProduct struct {
	name        string
	category    string
	subCategory string
	price       float64
	specs       map[string]string
	sizes       []string
	colors      []domain.Color
}

// demoCatalogue mixes clean records with the malformed shapes the
// correction commands exist for.
var demoCatalogue = []demoProduct{
	{
		name: "Pure Silk Saree", category: "Women's Fashion", subCategory: "General", price: 4999,
		specs:  map[string]string{"Material": "Silk"},
		colors: []domain.Color{{Name: "Red", Legacy: true}, {Name: "Gold", Legacy: true}},
	},
	{
		name: "Wool Blend Oversized Scarf", category: "Women's Fashion", subCategory: "Apparel", price: 1299,
		specs:  map[string]string{"Material": "Wool Blend", "Fit": "Oversized", "Pattern": "Checked", "Care Instructions": "Dry clean"},
		sizes:  []string{"Free Size"},
		colors: []domain.Color{{Name: "Beige", Code: "#F5F5DC"}},
	},
	{name: "Floral Summer Dress", category: "Fashion", subCategory: "General", price: 1899},
	{name: "Slim Fit Chinos", category: "Clothing", subCategory: "General", price: 1499, colors: []domain.Color{{Name: "Olive", Legacy: true}}},
	{name: "Running Shoes", category: "Men's Fashion", subCategory: "Apparel", price: 3499, sizes: []string{"8", "9", "10"}},
	{name: "Leather Messenger Bags", category: "Men's Fashion", subCategory: "General", price: 2599},
	{name: "Noise Cancelling Headphones", category: "Electronic", price: 7999, colors: []domain.Color{{Name: "Black", Legacy: true}}},
	{name: "Ceramic Dinner Set", category: "Home & Kitchen", price: 2199, specs: map[string]string{"Pieces": "18"}},
	{name: "Vitamin C Face Serum", category: "Beauty", subCategory: "Skincare", price: 699, specs: map[string]string{"Skin Type": "All", "Volume": "30 ml"}},
	{
		name: "Smart Fitness Watch", category: "Electronics", subCategory: "Wearables", price: 5999,
		specs: map[string]string{"Brand": "Pulse", "Model": "FW-2", "Warranty": "1 Year", "Connectivity": "Bluetooth 5.2", "Battery": "7 days"},
	},
}

func (s *SeedServiceImpl) Seed(ctx context.Context, opts dto.SeedOptions) (report dto.SeedReport, err error) {
	if opts.Users <= 0 {
		opts.Users = defaultSeedUsers
	}

	if opts.Reset {
		deleted, err := s.maintenanceRepo.ClearCollections(ctx, repository.SeededCollections)
		if err != nil {
			return report, fmt.Errorf("clearing collections: %w", err)
		}
		log.Ctx(ctx).Info().Str("component", "Seed").Interface("deleted", deleted).Msg("collections cleared")
	}

	now := s.now().UTC()

	sellers := []domain.Seller{
		{ID: s.newID(), Name: "Heritage Weaves", Email: "sales@heritageweaves.example", IsVerified: true, CreatedAt: now},
		{ID: s.newID(), Name: "Gadget Corner", Email: "hello@gadgetcorner.example", CreatedAt: now},
	}
	if err = s.productRepo.AddSellers(ctx, sellers); err != nil {
		return
	}
	report.Sellers = len(sellers)

	products := make([]domain.Product, 0, len(demoCatalogue))
	for i, d := range demoCatalogue {
		products = append(products, domain.Product{
			ID:             s.newID(),
			Name:           d.name,
			Category:       d.category,
			SubCategory:    d.subCategory,
			Price:          d.price,
			Specifications: d.specs,
			Sizes:          d.sizes,
			Colors:         d.colors,
			SellerID:       sellers[i%len(sellers)].ID,
			IsApproved:     i%4 != 3,
			Status:         domain.ProductStatusActive,
			UpdatedAt:      now,
		})
	}
	if err = s.productRepo.AddProducts(ctx, products); err != nil {
		return
	}
	report.Products = len(products)

	users := []domain.User{{ID: s.newID(), Name: "Store Admin", Role: domain.UserRoleAdmin, Email: "admin@store.example"}}
	for i := 0; i < opts.Users; i++ {
		users = append(users, domain.User{
			ID:    s.newID(),
			Name:  fmt.Sprintf("Demo Customer %d", i+1),
			Role:  domain.UserRoleCustomer,
			Phone: fmt.Sprintf("+91-90000-0000%d", i+1),
			Email: fmt.Sprintf("customer%d@store.example", i+1),
		})
	}
	if err = s.userRepo.AddUsers(ctx, users); err != nil {
		return
	}
	report.Users = len(users)

	var (
		orders   []domain.Order
		reviews  []domain.Review
		wishlist []domain.WishlistItem
	)
	for i, u := range users[1:] {
		first := products[(2*i)%len(products)]
		second := products[(2*i+1)%len(products)]
		third := products[(2*i+2)%len(products)]

		delivered := s.demoOrder(u.ID, domain.OrderStatusDelivered, now.Add(-72*time.Hour), first, second)
		delivered.UpdatedAt = now.Add(-24 * time.Hour)
		placed := s.demoOrder(u.ID, domain.OrderStatusPlaced, now.Add(-2*time.Hour), third)
		orders = append(orders, delivered, placed)

		reviews = append(reviews, domain.Review{
			ID:         s.newID(),
			UserID:     u.ID,
			ProductID:  first.ID,
			Rating:     4,
			Comment:    "Exactly as described.",
			IsVerified: true,
			Status:     domain.ReviewStatusApproved,
			CreatedAt:  now.Add(-12 * time.Hour),
		})

		for _, p := range []domain.Product{second, third} {
			wishlist = append(wishlist, domain.WishlistItem{
				ID:        domain.WishlistItemID(u.ID, p.ID),
				UserID:    u.ID,
				ProductID: p.ID,
				AddedAt:   now.Add(-48 * time.Hour),
			})
		}
	}

	if err = s.orderRepo.AddOrders(ctx, orders); err != nil {
		return
	}
	report.Orders = len(orders)

	if err = s.reviewRepo.AddReviews(ctx, reviews); err != nil {
		return
	}
	report.Reviews = len(reviews)

	if err = s.userRepo.AddWishlistItems(ctx, wishlist); err != nil {
		return
	}
	report.Wishlist = len(wishlist)

	return report, nil
}

func (s *SeedServiceImpl) demoOrder(userID string, status string, createdAt time.Time, products ...domain.Product) domain.Order {
	order := domain.Order{
		ID:        s.newID(),
		UserID:    userID,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	for _, p := range products {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
		})
		order.TotalAmount += p.Price
	}

	return order
}
