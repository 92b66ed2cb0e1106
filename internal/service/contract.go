package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
)

type CatalogService interface {
	AuditCategories(ctx context.Context, filter pkgdto.Filter) (audit dto.CategoryAudit, err error)
	InspectProduct(ctx context.Context, id string) (inspection dto.ProductInspection, err error)
	FixCategories(ctx context.Context, dryRun bool) (report dto.CorrectionReport, err error)
	FillSpecifications(ctx context.Context, dryRun bool) (report dto.CorrectionReport, err error)
	NormalizeColors(ctx context.Context, dryRun bool) (report dto.CorrectionReport, err error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id string) (order domain.Order, err error)
	ForceDeliver(ctx context.Context, id string) (order domain.Order, err error)
	ListUserOrders(ctx context.Context, userID string) (orders []domain.Order, err error)
}

type ReviewService interface {
	ListUserReviews(ctx context.Context, userID string) (reviews []domain.Review, err error)
	ReviewableProducts(ctx context.Context, userID string) (items []dto.ReviewableItem, err error)
}

type UserService interface {
	GetUserProfile(ctx context.Context, userID string) (profile dto.UserProfile, err error)
}

type SeedService interface {
	Seed(ctx context.Context, opts dto.SeedOptions) (report dto.SeedReport, err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, data interface{}) (err error)
}
