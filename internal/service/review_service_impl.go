package service

import (
	"context"
	"strings"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/internal/repository"
	"github.com/alimikegami/point-of-sales/store-admin/internal/reviews"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
)

type ReviewServiceImpl struct {
	orderRepo  repository.OrderRepository
	reviewRepo repository.ReviewRepository
}

func CreateReviewService(orderRepo repository.OrderRepository, reviewRepo repository.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{orderRepo: orderRepo, reviewRepo: reviewRepo}
}

func (s *ReviewServiceImpl) ListUserReviews(ctx context.Context, userID string) (userReviews []domain.Review, err error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	return s.reviewRepo.GetReviewsByUserID(ctx, userID)
}

func (s *ReviewServiceImpl) ReviewableProducts(ctx context.Context, userID string) (items []dto.ReviewableItem, err error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	delivered, err := s.orderRepo.GetOrdersByUserID(ctx, userID, domain.OrderStatusDelivered)
	if err != nil {
		return
	}

	userReviews, err := s.reviewRepo.GetReviewsByUserID(ctx, userID)
	if err != nil {
		return
	}

	return reviews.Reviewable(delivered, userReviews), nil
}
