package service

import (
	"context"
	"strings"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/internal/repository"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
)

type UserServiceImpl struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
}

func CreateUserService(userRepo repository.UserRepository, orderRepo repository.OrderRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo, orderRepo: orderRepo}
}

func (s *UserServiceImpl) GetUserProfile(ctx context.Context, userID string) (profile dto.UserProfile, err error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile, errs.ErrInvalidUserID
	}

	profile.User, err = s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	profile.Wishlist, err = s.userRepo.GetWishlistByUserID(ctx, userID)
	if err != nil {
		return
	}
	if profile.Wishlist == nil {
		profile.Wishlist = []domain.WishlistItem{}
	}

	profile.OrderCount, err = s.orderRepo.CountOrdersByUserID(ctx, userID)
	if err != nil {
		return
	}

	return profile, nil
}
