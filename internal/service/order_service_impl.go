package service

import (
	"context"
	"strings"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/repository"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/rs/zerolog/log"
)

type OrderServiceImpl struct {
	orderRepo repository.OrderRepository
	publisher EventPublisher
	now       func() time.Time
}

func CreateOrderService(orderRepo repository.OrderRepository, publisher EventPublisher) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo, publisher: publisher, now: time.Now}
}

type orderDeliveredEvent struct {
	OrderID        string    `json:"order_id"`
	UserID         string    `json:"user_id"`
	PreviousStatus string    `json:"previous_status"`
	DeliveredAt    time.Time `json:"delivered_at"`
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (order domain.Order, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return order, errs.ErrInvalidOrderID
	}

	return s.orderRepo.GetOrderByID(ctx, id)
}

// ForceDeliver overwrites the order status with Delivered regardless of
// its current status.
func (s *OrderServiceImpl) ForceDeliver(ctx context.Context, id string) (order domain.Order, err error) {
	order, err = s.GetOrder(ctx, id)
	if err != nil {
		return
	}

	previous := order.Status
	at := s.now().UTC()

	err = s.orderRepo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusDelivered, at)
	if err != nil {
		return
	}

	order.Status = domain.OrderStatusDelivered
	order.UpdatedAt = at

	log.Ctx(ctx).Info().Str("component", "ForceDeliver").Str("order_id", order.ID).
		Str("previous_status", previous).Msg("order marked as delivered")

	err = s.publisher.Publish(ctx, EventOrderDelivered, order.ID, orderDeliveredEvent{
		OrderID:        order.ID,
		UserID:         order.UserID,
		PreviousStatus: previous,
		DeliveredAt:    at,
	})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "ForceDeliver").Msg("order delivered event not published")
	}

	return order, nil
}

func (s *OrderServiceImpl) ListUserOrders(ctx context.Context, userID string) (orders []domain.Order, err error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	return s.orderRepo.GetOrdersByUserID(ctx, userID, "")
}
