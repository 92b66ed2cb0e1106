package reviews

import (
	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
)

// Reviewable lists the line items of delivered orders whose product the
// user has not reviewed yet, in the order they are encountered. A product
// bought in several delivered orders is listed once per order.
func Reviewable(orders []domain.Order, reviews []domain.Review) []dto.ReviewableItem {
	reviewed := make(map[string]struct{}, len(reviews))
	for _, r := range reviews {
		reviewed[r.ProductID] = struct{}{}
	}

	items := []dto.ReviewableItem{}
	for _, o := range orders {
		if o.Status != domain.OrderStatusDelivered {
			continue
		}

		for _, item := range o.Items {
			if _, ok := reviewed[item.ProductID]; ok {
				continue
			}
			items = append(items, dto.ReviewableItem{
				ProductID:   item.ProductID,
				ProductName: item.Name,
			})
		}
	}

	return items
}
