package reviews

import (
	"testing"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/stretchr/testify/assert"
)

func order(id, status string, productIDs ...string) domain.Order {
	o := domain.Order{ID: id, UserID: "u1", Status: status}
	for _, p := range productIDs {
		o.Items = append(o.Items, domain.OrderItem{ProductID: p, Name: "Product " + p, Quantity: 1})
	}

	return o
}

func TestReviewable(t *testing.T) {
	type TestCase struct {
		Name     string
		Orders   []domain.Order
		Reviews  []domain.Review
		Expected []dto.ReviewableItem
	}

	testCases := []TestCase{
		{
			Name: "reviewed product is excluded from every order",
			Orders: []domain.Order{
				order("A", domain.OrderStatusDelivered, "p1", "p2"),
				order("B", domain.OrderStatusDelivered, "p1"),
			},
			Reviews:  []domain.Review{{ProductID: "p1"}},
			Expected: []dto.ReviewableItem{{ProductID: "p2", ProductName: "Product p2"}},
		},
		{
			Name: "duplicates across orders are kept",
			Orders: []domain.Order{
				order("A", domain.OrderStatusDelivered, "p1", "p2"),
				order("B", domain.OrderStatusDelivered, "p2"),
			},
			Expected: []dto.ReviewableItem{
				{ProductID: "p1", ProductName: "Product p1"},
				{ProductID: "p2", ProductName: "Product p2"},
				{ProductID: "p2", ProductName: "Product p2"},
			},
		},
		{
			Name: "only exactly delivered orders count",
			Orders: []domain.Order{
				order("A", domain.OrderStatusPlaced, "p1"),
				order("B", "delivered", "p2"),
				order("C", domain.OrderStatusDelivered, "p3"),
			},
			Expected: []dto.ReviewableItem{{ProductID: "p3", ProductName: "Product p3"}},
		},
		{
			Name:     "nothing delivered",
			Expected: []dto.ReviewableItem{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, Reviewable(tc.Orders, tc.Reviews))
		})
	}
}
