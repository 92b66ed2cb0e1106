package domain

import "time"

const (
	OrderStatusPlaced    = "Placed"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	ID          string      `bson:"_id" json:"id"`
	UserID      string      `bson:"userId" json:"user_id"`
	Status      string      `bson:"status" json:"status"`
	Items       []OrderItem `bson:"items" json:"items"`
	TotalAmount float64     `bson:"totalAmount" json:"total_amount"`
	CreatedAt   time.Time   `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
}

type OrderItem struct {
	ProductID string  `bson:"productId" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}
