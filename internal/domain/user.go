package domain

import (
	"fmt"
	"time"
)

const (
	UserRoleCustomer = "customer"
	UserRoleSeller   = "seller"
	UserRoleAdmin    = "admin"
)

type User struct {
	ID    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Role  string `bson:"role" json:"role"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

type WishlistItem struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"user_id"`
	ProductID string    `bson:"productId" json:"product_id"`
	AddedAt   time.Time `bson:"addedAt" json:"added_at"`
}

// WishlistItemID keys a wishlist entry by its owner and product.
func WishlistItemID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}
