package entity

import "time"

// WishlistItem marks a product as favorite for a user; (UserID, ProductID) is unique.
type WishlistItem struct {
	ID        uint64
	UserID    uint64
	ProductID uint64
	AddedAt   time.Time
}
