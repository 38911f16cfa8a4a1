package model

import "time"

// WishlistItemModel mirrors the 'wishlist_items' table.
type WishlistItemModel struct {
	ID        uint64        `gorm:"primaryKey;autoIncrement"`
	UserID    uint64        `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	User      *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProductID uint64        `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	AddedAt   time.Time     `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
