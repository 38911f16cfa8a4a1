// Package model contains the GORM persistence structs of the store schema.
package model

// All lists every model in foreign key order, for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ConfirmationTokenModel{},
		&PasswordResetTokenModel{},
		&CategoryModel{},
		&BrandModel{},
		&ProductModel{},
		&ProductImageModel{},
		&ProductVariantModel{},
		&OrderModel{},
		&OrderItemModel{},
		&AddressModel{},
		&WishlistItemModel{},
		&ComplaintModel{},
	}
}
