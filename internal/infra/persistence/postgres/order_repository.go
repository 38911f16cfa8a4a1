package postgres

import (
	"context"
	"strings"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func withOrderAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

// CreateOrder inserts the order together with its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("User").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid order owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = orderM.Items[i].ID
			order.Items[i].OrderID = orderM.ID
		}
	}

	return nil
}

func (repo *orderRepository) FindOrderByID(ctx context.Context, id uint64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := withOrderAssociations(repo.db.WithContext(ctx)).First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := withOrderAssociations(repo.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := withOrderAssociations(repo.db.WithContext(ctx)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) UpdateOrderFulfillment(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":          string(order.Status),
			"tracking_number": order.TrackingNumber,
			"courier_name":    order.CourierName,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:             data.ID,
		UserID:         data.UserID,
		CreatedAt:      data.CreatedAt,
		Status:         entity.OrderStatus(data.Status),
		Total:          data.Total,
		TrackingNumber: data.TrackingNumber,
		CourierName:    data.CourierName,
		PaymentMethod:  entity.PaymentMethod(data.PaymentMethod),
		OperationCode:  data.OperationCode,
		ProofURL:       data.ProofURL,
	}

	if data.User != nil {
		order.UserEmail = data.User.Email
		order.UserName = strings.TrimSpace(data.User.FirstName + " " + data.User.LastName)
	}

	if data.ShippingStreet != nil {
		order.Shipping = &entity.ShippingAddress{
			Street:     derefString(data.ShippingStreet),
			City:       derefString(data.ShippingCity),
			State:      derefString(data.ShippingState),
			PostalCode: derefString(data.ShippingPostalCode),
			Country:    derefString(data.ShippingCountry),
		}
	}

	order.Items = make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ProductName: item.ProductName,
			Color:       item.Color,
			Size:        item.Size,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		CreatedAt:      data.CreatedAt,
		Status:         string(data.Status),
		Total:          data.Total,
		TrackingNumber: data.TrackingNumber,
		CourierName:    data.CourierName,
		PaymentMethod:  string(data.PaymentMethod),
		OperationCode:  data.OperationCode,
		ProofURL:       data.ProofURL,
	}

	if data.Shipping != nil {
		orderM.ShippingStreet = &data.Shipping.Street
		orderM.ShippingCity = &data.Shipping.City
		orderM.ShippingState = &data.Shipping.State
		orderM.ShippingPostalCode = &data.Shipping.PostalCode
		orderM.ShippingCountry = &data.Shipping.Country
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:          item.ID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ProductName: item.ProductName,
			Color:       item.Color,
			Size:        item.Size,
		})
	}

	return orderM
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
