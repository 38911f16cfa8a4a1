package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/constants"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/domain/service"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var defaultManualShippingFee = decimal.NewFromInt(20)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	storage     service.FileStorage
	notifier    *mailNotifier
	shippingFee decimal.Decimal
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Storage   service.FileStorage
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	shippingFee := defaultManualShippingFee
	if params.Config != nil && params.Config.Store != nil && params.Config.Store.ManualShippingFee > 0 {
		shippingFee = entity.RoundMoney(decimal.NewFromFloat(params.Config.Store.ManualShippingFee))
	}

	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		storage:     params.Storage,
		notifier:    newMailNotifier(params.Publisher, params.Logger),
		shippingFee: shippingFee,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateManualOrder places an order paid by wallet transfer. It waits for an administrator to confirm the payment.
func (srv *orderService) CreateManualOrder(ctx context.Context, userID uint64, input *usecase.ManualOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating manual order", slog.Uint64("userID", userID), slog.Int("items", len(input.Items)))

	order := &entity.Order{
		UserID:        userID,
		Status:        entity.OrderStatusAwaitingReview,
		PaymentMethod: entity.PaymentMethodManual,
		OperationCode: strings.TrimSpace(input.OperationCode),
		Shipping:      input.Shipping,
	}

	err := srv.placeOrder(ctx, order, input.Items, orderHooks{
		total: func(items []entity.OrderItem) decimal.Decimal {
			total := decimal.Zero
			for _, item := range items {
				qty := decimal.NewFromInt(int64(item.Quantity))
				total = total.Add(item.Subtotal()).Add(srv.shippingFee.Mul(qty))
			}

			return entity.RoundMoney(total)
		},
		// The proof is stored only once the items are known to be in stock.
		beforeInsert: func(ctx context.Context, order *entity.Order) error {
			return srv.attachProof(ctx, order, input.Proof)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create manual order")
	}

	srv.notifier.orderConfirmation(ctx, order)

	return order, nil
}

// CreatePaidOrder records an order whose card charge was approved.
func (srv *orderService) CreatePaidOrder(ctx context.Context, userID uint64, input *usecase.PaidOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order from payment", slog.Uint64("userID", userID), slog.String("amount", input.TotalPaid.StringFixed(2)))

	order := &entity.Order{
		UserID:        userID,
		Status:        entity.OrderStatusPaid,
		PaymentMethod: entity.PaymentMethodCard,
		Shipping:      input.Shipping,
	}

	err := srv.placeOrder(ctx, order, input.Items, orderHooks{
		total: func([]entity.OrderItem) decimal.Decimal {
			return entity.RoundMoney(input.TotalPaid)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order from payment")
	}

	srv.notifier.orderConfirmation(ctx, order)

	return order, nil
}

func (srv *orderService) attachProof(ctx context.Context, order *entity.Order, proof *service.UploadFile) error {
	if proof == nil || proof.Size <= 0 {
		return nil
	}

	url, err := srv.storage.Upload(ctx, constants.FolderPaymentProofs, proof)
	if err != nil {
		srv.log(ctx).Error("Failed to upload payment proof", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("Error al subir el comprobante de pago"), err.Error())
	}
	order.ProofURL = url

	return nil
}

// orderHooks customise placeOrder per payment method.
type orderHooks struct {
	total func([]entity.OrderItem) decimal.Decimal
	// beforeInsert runs after stock is reserved, inside the transaction.
	beforeInsert func(context.Context, *entity.Order) error
}

// placeOrder checks and decrements stock, snapshots the items and inserts the order in one transaction.
func (srv *orderService) placeOrder(
	ctx context.Context,
	order *entity.Order,
	requested []usecase.OrderItemInput,
	hooks orderHooks,
) error {
	if len(requested) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("El pedido debe tener al menos un producto"), "empty order")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := findUser(ctx, repoFactory.NewUserRepository(), order.UserID)
		if err != nil {
			return err
		}

		items, err := srv.reserveItems(ctx, repoFactory.NewProductRepository(), requested)
		if err != nil {
			return err
		}

		order.UserEmail = user.Email
		order.UserName = strings.TrimSpace(user.FirstName + " " + user.LastName)
		order.Items = items
		order.Total = hooks.total(items)

		if hooks.beforeInsert != nil {
			if err := hooks.beforeInsert(ctx, order); err != nil {
				return err
			}
		}

		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to save order")
		}

		srv.log(ctx).Info("Order created",
			slog.Uint64("orderID", order.ID),
			slog.String("status", string(order.Status)),
			slog.String("total", order.Total.StringFixed(2)),
		)

		return nil
	})
}

func (srv *orderService) reserveItems(
	ctx context.Context,
	productRepo repository.ProductRepository,
	requested []usecase.OrderItemInput,
) ([]entity.OrderItem, error) {
	products := make(map[uint64]*entity.Product, len(requested))
	items := make([]entity.OrderItem, 0, len(requested))

	for _, req := range requested {
		if req.Quantity <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("La cantidad debe ser mayor a cero"), "non-positive quantity")
		}

		product, ok := products[req.ProductID]
		if !ok {
			found, err := productRepo.FindProductByID(ctx, req.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return nil, errors.Wrap(domainerrors.ErrProductNotFound, fmt.Sprintf("product %d not found", req.ProductID))
				}

				return nil, errors.Wrap(err, "failed to find product")
			}
			product = found
			products[req.ProductID] = product
		}

		variant, ok := product.FindVariant(req.VariantID)
		if !ok {
			return nil, errors.Wrap(domainerrors.ErrVariantNotFound, fmt.Sprintf("variant %d not in product %d", req.VariantID, product.ID))
		}

		if variant.Stock < req.Quantity {
			srv.log(ctx).Warn("Insufficient stock",
				slog.Uint64("productID", product.ID),
				slog.Uint64("variantID", variant.ID),
				slog.Int("stock", variant.Stock),
				slog.Int("requested", req.Quantity),
			)

			return nil, errors.Wrap(insufficientStock(product.Name), "stock check failed")
		}

		if err := productRepo.DecrementVariantStock(ctx, product.ID, variant.ID, req.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, errors.Wrap(insufficientStock(product.Name), "conditional stock update matched no row")
			}

			return nil, errors.Wrap(err, "failed to decrement stock")
		}
		variant.Stock -= req.Quantity

		productID := product.ID
		items = append(items, entity.OrderItem{
			ProductID:   &productID,
			VariantID:   variant.ID,
			Quantity:    req.Quantity,
			UnitPrice:   product.Price,
			ProductName: product.Name,
			Color:       variant.Color,
			Size:        variant.Size,
		})
	}

	return items, nil
}

func insufficientStock(productName string) error {
	return domainerrors.ErrInsufficientStock.WithMessage("Stock insuficiente: " + productName)
}

func (srv *orderService) ListMyOrders(ctx context.Context, userID uint64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAllOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) UpdateStatus(ctx context.Context, orderID uint64, status string) (*entity.Order, error) {
	newStatus := entity.OrderStatus(strings.ToUpper(strings.TrimSpace(status)))
	if newStatus == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("El estado es obligatorio"), "blank status")
	}

	var changed bool
	order, err := srv.updateFulfillment(ctx, orderID, func(order *entity.Order) {
		changed = order.Status != newStatus
		order.Status = newStatus
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Uint64("orderID", orderID), slog.String("status", string(newStatus)), slog.Bool("changed", changed))

	if changed {
		srv.notifier.orderStatusUpdate(ctx, order)
	}

	return order, nil
}

func (srv *orderService) AddTracking(ctx context.Context, orderID uint64, input *usecase.TrackingInput) (*entity.Order, error) {
	order, err := srv.updateFulfillment(ctx, orderID, func(order *entity.Order) {
		order.ApplyTracking(strings.TrimSpace(input.TrackingNumber), strings.TrimSpace(input.CourierName))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add tracking")
	}

	srv.log(ctx).Info("Order tracking added", slog.Uint64("orderID", orderID), slog.String("status", string(order.Status)))
	srv.notifier.orderStatusUpdate(ctx, order)

	return order, nil
}

func (srv *orderService) updateFulfillment(ctx context.Context, orderID uint64, mutate func(*entity.Order)) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		mutate(order)

		if err := orderRepo.UpdateOrderFulfillment(ctx, order); err != nil {
			return errors.Wrap(err, "failed to save order")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
