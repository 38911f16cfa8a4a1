package impl

import (
	"context"
	"log/slog"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/service"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const chargeDescription = "Geek Store Order"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	gateway service.PaymentGateway
	orders  usecase.OrderUsecase
	qrCode  service.QRCodeService
	logger  *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway service.PaymentGateway
	Orders  usecase.OrderUsecase
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		gateway: params.Gateway,
		orders:  params.Orders,
		qrCode:  params.QRCode,
		logger:  params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessPayment charges the card and, once approved, records the order.
// A charge cannot be undone from here, so an order failure after approval is reported, not returned.
func (srv *paymentService) ProcessPayment(ctx context.Context, userID uint64, input *usecase.ProcessPaymentInput) (*usecase.PaymentResult, error) {
	amount := entity.RoundMoney(input.Amount)
	srv.log(ctx).Info("Processing card payment", slog.Uint64("userID", userID), slog.String("amount", amount.StringFixed(2)))

	charge, err := srv.gateway.Charge(ctx, &service.ChargeRequest{
		Token:           input.Token,
		Amount:          amount,
		Description:     chargeDescription,
		Installments:    input.Installments,
		PaymentMethodID: input.PaymentMethodID,
		PayerEmail:      input.PayerEmail,
	})
	if err != nil {
		srv.log(ctx).Error("Payment gateway call failed", slog.Any("error", err))

		if errors.Is(err, service.ErrPaymentGatewayUnavailable) {
			return nil, errors.Wrap(domainerrors.ErrPaymentGatewayUnavailable, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrPaymentRejected, err.Error())
	}

	result := &usecase.PaymentResult{
		PaymentID:    charge.ID,
		Status:       charge.Status,
		StatusDetail: charge.StatusDetail,
		Approved:     charge.Approved(),
	}

	if !result.Approved {
		srv.log(ctx).Warn("Payment not approved",
			slog.Int64("paymentID", charge.ID),
			slog.String("status", charge.Status),
			slog.String("statusDetail", charge.StatusDetail),
		)

		return result, nil
	}

	order, err := srv.orders.CreatePaidOrder(ctx, userID, &usecase.PaidOrderInput{
		Items:     input.Items,
		Shipping:  input.Shipping,
		TotalPaid: amount,
	})
	if err != nil {
		srv.log(ctx).Error("Payment approved but order creation failed",
			slog.Int64("paymentID", charge.ID),
			slog.Uint64("userID", userID),
			slog.String("amount", amount.StringFixed(2)),
			slog.Any("error", err),
		)
		result.OrderStatus = usecase.OrderStatusPendingSync

		return result, nil
	}

	result.Order = order
	srv.log(ctx).Info("Payment approved and order created", slog.Int64("paymentID", charge.ID), slog.Uint64("orderID", order.ID))

	return result, nil
}

// GeneratePaymentQR renders the wallet QR for a manual payment.
func (srv *paymentService) GeneratePaymentQR(ctx context.Context, amount decimal.Decimal) ([]byte, error) {
	if !amount.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("El monto debe ser mayor a cero"), "non-positive amount")
	}

	png, err := srv.qrCode.GeneratePaymentQR(entity.RoundMoney(amount))
	if err != nil {
		srv.log(ctx).Error("Failed to generate payment QR", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}
