package impl

import (
	"context"
	"log/slog"
	"time"

	"munch/config"
	"munch/internal/domain/entity"
	domainerrors "munch/internal/domain/errors"
	"munch/internal/domain/repository"
	"munch/internal/usecase"
	"munch/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Checkout drains the
// cart store under its own lock and then appends to the order store, so a
// concurrent second checkout of the same cart finds it already empty.
type orderService struct {
	cartRepo             repository.CartRepository
	orderRepo            repository.OrderRepository
	defaultDeliveryDelay time.Duration
	minDeliveryLead      time.Duration
	logger               *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	defaultDelay := time.Hour
	minLead := 30 * time.Minute
	if params.Config != nil && params.Config.Orders != nil {
		if params.Config.Orders.DefaultDeliveryDelay > 0 {
			defaultDelay = params.Config.Orders.DefaultDeliveryDelay
		}
		if params.Config.Orders.MinDeliveryLead > 0 {
			minLead = params.Config.Orders.MinDeliveryLead
		}
	}

	return &orderService{
		cartRepo:             params.CartRepo,
		orderRepo:            params.OrderRepo,
		defaultDeliveryDelay: defaultDelay,
		minDeliveryLead:      minLead,
		logger:               params.Logger,
	}
}

// Checkout converts the user's cart into a new order and empties the cart.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	now := time.Now()

	// Validate the requested slot before touching the cart, so a rejected
	// request leaves the cart intact.
	deliveryTime := now.Add(srv.defaultDeliveryDelay)
	if input.DeliveryTime != nil {
		if !util.IsValidDeliveryTime(*input.DeliveryTime, now, srv.minDeliveryLead) {
			return nil, errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails("delivery time must be at least 30 minutes in the future"),
				"checkout",
			)
		}
		deliveryTime = *input.DeliveryTime
	}

	items, err := srv.cartRepo.Drain(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to drain cart")
	}
	if len(items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrEmptyCart, "checkout")
	}

	order, err := srv.orderRepo.Create(ctx, input.Email, items, deliveryTime)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.logger.Info("Order created",
		slog.Int("orderID", order.ID),
		slog.String("email", input.Email),
		slog.Int("items", len(order.Items)),
	)

	return order, nil
}

// ListForUser returns the user's orders in creation order.
func (srv *orderService) ListForUser(ctx context.Context, email string) ([]entity.Order, error) {
	orders, err := srv.orderRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Confirm transitions an order from In Process to Delivered.
func (srv *orderService) Confirm(ctx context.Context, orderID int) (*entity.Order, error) {
	order, err := srv.transition(ctx, orderID, entity.OrderStatusDelivered, "already confirmed")
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order confirmed", slog.Int("orderID", orderID))

	return order, nil
}

// Cancel transitions an order from In Process to Cancelled.
func (srv *orderService) Cancel(ctx context.Context, orderID int) (*entity.Order, error) {
	order, err := srv.transition(ctx, orderID, entity.OrderStatusCancelled, "already finalized")
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order cancelled", slog.Int("orderID", orderID))

	return order, nil
}

func (srv *orderService) transition(ctx context.Context, orderID int, next entity.OrderStatus, detail string) (*entity.Order, error) {
	order, err := srv.orderRepo.Transition(ctx, orderID, next)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order transition")
		}
		if errors.Is(err, repository.ErrOrderFinalized) {
			return nil, errors.Wrap(domainerrors.ErrOrderAlreadyFinalized.WithDetails(detail), "order transition")
		}

		return nil, errors.Wrap(err, "failed to transition order")
	}

	return order, nil
}

// Summary counts all orders by status.
func (srv *orderService) Summary(ctx context.Context) (*repository.OrderSummary, error) {
	summary, err := srv.orderRepo.Summary(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize orders")
	}

	return summary, nil
}
