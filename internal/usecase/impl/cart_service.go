package impl

import (
	"context"
	"log/slog"

	domainerrors "munch/internal/domain/errors"
	"munch/internal/domain/repository"
	"munch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	dishRepo repository.DishRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	DishRepo repository.DishRepository
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		dishRepo: params.DishRepo,
		logger:   params.Logger,
	}
}

// AddItem appends a catalogue dish to the user's cart. The dish must exist;
// the cart itself is created lazily on first add.
func (srv *cartService) AddItem(ctx context.Context, email string, dishID int) (*usecase.CartOutput, error) {
	dish, err := srv.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDishNotFound, "add to cart")
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	cart, err := srv.cartRepo.Append(ctx, email, *dish)
	if err != nil {
		return nil, errors.Wrap(err, "failed to append to cart")
	}

	srv.logger.Debug("Dish added to cart",
		slog.String("email", email),
		slog.Int("dishID", dishID),
		slog.Int("cartSize", len(cart.Items)),
	)

	return &usecase.CartOutput{Email: cart.Email, Items: cart.Items, Total: cart.Total()}, nil
}

// GetCart returns the user's cart with its computed total. An unknown user
// gets an empty cart, never an error.
func (srv *cartService) GetCart(ctx context.Context, email string) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.Get(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return &usecase.CartOutput{Email: cart.Email, Items: cart.Items, Total: cart.Total()}, nil
}
