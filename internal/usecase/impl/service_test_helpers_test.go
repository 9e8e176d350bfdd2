package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"munch/config"
	"munch/internal/domain/repository"
	"munch/internal/infra/auth"
	"munch/internal/infra/persistence/memory"
	"munch/internal/infra/token"
	"munch/internal/usecase"

	"github.com/stretchr/testify/require"
)

// serviceFixtures wires every usecase against real in-memory stores, the way
// the application itself runs. Tests share stores through this struct so
// cross-service effects (checkout draining a cart, delete removing activity)
// stay observable.
type serviceFixtures struct {
	account usecase.AccountUsecase
	profile usecase.ProfileUsecase
	menu    usecase.MenuUsecase
	cart    usecase.CartUsecase
	order   usecase.OrderUsecase
	support usecase.SupportUsecase

	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
}

func createServiceFixtures(t *testing.T) serviceFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dishRepo := memory.NewDishRepository(memory.DefaultSeed())
	userRepo := memory.NewUserRepository()
	cartRepo := memory.NewCartRepository()
	orderRepo := memory.NewOrderRepository()
	activityRepo := memory.NewActivityRepository()
	ratingRepo := memory.NewRatingRepository()
	supportRepo := memory.NewSupportRepository()

	// Low cost keeps the bcrypt-heavy tests fast.
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Orders: &config.OrdersConfig{
			DefaultDeliveryDelay: time.Hour,
			MinDeliveryLead:      30 * time.Minute,
		},
	}

	hasher := auth.NewBcryptHasher(cfg)
	tokenSvc := token.NewFakeTokenService()

	return serviceFixtures{
		account: NewAccountService(AccountServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
			TokenSvc: tokenSvc,
			Logger:   logger,
		}),
		profile: NewProfileService(ProfileServiceParams{
			UserRepo:     userRepo,
			ActivityRepo: activityRepo,
			Logger:       logger,
		}),
		menu: NewMenuService(MenuServiceParams{
			DishRepo:   dishRepo,
			RatingRepo: ratingRepo,
			UserRepo:   userRepo,
			Logger:     logger,
		}),
		cart: NewCartService(CartServiceParams{
			CartRepo: cartRepo,
			DishRepo: dishRepo,
			Logger:   logger,
		}),
		order: NewOrderService(OrderServiceParams{
			CartRepo:  cartRepo,
			OrderRepo: orderRepo,
			Config:    cfg,
			Logger:    logger,
		}),
		support: NewSupportService(SupportServiceParams{
			SupportRepo: supportRepo,
			Logger:      logger,
		}),
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
	}
}

// registerUser is a shorthand for tests that need an existing account.
func registerUser(t *testing.T, fx serviceFixtures, email, name string) {
	t.Helper()

	_, err := fx.account.Register(context.Background(), &usecase.RegisterInput{
		Name:      name,
		Email:     email,
		Password:  "secret123",
		Address:   "Lenina St 1",
		BirthDate: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}
