package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"munch/internal/domain/entity"
	domainerrors "munch/internal/domain/errors"
	"munch/internal/domain/repository"
	"munch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// topRatedCount is the fixed size of the top-rated view.
const topRatedCount = 3

// menuService implements the MenuUsecase interface.
type menuService struct {
	dishRepo   repository.DishRepository
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// MenuServiceParams holds dependencies for menuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	DishRepo   repository.DishRepository
	RatingRepo repository.RatingRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		dishRepo:   params.DishRepo,
		ratingRepo: params.RatingRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

// List returns the filtered, sorted catalogue.
func (srv *menuService) List(ctx context.Context, input *usecase.ListMenuInput) ([]entity.Dish, error) {
	filter := repository.MenuFilter{
		Search:   strings.TrimSpace(input.Search),
		Category: strings.TrimSpace(input.Category),
	}

	dishes, err := srv.dishRepo.List(ctx, filter, parseSort(input.SortBy))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return dishes, nil
}

// GetDish retrieves a single dish by id.
func (srv *menuService) GetDish(ctx context.Context, id int) (*entity.Dish, error) {
	dish, err := srv.dishRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDishNotFound, "dish lookup")
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	return dish, nil
}

// Vegetarian returns the vegetarian subset in catalogue order.
func (srv *menuService) Vegetarian(ctx context.Context) ([]entity.Dish, error) {
	dishes, err := srv.dishRepo.Vegetarian(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vegetarian dishes")
	}

	return dishes, nil
}

// TopRated returns the three highest-rated dishes, descending.
func (srv *menuService) TopRated(ctx context.Context) ([]entity.Dish, error) {
	dishes, err := srv.dishRepo.TopRated(ctx, topRatedCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top-rated dishes")
	}

	return dishes, nil
}

// RateDish records a rating after checking that both the user and the dish exist.
func (srv *menuService) RateDish(ctx context.Context, input *usecase.RateDishInput) (*entity.Rating, error) {
	if input.Score < 1 || input.Score > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("score must be between 1 and 5"), "rate dish")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "rate dish")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if _, err := srv.dishRepo.FindByID(ctx, input.DishID); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDishNotFound, "rate dish")
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	rating := &entity.Rating{
		Email:     input.Email,
		DishID:    input.DishID,
		Score:     input.Score,
		CreatedAt: time.Now(),
	}

	if err := srv.ratingRepo.Create(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "failed to store rating")
	}

	srv.logger.Debug("Dish rated", slog.Int("dishID", input.DishID), slog.Int("score", input.Score))

	return rating, nil
}

// ListRatings returns all submitted ratings for a dish.
func (srv *menuService) ListRatings(ctx context.Context, dishID int) ([]entity.Rating, error) {
	if _, err := srv.dishRepo.FindByID(ctx, dishID); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDishNotFound, "list ratings")
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	ratings, err := srv.ratingRepo.ListByDish(ctx, dishID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}

// parseSort maps the query parameter to a store sort key. Unrecognized
// values fall through to catalogue order, matching the menu contract.
func parseSort(sortBy string) repository.MenuSort {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "name_asc":
		return repository.MenuSortNameAsc
	case "name_desc":
		return repository.MenuSortNameDesc
	case "price_asc":
		return repository.MenuSortPriceAsc
	case "price_desc":
		return repository.MenuSortPriceDesc
	case "rating_asc":
		return repository.MenuSortRatingAsc
	case "rating_desc":
		return repository.MenuSortRatingDesc
	default:
		return repository.MenuSortNone
	}
}
