package memory

import (
	"context"
	"sort"
	"strings"

	"munch/internal/domain/entity"
	"munch/internal/domain/repository"
)

// dishRepository implements repository.DishRepository over a fixed slice.
// The catalogue is immutable after seeding, so reads need no locking.
type dishRepository struct {
	dishes []entity.Dish
}

// NewDishRepository is the constructor for dishRepository. The seed slice is
// copied so the caller cannot mutate the catalogue afterwards.
func NewDishRepository(seed []entity.Dish) repository.DishRepository {
	dishes := make([]entity.Dish, len(seed))
	copy(dishes, seed)

	return &dishRepository{dishes: dishes}
}

// List returns the dishes matching the filter in the requested order.
func (repo *dishRepository) List(ctx context.Context, filter repository.MenuFilter, sortKey repository.MenuSort) ([]entity.Dish, error) {
	matched := make([]entity.Dish, 0, len(repo.dishes))
	for _, dish := range repo.dishes {
		if matchesFilter(dish, filter) {
			matched = append(matched, dish)
		}
	}

	sortDishes(matched, sortKey)

	return matched, nil
}

// FindByID retrieves a single dish by its catalogue identifier.
func (repo *dishRepository) FindByID(ctx context.Context, id int) (*entity.Dish, error) {
	for _, dish := range repo.dishes {
		if dish.ID == id {
			found := dish

			return &found, nil
		}
	}

	return nil, repository.ErrDishNotFound
}

// Vegetarian returns the vegetarian subset in catalogue order.
func (repo *dishRepository) Vegetarian(ctx context.Context) ([]entity.Dish, error) {
	matched := make([]entity.Dish, 0, len(repo.dishes))
	for _, dish := range repo.dishes {
		if dish.Vegetarian {
			matched = append(matched, dish)
		}
	}

	return matched, nil
}

// TopRated returns the n highest-rated dishes in descending rating order.
// The sort is stable, so rating ties keep catalogue order.
func (repo *dishRepository) TopRated(ctx context.Context, n int) ([]entity.Dish, error) {
	ranked := make([]entity.Dish, len(repo.dishes))
	copy(ranked, repo.dishes)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n], nil
}

func matchesFilter(dish entity.Dish, filter repository.MenuFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		name := strings.ToLower(dish.Name)
		category := strings.ToLower(dish.Category)
		if !strings.Contains(name, needle) && !strings.Contains(category, needle) {
			return false
		}
	}

	if filter.Category != "" && !strings.EqualFold(dish.Category, filter.Category) {
		return false
	}

	return true
}

func sortDishes(dishes []entity.Dish, key repository.MenuSort) {
	var less func(i, j int) bool

	switch key {
	case repository.MenuSortNameAsc:
		less = func(i, j int) bool { return dishes[i].Name < dishes[j].Name }
	case repository.MenuSortNameDesc:
		less = func(i, j int) bool { return dishes[i].Name > dishes[j].Name }
	case repository.MenuSortPriceAsc:
		less = func(i, j int) bool { return dishes[i].Price < dishes[j].Price }
	case repository.MenuSortPriceDesc:
		less = func(i, j int) bool { return dishes[i].Price > dishes[j].Price }
	case repository.MenuSortRatingAsc:
		less = func(i, j int) bool { return dishes[i].Rating < dishes[j].Rating }
	case repository.MenuSortRatingDesc:
		less = func(i, j int) bool { return dishes[i].Rating > dishes[j].Rating }
	default:
		// Unrecognized or absent sort keeps catalogue order.
		return
	}

	sort.SliceStable(dishes, less)
}
