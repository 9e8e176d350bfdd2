package memory

import (
	"strings"

	"munch/config"
	"munch/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// menuSeed is the YAML shape of an external catalogue seed file.
type menuSeed struct {
	Dishes []entity.Dish `json:"dishes" yaml:"dishes"`
}

// DefaultSeed returns the built-in dish catalogue.
func DefaultSeed() []entity.Dish {
	return []entity.Dish{
		{ID: 1, Name: "Pizza", Price: 10.99, Category: "Italian", Vegetarian: false, Rating: 4.5},
		{ID: 2, Name: "Veggie Burger", Price: 8.49, Category: "American", Vegetarian: true, Rating: 4.8},
		{ID: 3, Name: "Pasta", Price: 12.29, Category: "Italian", Vegetarian: true, Rating: 4.6},
		{ID: 4, Name: "Steak", Price: 15.99, Category: "Grill", Vegetarian: false, Rating: 4.7},
	}
}

// LoadSeed returns the catalogue configured for the service: the YAML file
// at menu.seedPath when one is set, otherwise the built-in seed.
func LoadSeed(cfg *config.Config) ([]entity.Dish, error) {
	if cfg == nil || cfg.Menu == nil || strings.TrimSpace(cfg.Menu.SeedPath) == "" {
		return DefaultSeed(), nil
	}

	return loadSeedFile(cfg.Menu.SeedPath)
}

func loadSeedFile(path string) ([]entity.Dish, error) {
	koanfInstance := koanf.New(".")
	if err := koanfInstance.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read menu seed %s failed", path)
	}

	seed := new(menuSeed)
	if err := koanfInstance.UnmarshalWithConf("", seed, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           seed,
			WeaklyTypedInput: true,
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal menu seed %s failed", path)
	}

	if len(seed.Dishes) == 0 {
		return nil, errors.Errorf("menu seed %s contains no dishes", path)
	}

	return seed.Dishes, nil
}
