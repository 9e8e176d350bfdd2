package memory

import (
	"os"
	"path/filepath"
	"testing"

	"munch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed_DefaultsWithoutConfig(t *testing.T) {
	dishes, err := LoadSeed(nil)
	require.NoError(t, err)
	require.Len(t, dishes, 4)
	assert.Equal(t, "Pizza", dishes[0].Name)

	dishes, err = LoadSeed(&config.Config{})
	require.NoError(t, err)
	assert.Len(t, dishes, 4)
}

func TestLoadSeed_FromYAMLFile(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "menu.yaml")
	content := `dishes:
  - id: 1
    name: Ramen
    price: 11.50
    category: Japanese
    vegetarian: false
    rating: 4.9
  - id: 2
    name: Tofu Bowl
    price: 9.25
    category: Japanese
    vegetarian: true
    rating: 4.2
`
	require.NoError(t, os.WriteFile(seedFile, []byte(content), 0o600))

	cfg := &config.Config{Menu: &config.MenuConfig{SeedPath: seedFile}}
	dishes, err := LoadSeed(cfg)
	require.NoError(t, err)
	require.Len(t, dishes, 2)

	assert.Equal(t, 1, dishes[0].ID)
	assert.Equal(t, "Ramen", dishes[0].Name)
	assert.InDelta(t, 11.50, dishes[0].Price, 0.001)
	assert.True(t, dishes[1].Vegetarian)
}

func TestLoadSeed_MissingFileFails(t *testing.T) {
	cfg := &config.Config{Menu: &config.MenuConfig{SeedPath: filepath.Join(t.TempDir(), "absent.yaml")}}

	_, err := LoadSeed(cfg)
	assert.Error(t, err)
}

func TestLoadSeed_EmptySeedFails(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte("dishes: []\n"), 0o600))

	cfg := &config.Config{Menu: &config.MenuConfig{SeedPath: seedFile}}
	_, err := LoadSeed(cfg)
	assert.Error(t, err)
}
