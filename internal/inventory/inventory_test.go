package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"interaction3d/internal/engine"
	"interaction3d/internal/interactables"
)

const catalogYAML = `
items:
  - id: gold_key
    display_name: Gold Key
  - id: gem
`

func TestInventoryDeduplicates(t *testing.T) {
	inv := New(nil)
	inv.Log = zaptest.NewLogger(t)

	var added []string
	inv.Changed.AddListener(func(id string) { added = append(added, id) })

	inv.AddItem("gold_key")
	inv.AddItem("gold_key")
	inv.AddItem("")
	inv.AddItem("gem")

	assert.Equal(t, []string{"gold_key", "gem"}, inv.Items())
	assert.Equal(t, added, inv.Items())
	assert.True(t, inv.HasItem("gem"))
	assert.False(t, inv.HasItem("silver_key"))
}

func TestInventoryIsItemHolder(t *testing.T) {
	player := engine.NewGameObject("Player")
	player.AddComponent(New(nil))

	assert.False(t, interactables.HasItem(player, "gold_key"))
	k := interactables.NewKey("gold_key")
	key := engine.NewGameObject("Key")
	key.AddComponent(k)
	k.Interact(player)

	assert.True(t, interactables.HasItem(player, "gold_key"))
}

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	assert.Equal(t, "Gold Key", c.DisplayName("gold_key"))
	assert.Equal(t, "gem", c.DisplayName("gem"))
	assert.Equal(t, "rope", c.DisplayName("rope"))
	assert.Len(t, c.Items(), 2)

	_, err = c.Lookup("rope")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestParseCatalogRejectsBadEntries(t *testing.T) {
	_, err := ParseCatalog([]byte("items:\n  - display_name: Nameless\n"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("items:\n  - id: a\n  - id: a\n"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("items: [\n"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)

	inv := New(c)
	inv.Log = zaptest.NewLogger(t)
	inv.AddItem("gold_key")
	inv.AddItem("gem")
	assert.Equal(t, []string{"Gold Key", "gem"}, inv.DisplayNames())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
