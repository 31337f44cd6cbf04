// Package inventory holds the items an actor carries and the catalog that
// names them.
package inventory

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownItem is returned by Catalog.Lookup for ids the catalog lacks.
var ErrUnknownItem = errors.New("unknown item")

// Item describes a collectible thing.
type Item struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
}

// Catalog maps item ids to their descriptions.
type Catalog struct {
	items map[string]Item
	order []string
}

type catalogFile struct {
	Items []Item `yaml:"items"`
}

func NewCatalog(items ...Item) *Catalog {
	c := &Catalog{items: make(map[string]Item, len(items))}
	for _, it := range items {
		c.add(it)
	}
	return c
}

func (c *Catalog) add(it Item) {
	if _, exists := c.items[it.ID]; !exists {
		c.order = append(c.order, it.ID)
	}
	c.items[it.ID] = it
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inventory: read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a catalog document. Ids must be non-empty and unique.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("inventory: unmarshal catalog: %w", err)
	}
	c := NewCatalog()
	for i, it := range file.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("inventory: catalog entry %d has no id", i)
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, fmt.Errorf("inventory: duplicate catalog id %q", it.ID)
		}
		c.add(it)
	}
	return c, nil
}

// Lookup returns the item for id.
func (c *Catalog) Lookup(id string) (Item, error) {
	if c != nil {
		if it, ok := c.items[id]; ok {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

// DisplayName falls back to the id for unknown items.
func (c *Catalog) DisplayName(id string) string {
	it, err := c.Lookup(id)
	if err != nil || it.DisplayName == "" {
		return id
	}
	return it.DisplayName
}

// Items lists the catalog in file order.
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}
