package inventory

import (
	"slices"

	"go.uber.org/zap"

	"interaction3d/internal/engine"
)

// Inventory is the actor component that collects items. Each id is held at
// most once.
type Inventory struct {
	engine.BaseComponent

	Catalog *Catalog
	Log     *zap.Logger

	// Changed fires with the id of every newly added item.
	Changed engine.EventWithArg[string]

	items []string
}

func New(catalog *Catalog) *Inventory {
	return &Inventory{Catalog: catalog}
}

func (inv *Inventory) AddItem(id string) {
	if id == "" || inv.HasItem(id) {
		return
	}
	if inv.Catalog != nil {
		if _, err := inv.Catalog.Lookup(id); err != nil {
			inv.logger().Warn("item not in catalog", zap.String("item", id))
		}
	}
	inv.items = append(inv.items, id)
	inv.logger().Info("item added", zap.String("item", id), zap.Int("count", len(inv.items)))
	inv.Changed.Invoke(id)
}

func (inv *Inventory) HasItem(id string) bool {
	return slices.Contains(inv.items, id)
}

// Items returns the held ids in pickup order.
func (inv *Inventory) Items() []string {
	return slices.Clone(inv.items)
}

// DisplayNames maps the held ids through the catalog.
func (inv *Inventory) DisplayNames() []string {
	out := make([]string, 0, len(inv.items))
	for _, id := range inv.items {
		out = append(out, inv.Catalog.DisplayName(id))
	}
	return out
}

func (inv *Inventory) logger() *zap.Logger {
	if inv.Log != nil {
		return inv.Log
	}
	return zap.L().Named("inventory")
}
