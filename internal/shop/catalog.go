// Package shop lists the cosmetic skins and runs purchases against a session.
package shop

import (
	"errors"
	"fmt"

	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/runner"
)

// ErrUnknownItem is returned by Buy for an id that is not in the catalog.
var ErrUnknownItem = errors.New("shop: unknown item")

// Item is a purchasable skin.
type Item struct {
	ID    string
	Name  string
	Color string
	Price int
}

// Catalog is the list of skins on sale.
type Catalog struct {
	items        []Item
	defaultSkin  string
	defaultColor string
}

// NewCatalog builds a catalog from the shop configuration.
func NewCatalog(cfg config.Shop) *Catalog {
	c := &Catalog{
		items:        make([]Item, 0, len(cfg.Items)),
		defaultSkin:  cfg.DefaultSkin,
		defaultColor: cfg.DefaultColor,
	}
	for _, it := range cfg.Items {
		c.items = append(c.items, Item{ID: it.ID, Name: it.Name, Color: it.Color, Price: it.Price})
	}
	return c
}

// Items returns the skins in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Find looks an item up by id.
func (c *Catalog) Find(id string) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ColorOf returns the display color of a skin.
// The default skin and unknown ids use the default color.
func (c *Catalog) ColorOf(skinID string) string {
	if it, ok := c.Find(skinID); ok && it.Color != "" {
		return it.Color
	}
	return c.defaultColor
}

// NameOf returns the display name of a skin.
func (c *Catalog) NameOf(skinID string) string {
	if it, ok := c.Find(skinID); ok {
		return it.Name
	}
	if skinID == c.defaultSkin {
		return "Default"
	}
	return skinID
}

// Buyer charges coins and equips a skin.
type Buyer interface {
	Purchase(skinID string, cost int) error
}

// Buy purchases the item with the given id at its catalog price.
// Every purchase charges the price, even for the skin already worn.
func (c *Catalog) Buy(b Buyer, id string) (Item, error) {
	it, ok := c.Find(id)
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	if err := b.Purchase(it.ID, it.Price); err != nil {
		return it, err
	}
	return it, nil
}

// Message turns a purchase result into a line for the player.
func Message(it Item, err error) string {
	var funds *runner.InsufficientFundsError
	switch {
	case err == nil:
		return fmt.Sprintf("Equipped %s", it.Name)
	case errors.As(err, &funds):
		return "Not enough coins"
	case errors.Is(err, ErrUnknownItem):
		return "No such item"
	default:
		return "Purchase failed"
	}
}
