package domain

import (
	"errors"
	"time"
)

// MaxQuantity caps a single cart line.
const MaxQuantity = 99

var ErrInvalidQuantity = errors.New("quantity must be between 1 and 99")

// LineKey identifies a cart line: the same product in a different size or
// colour is a different line.
type LineKey struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// CartItem snapshots the product at add time; later catalog changes do not
// reach it.
type CartItem struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

func (i CartItem) Key() LineKey {
	return LineKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

type Cart struct {
	ID        string     `json:"id"`
	ShopperID string     `json:"shopperId"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Add merges item into the line with the same key, or appends a new line.
func (c *Cart) Add(item CartItem, quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	if i := c.index(item.Key()); i >= 0 {
		if c.Items[i].Quantity > MaxQuantity-quantity {
			return ErrInvalidQuantity
		}
		c.Items[i].Quantity += quantity
		return nil
	}
	item.Quantity = quantity
	c.Items = append(c.Items, item)
	return nil
}

// SetQuantity sets the line's quantity exactly; quantity <= 0 removes it.
// It reports whether a line with that key existed.
func (c *Cart) SetQuantity(key LineKey, quantity int) (bool, error) {
	if quantity > MaxQuantity {
		return false, ErrInvalidQuantity
	}
	i := c.index(key)
	if i < 0 {
		return false, nil
	}
	if quantity <= 0 {
		c.removeAt(i)
		return true, nil
	}
	c.Items[i].Quantity = quantity
	return true, nil
}

// Remove deletes the line if present.
func (c *Cart) Remove(key LineKey) bool {
	i := c.index(key)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.LineTotal()
	}
	return total
}

func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot returns a copy of the lines safe to hand to other components.
func (c Cart) Snapshot() []CartItem {
	return append([]CartItem(nil), c.Items...)
}

func (c Cart) index(key LineKey) int {
	for i, it := range c.Items {
		if it.Key() == key {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	if len(c.Items) == 0 {
		c.Items = nil
	}
}
