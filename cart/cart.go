// Package cart is the client-held shopping cart: a line-item collection keyed
// by (product, size, color) with merge-on-add semantics and a derived
// subtotal. The server never sees it; state lives wherever the embedding
// client persists it.
package cart

import (
	"github.com/shopspring/decimal"
)

// Item is one cart line. Name, Price and Image are snapshots taken when the
// item was added; re-adding the same key refreshes them.
type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

func (i Item) sameKey(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// Cart holds at most one line per (productId, size, color) key, in first
// insertion order.
type Cart struct {
	Items []Item `json:"items"`
}

// AddItem merges into an existing line with the same key by summing
// quantities; every other field is taken from the new item, so a stale
// name or price snapshot heals on re-add. New keys append.
func (c *Cart) AddItem(item Item) {
	for i := range c.Items {
		if c.Items[i].sameKey(item.ProductID, item.Size, item.Color) {
			item.Quantity += c.Items[i].Quantity
			c.Items[i] = item
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem drops the matching line; removing an absent key is a no-op.
func (c *Cart) RemoveItem(productID, size, color string) {
	for i := range c.Items {
		if c.Items[i].sameKey(productID, size, color) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the matching line's quantity verbatim. Clamping to
// stock or to a minimum of 1 is the caller's job.
func (c *Cart) UpdateQuantity(productID, size, color string, quantity int) {
	for i := range c.Items {
		if c.Items[i].sameKey(productID, size, color) {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal is the sum of price x quantity over all lines, computed on demand.
// Lines whose price snapshot does not parse contribute nothing.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
