// Package cart implements the session-scoped shopping cart for the boiler
// shop. Carts live only in memory for the duration of a browsing session;
// a successful order clears them.
package cart

import "sync"

type Item struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Image                string  `json:"image"`
	Price                float64 `json:"price"`
	Quantity             int     `json:"quantity"`
	InstallationIncluded bool    `json:"installationIncluded"`
}

// LineTotal is the item's contribution to the cart total.
func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is safe for concurrent use: two browser tabs sharing one session
// token can hit the API at the same time.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// AddItem appends the product with quantity 1, or bumps the quantity when a
// line with the same id already exists.
func (c *Cart) AddItem(product Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx := range c.items {
		if c.items[idx].ID == product.ID {
			c.items[idx].Quantity++
			return
		}
	}
	product.Quantity = 1
	c.items = append(c.items, product)
}

// RemoveItem deletes the line with the given id. Unknown ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line entirely, so no line ever sits in the cart below 1.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.removeLocked(id)
		return
	}
	for idx := range c.items {
		if c.items[idx].ID == id {
			c.items[idx].Quantity = quantity
			return
		}
	}
}

func (c *Cart) removeLocked(id string) {
	for idx := range c.items {
		if c.items[idx].ID == id {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of line quantities. Recomputed on every call.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines. Recomputed
// on every call, never cached.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}
