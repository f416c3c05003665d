package cart

import (
	"sync"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/menu"
)

// Line is one distinct menu item in a cart, with the fields denormalized
// at add time so later menu edits don't ripple into open carts.
type Line struct {
	ItemID         string  `json:"itemId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	Quantity       int     `json:"quantity"`
}

// Cart aggregates the item selection for the order currently being
// composed. There is at most one line per menu item id; repeated adds
// bump the quantity. All operations are total: unknown ids are no-ops,
// never errors.
type Cart struct {
	mu    sync.Mutex
	lines []Line         // insertion order
	index map[string]int // item id -> position in lines
}

func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// AddItem merges the item into the cart: +1 on an existing line, or a new
// line with quantity 1.
func (c *Cart) AddItem(it menu.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[it.ID]; ok {
		c.lines[i].Quantity++
		return
	}
	c.index[it.ID] = len(c.lines)
	c.lines = append(c.lines, Line{
		ItemID:         it.ID,
		Name:           it.Name,
		Price:          it.Price,
		ImageURL:       it.ImageURL,
		RestaurantID:   it.RestaurantID,
		RestaurantName: it.RestaurantName,
		Quantity:       1,
	})
}

// RemoveItem decrements the line's quantity, deleting the line when it
// would reach zero. Unknown ids are ignored.
func (c *Cart) RemoveItem(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[itemID]
	if !ok {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, itemID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ItemID] = j
	}
}

// ItemQuantity returns the line's quantity, or 0 if the item is absent.
func (c *Cart) ItemQuantity(itemID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[itemID]; ok {
		return c.lines[i].Quantity
	}
	return 0
}

// ItemCount is the sum of all quantities, not the number of distinct lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total recomputes price*quantity over the current lines on every call,
// so it can never go stale relative to the line set.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.index = make(map[string]int)
}

// Lines returns a copy of the current lines in insertion order. Callers
// own the returned slice; mutating it never touches the live cart, and
// later cart changes never touch slices handed out earlier.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
