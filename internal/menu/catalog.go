package menu

// Item is a single menu entry. The ordering core treats it as read-only
// input: in production it comes from the restaurant backend, here the
// catalog ships seeded so the demo runs without one.
type Item struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	Available      bool    `json:"available"`
}

// Catalog is an immutable in-memory menu lookup.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		items: make([]Item, len(items)),
		byID:  make(map[string]Item, len(items)),
	}
	copy(c.items, items)
	for _, it := range items {
		c.byID[it.ID] = it
	}
	return c
}

// Get returns the item and whether it exists.
func (c *Catalog) Get(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// List returns the catalog in its seeded order.
func (c *Catalog) List() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Seed returns the demo catalog used by cmd/ and the tests.
func Seed() []Item {
	return []Item{
		{
			ID: "m1", Name: "Margherita Pizza", Category: "pizza",
			Description: "Tomato, mozzarella, basil",
			Price:       12.99, RestaurantID: "r1", RestaurantName: "Pizza Palace",
			ImageURL: "https://img.oneeats.dev/m1.jpg", Available: true,
		},
		{
			ID: "m2", Name: "Quattro Formaggi", Category: "pizza",
			Description: "Four cheese blend",
			Price:       15.50, RestaurantID: "r1", RestaurantName: "Pizza Palace",
			ImageURL: "https://img.oneeats.dev/m2.jpg", Available: true,
		},
		{
			ID: "m3", Name: "Tiramisu", Category: "dessert",
			Price: 6.00, RestaurantID: "r1", RestaurantName: "Pizza Palace",
			Available: true,
		},
		{
			ID: "m4", Name: "Classic Smash Burger", Category: "burger",
			Description: "Double patty, cheddar, pickles",
			Price:       11.20, RestaurantID: "r2", RestaurantName: "Burger Barn",
			ImageURL: "https://img.oneeats.dev/m4.jpg", Available: true,
		},
		{
			ID: "m5", Name: "Sweet Potato Fries", Category: "side",
			Price: 4.80, RestaurantID: "r2", RestaurantName: "Burger Barn",
			Available: true,
		},
	}
}
