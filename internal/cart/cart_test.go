package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/menu"
)

var (
	pizza = menu.Item{
		ID: "m1", Name: "Margherita Pizza", Price: 12.99,
		RestaurantID: "r1", RestaurantName: "Pizza Palace",
		ImageURL: "https://img.oneeats.dev/m1.jpg",
	}
	dessert = menu.Item{
		ID: "m3", Name: "Tiramisu", Price: 6.00,
		RestaurantID: "r1", RestaurantName: "Pizza Palace",
	}
)

func TestAddItem_MergesDuplicates(t *testing.T) {
	c := New()

	c.AddItem(pizza)
	c.AddItem(pizza)
	c.AddItem(pizza)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "m1", lines[0].ItemID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, c.ItemQuantity("m1"))
}

func TestAddItem_DenormalizesFields(t *testing.T) {
	c := New()
	c.AddItem(pizza)

	l := c.Lines()[0]
	assert.Equal(t, pizza.Name, l.Name)
	assert.Equal(t, pizza.Price, l.Price)
	assert.Equal(t, pizza.ImageURL, l.ImageURL)
	assert.Equal(t, pizza.RestaurantID, l.RestaurantID)
	assert.Equal(t, pizza.RestaurantName, l.RestaurantName)
}

func TestRemoveItem_DecrementsThenDeletes(t *testing.T) {
	c := New()
	c.AddItem(pizza)
	c.AddItem(pizza)

	c.RemoveItem("m1")
	assert.Equal(t, 1, c.ItemQuantity("m1"))

	c.RemoveItem("m1")
	assert.Equal(t, 0, c.ItemQuantity("m1"))
	assert.Empty(t, c.Lines())
}

func TestRemoveItem_PastZeroNeverGoesNegative(t *testing.T) {
	c := New()
	c.AddItem(pizza)

	c.RemoveItem("m1")
	c.RemoveItem("m1")
	c.RemoveItem("m1")

	assert.Equal(t, 0, c.ItemQuantity("m1"))
	assert.Empty(t, c.Lines())
}

func TestRemoveItem_UnknownIsNoOp(t *testing.T) {
	c := New()

	c.RemoveItem("nonexistent")

	assert.Equal(t, 0, c.ItemCount())
	assert.Empty(t, c.Lines())
}

func TestItemCount_SumsQuantities(t *testing.T) {
	c := New()
	c.AddItem(pizza)
	c.AddItem(pizza)
	c.AddItem(dessert)

	// three units across two distinct lines
	assert.Equal(t, 3, c.ItemCount())
	assert.Len(t, c.Lines(), 2)
}

func TestTotal_TracksEveryMutation(t *testing.T) {
	c := New()
	assert.Zero(t, c.Total())

	c.AddItem(pizza)
	c.AddItem(pizza)
	assert.InDelta(t, 25.98, c.Total(), 1e-9)

	c.AddItem(dessert)
	assert.InDelta(t, 31.98, c.Total(), 1e-9)

	c.RemoveItem("m1")
	assert.InDelta(t, 18.99, c.Total(), 1e-9)

	c.Clear()
	assert.Zero(t, c.Total())
}

func TestClear_EmptiesUnconditionally(t *testing.T) {
	c := New()
	c.AddItem(pizza)
	c.AddItem(dessert)

	c.Clear()

	assert.Zero(t, c.ItemCount())
	assert.Empty(t, c.Lines())

	// the cart stays usable after clearing
	c.AddItem(dessert)
	assert.Equal(t, 1, c.ItemQuantity("m3"))
}

func TestLines_PreservesInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(pizza)
	c.AddItem(dessert)
	c.AddItem(pizza)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "m1", lines[0].ItemID)
	assert.Equal(t, "m3", lines[1].ItemID)
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(pizza)

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.ItemQuantity("m1"))
}

func TestStore_OneCartPerCustomer(t *testing.T) {
	s := NewStore()

	s.Get("alice").AddItem(pizza)

	assert.Equal(t, 1, s.Get("alice").ItemCount())
	assert.Zero(t, s.Get("bob").ItemCount())
	assert.Same(t, s.Get("alice"), s.Get("alice"))
}
