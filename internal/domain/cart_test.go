package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd(t *testing.T) {
	cart := NewCart()

	created := cart.Add(1, "Coxinha", 550)
	assert.True(t, created)

	created = cart.Add(1, "Coxinha", 550)
	assert.False(t, created)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(1100), cart.Total())
}

func TestCartAddKeepsInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(3, "Suco", 700)
	cart.Add(1, "Coxinha", 550)
	cart.Add(3, "Suco", 700)
	cart.Add(2, "Pastel", 800)

	items := cart.Items()
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ProductID)
	assert.Equal(t, int64(1), items[1].ProductID)
	assert.Equal(t, int64(2), items[2].ProductID)
}

func TestCartAddSnapshotIgnoresLaterPriceChanges(t *testing.T) {
	cart := NewCart()
	cart.Add(1, "Coxinha", 550)

	// Повторное добавление того же товара с другой ценой не меняет снимок
	cart.Add(1, "Coxinha", 9999)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(550), items[0].Price)
	assert.Equal(t, int64(1100), cart.Total())
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(1, "Coxinha", 550)
	cart.Add(1, "Coxinha", 550)
	cart.Add(2, "Pastel", 800)

	name, ok := cart.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "Coxinha", name)

	// Позиция удаляется целиком, независимо от количества
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)

	_, ok = cart.Remove(42)
	assert.False(t, ok)
}

func TestCartDecreaseQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(1, "Coxinha", 550)
	cart.Add(1, "Coxinha", 550)

	name, removed, ok := cart.DecreaseQuantity(1)
	require.True(t, ok)
	assert.False(t, removed)
	assert.Equal(t, "Coxinha", name)
	assert.Equal(t, int64(550), cart.Total())

	// Количество 1 -> позиция исчезает, нулевых позиций не бывает
	name, removed, ok = cart.DecreaseQuantity(1)
	require.True(t, ok)
	assert.True(t, removed)
	assert.Equal(t, "Coxinha", name)
	assert.True(t, cart.IsEmpty())

	_, _, ok = cart.DecreaseQuantity(1)
	assert.False(t, ok)
}

func TestCartIncreaseQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(1, "Coxinha", 550)

	assert.True(t, cart.IncreaseQuantity(1))
	assert.False(t, cart.IncreaseQuantity(42))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(1, "Coxinha", 550)
	cart.Add(2, "Pastel", 800)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())

	// Очистка пустой корзины безопасна
	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartTotalEqualsSumOfSubtotals(t *testing.T) {
	cart := NewCart()
	cart.Add(1, "Coxinha", 550)
	cart.Add(2, "Pastel", 800)
	cart.Add(2, "Pastel", 800)
	cart.Add(3, "Suco", 700)

	var want int64
	for _, item := range cart.Items() {
		want += item.Subtotal()
	}

	assert.Equal(t, want, cart.Total())
	assert.Equal(t, int64(2850), cart.Total())
}

func TestCartItemsReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.Add(1, "Coxinha", 550)

	items := cart.Items()
	items[0].Quantity = 100

	assert.Equal(t, int64(550), cart.Total())
}
