package domain

// CartLineItem связывает снимок товара с количеством в корзине.
// Снимок фиксируется в момент добавления: последующие правки товара
// в каталоге на корзину не влияют.
type CartLineItem struct {
	ProductID   int64
	ProductName string
	Price       int64 // Цена за единицу в сентаво
	Quantity    int64
}

// Subtotal возвращает стоимость позиции (цена * количество).
func (i CartLineItem) Subtotal() int64 {
	return i.Price * i.Quantity
}

// Cart — корзина одной сессии терминала.
// Позиции хранятся в порядке первого добавления, не более одной позиции
// на товар. Инвариант: Quantity каждой позиции всегда >= 1.
type Cart struct {
	items []CartLineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add добавляет снимок товара в корзину.
// Если позиция для товара уже есть, увеличивает её количество на 1.
// Возвращает true, если была создана новая позиция.
func (c *Cart) Add(productID int64, name string, price int64) bool {
	if idx := c.find(productID); idx >= 0 {
		c.items[idx].Quantity++
		return false
	}

	c.items = append(c.items, CartLineItem{
		ProductID:   productID,
		ProductName: name,
		Price:       price,
		Quantity:    1,
	})

	return true
}

// Remove удаляет позицию товара из корзины.
// Возвращает имя удалённого товара и true, если позиция была найдена.
func (c *Cart) Remove(productID int64) (string, bool) {
	idx := c.find(productID)
	if idx < 0 {
		return "", false
	}

	name := c.items[idx].ProductName
	c.items = append(c.items[:idx], c.items[idx+1:]...)

	return name, true
}

// IncreaseQuantity увеличивает количество позиции на 1.
// Возвращает false, если позиции для товара нет.
func (c *Cart) IncreaseQuantity(productID int64) bool {
	idx := c.find(productID)
	if idx < 0 {
		return false
	}

	c.items[idx].Quantity++
	return true
}

// DecreaseQuantity уменьшает количество позиции на 1.
// Если количество опускается до нуля, позиция удаляется целиком:
// позиций с нулевым или отрицательным количеством в корзине не бывает.
// removed=true означает, что позиция была удалена; ok=false — позиции не было.
func (c *Cart) DecreaseQuantity(productID int64) (name string, removed bool, ok bool) {
	idx := c.find(productID)
	if idx < 0 {
		return "", false, false
	}

	c.items[idx].Quantity--
	if c.items[idx].Quantity <= 0 {
		name = c.items[idx].ProductName
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		return name, true, true
	}

	return c.items[idx].ProductName, false, true
}

// Clear безусловно опустошает корзину.
func (c *Cart) Clear() {
	c.items = nil
}

// Total возвращает сумму корзины, пересчитывая её при каждом вызове.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Subtotal()
	}

	return total
}

// Items возвращает копию позиций корзины в порядке добавления.
func (c *Cart) Items() []CartLineItem {
	items := make([]CartLineItem, len(c.items))
	copy(items, c.items)

	return items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) find(productID int64) int {
	for i, item := range c.items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}
