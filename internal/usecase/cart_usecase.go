package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
)

// CartUseCase хранит корзины активных сессий терминалов и реализует
// операции над ними. Корзины живут только в памяти процесса: сессия
// завершилась — корзина исчезла.
type CartUseCase struct {
	mu       sync.RWMutex
	carts    map[string]*domain.Cart
	products ProductUC
	logger   logger.Logger
}

func NewCartUC(products ProductUC, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		carts:    make(map[string]*domain.Cart),
		products: products,
		logger:   logger,
	}
}

// GetCart возвращает текущее состояние корзины сессии без уведомления.
func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartRes, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cart, ok := c.carts[sessionID]
	if !ok {
		return newCartRes(nil, 0, nil), nil
	}

	return newCartRes(cart.Items(), cart.Total(), nil), nil
}

// AddToCart кладёт снимок товара в корзину сессии.
// Если позиция уже есть, её количество увеличивается на 1.
func (c *CartUseCase) AddToCart(ctx context.Context, sessionID string, productID int64) (*CartRes, error) {
	const op = "CartUseCase.AddToCart"

	res, err := c.products.GetProductsInfo(ctx, NewGetProductsReq([]int64{productID}))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(res.Products) == 0 {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}
	info := res.Products[0]

	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.cart(sessionID)

	var notification *Notification
	if cart.Add(info.ID, info.Name, info.Price) {
		notification = NewNotification(NotificationAdded, fmt.Sprintf("%s added to cart", info.Name))
	} else {
		notification = NewNotification(NotificationIncremented, fmt.Sprintf("%s quantity increased", info.Name))
	}

	return newCartRes(cart.Items(), cart.Total(), notification), nil
}

// RemoveFromCart удаляет позицию товара из корзины.
// Если позиции нет, операция молча ничего не делает и уведомление не отправляется.
func (c *CartUseCase) RemoveFromCart(ctx context.Context, sessionID string, productID int64) (*CartRes, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.cart(sessionID)

	var notification *Notification
	if name, ok := cart.Remove(productID); ok {
		notification = NewNotification(NotificationRemoved, fmt.Sprintf("%s removed from cart", name))
	}

	return newCartRes(cart.Items(), cart.Total(), notification), nil
}

// IncreaseQuantity увеличивает количество позиции на 1. Нет позиции — нет эффекта.
func (c *CartUseCase) IncreaseQuantity(ctx context.Context, sessionID string, productID int64) (*CartRes, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.cart(sessionID)
	cart.IncreaseQuantity(productID)

	return newCartRes(cart.Items(), cart.Total(), nil), nil
}

// DecreaseQuantity уменьшает количество позиции на 1.
// Позиция с количеством 1 удаляется целиком с уведомлением об удалении.
func (c *CartUseCase) DecreaseQuantity(ctx context.Context, sessionID string, productID int64) (*CartRes, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.cart(sessionID)

	var notification *Notification
	if name, removed, ok := cart.DecreaseQuantity(productID); ok && removed {
		notification = NewNotification(NotificationRemoved, fmt.Sprintf("%s removed from cart", name))
	}

	return newCartRes(cart.Items(), cart.Total(), notification), nil
}

// ClearCart безусловно опустошает корзину и всегда отправляет ровно одно уведомление.
func (c *CartUseCase) ClearCart(ctx context.Context, sessionID string) (*CartRes, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.cart(sessionID)
	cart.Clear()

	notification := NewNotification(NotificationCleared, "cart cleared")

	return newCartRes(cart.Items(), cart.Total(), notification), nil
}

// Snapshot возвращает копию позиций корзины сессии для оформления продажи.
func (c *CartUseCase) Snapshot(sessionID string) []domain.CartLineItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cart, ok := c.carts[sessionID]
	if !ok {
		return nil
	}

	return cart.Items()
}

// Drop молча удаляет корзину сессии. Используется после успешного
// оформления продажи, когда уведомление об очистке не нужно.
func (c *CartUseCase) Drop(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.carts, sessionID)
}

// cart возвращает корзину сессии, создавая её при первом обращении.
// Вызывающий обязан держать c.mu.
func (c *CartUseCase) cart(sessionID string) *domain.Cart {
	cart, ok := c.carts[sessionID]
	if !ok {
		cart = domain.NewCart()
		c.carts[sessionID] = cart
	}

	return cart
}

func newCartRes(items []domain.CartLineItem, total int64, notification *Notification) *CartRes {
	resItems := make([]CartItemRes, 0, len(items))
	for _, item := range items {
		resItems = append(resItems, CartItemRes{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		})
	}

	return &CartRes{
		Items:        resItems,
		Total:        total,
		Notification: notification,
	}
}
