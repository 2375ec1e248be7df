package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// productUCStub отдаёт заранее заданный набор товаров.
type productUCStub struct {
	products map[int64]ProductInfo
	err      error
}

func (s *productUCStub) RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*RegisterProductRes, error) {
	panic("not used")
}

func (s *productUCStub) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	if s.err != nil {
		return nil, s.err
	}

	found := make([]ProductInfo, 0)
	notFound := make([]int64, 0)
	for _, id := range req.IDs {
		if info, ok := s.products[id]; ok {
			found = append(found, info)
		} else {
			notFound = append(notFound, id)
		}
	}

	return NewGetProductsRes(found, notFound), nil
}

func newCartUCWithProducts(t *testing.T) *CartUseCase {
	t.Helper()

	return NewCartUC(&productUCStub{
		products: map[int64]ProductInfo{
			1: NewProductInfo(1, "Coxinha", "Salgados", 550, ""),
			2: NewProductInfo(2, "Pastel", "Salgados", 800, ""),
			3: NewProductInfo(3, "Suco", "Bebidas", 700, ""),
		},
	}, nopLogger{})
}

func TestCartUCAddToCart(t *testing.T) {
	uc := newCartUCWithProducts(t)
	ctx := context.Background()

	res, err := uc.AddToCart(ctx, "sess-1", 1)
	require.NoError(t, err)
	require.NotNil(t, res.Notification)
	assert.Equal(t, NotificationAdded, res.Notification.Kind)
	assert.Equal(t, int64(550), res.Total)

	res, err = uc.AddToCart(ctx, "sess-1", 1)
	require.NoError(t, err)
	require.NotNil(t, res.Notification)
	assert.Equal(t, NotificationIncremented, res.Notification.Kind)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(2), res.Items[0].Quantity)
	assert.Equal(t, int64(1100), res.Total)
}

func TestCartUCAddUnknownProduct(t *testing.T) {
	uc := newCartUCWithProducts(t)

	_, err := uc.AddToCart(context.Background(), "sess-1", 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	// Ошибка не оставляет следов в корзине
	res, err := uc.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestCartUCAddProductLookupFailure(t *testing.T) {
	lookupErr := errors.New("db down")
	uc := NewCartUC(&productUCStub{err: lookupErr}, nopLogger{})

	_, err := uc.AddToCart(context.Background(), "sess-1", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
}

func TestCartUCSessionsAreIsolated(t *testing.T) {
	uc := newCartUCWithProducts(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "sess-a", 1)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "sess-b", 2)
	require.NoError(t, err)

	resA, err := uc.GetCart(ctx, "sess-a")
	require.NoError(t, err)
	require.Len(t, resA.Items, 1)
	assert.Equal(t, int64(1), resA.Items[0].ProductID)

	resB, err := uc.GetCart(ctx, "sess-b")
	require.NoError(t, err)
	require.Len(t, resB.Items, 1)
	assert.Equal(t, int64(2), resB.Items[0].ProductID)
}

func TestCartUCGetCartHasNoNotification(t *testing.T) {
	uc := newCartUCWithProducts(t)

	res, err := uc.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Nil(t, res.Notification)
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(0), res.Total)
}

func TestCartUCRemoveFromCart(t *testing.T) {
	uc := newCartUCWithProducts(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "sess-1", 1)
	require.NoError(t, err)

	res, err := uc.RemoveFromCart(ctx, "sess-1", 1)
	require.NoError(t, err)
	require.NotNil(t, res.Notification)
	assert.Equal(t, NotificationRemoved, res.Notification.Kind)
	assert.Empty(t, res.Items)

	// Удаление отсутствующей позиции молчаливо, без уведомления
	res, err = uc.RemoveFromCart(ctx, "sess-1", 1)
	require.NoError(t, err)
	assert.Nil(t, res.Notification)
}

func TestCartUCDecreaseQuantityNotifications(t *testing.T) {
	uc := newCartUCWithProducts(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "sess-1", 1)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "sess-1", 1)
	require.NoError(t, err)

	// 2 -> 1: позиция остаётся, уведомления нет
	res, err := uc.DecreaseQuantity(ctx, "sess-1", 1)
	require.NoError(t, err)
	assert.Nil(t, res.Notification)
	require.Len(t, res.Items, 1)

	// 1 -> 0: позиция удаляется с уведомлением
	res, err = uc.DecreaseQuantity(ctx, "sess-1", 1)
	require.NoError(t, err)
	require.NotNil(t, res.Notification)
	assert.Equal(t, NotificationRemoved, res.Notification.Kind)
	assert.Empty(t, res.Items)
}

func TestCartUCClearCartAlwaysNotifies(t *testing.T) {
	uc := newCartUCWithProducts(t)
	ctx := context.Background()

	// Очистка пустой корзины всё равно даёт ровно одно уведомление
	res, err := uc.ClearCart(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, res.Notification)
	assert.Equal(t, NotificationCleared, res.Notification.Kind)

	_, err = uc.AddToCart(ctx, "sess-1", 1)
	require.NoError(t, err)

	res, err = uc.ClearCart(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, res.Notification)
	assert.Equal(t, NotificationCleared, res.Notification.Kind)
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(0), res.Total)
}

func TestCartUCSnapshotAndDrop(t *testing.T) {
	uc := newCartUCWithProducts(t)
	ctx := context.Background()

	assert.Nil(t, uc.Snapshot("sess-1"))

	_, err := uc.AddToCart(ctx, "sess-1", 1)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "sess-1", 2)
	require.NoError(t, err)

	lines := uc.Snapshot("sess-1")
	require.Len(t, lines, 2)

	uc.Drop("sess-1")

	res, err := uc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	// Drop не отправляет уведомлений, корзина просто исчезает
	assert.Nil(t, res.Notification)
}
