package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txManagerStub прозрачно выполняет fn без настоящей транзакции.
type txManagerStub struct {
	calls int
}

func (s *txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type orderRepoMock struct {
	createCalls       int
	updateStatusCalls int
	existingByToken   *domain.Order
	createErr         error
	updateStatusErr   error

	lastCreated      *domain.Order
	lastStatus       domain.OrderStatus
	lastStatusOrder  int64
	lastLookupToken  string
	tokenLookupCalls int
}

func (m *orderRepoMock) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}

	created := *order
	created.ID = 77
	m.lastCreated = &created
	return &created, nil
}

func (m *orderRepoMock) GetBySubmissionToken(ctx context.Context, token string) (*domain.Order, error) {
	m.tokenLookupCalls++
	m.lastLookupToken = token
	return m.existingByToken, nil
}

func (m *orderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	m.updateStatusCalls++
	m.lastStatusOrder = orderID
	m.lastStatus = status
	return m.updateStatusErr
}

type itemRepoMock struct {
	calls       int
	err         error
	lastOrderID int64
	lastItems   []domain.OrderItem
}

func (m *itemRepoMock) CreateBatch(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.lastOrderID = orderID
	m.lastItems = items
	return nil
}

type outboxRepoMock struct {
	calls     int
	err       error
	lastEvent *OutboxEvent
}

func (m *outboxRepoMock) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	m.lastEvent = event
	return event, nil
}

func (m *outboxRepoMock) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	panic("not used")
}

func (m *outboxRepoMock) MarkAsProcessed(ctx context.Context, id int64) error {
	panic("not used")
}

type cacheRepoMock struct {
	invalidateCalls int
	invalidateKeys  []string
	invalidateErr   error
}

func (m *cacheRepoMock) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	panic("not used")
}
func (m *cacheRepoMock) SetProducts(ctx context.Context, products []ProductInfo) error {
	panic("not used")
}
func (m *cacheRepoMock) DeleteProducts(ctx context.Context, ids []int64) error { panic("not used") }
func (m *cacheRepoMock) GetReport(ctx context.Context, key string) ([]byte, error) {
	panic("not used")
}
func (m *cacheRepoMock) SetReport(ctx context.Context, key string, data []byte) error {
	panic("not used")
}
func (m *cacheRepoMock) InvalidateReports(ctx context.Context, keys ...string) error {
	m.invalidateCalls++
	m.invalidateKeys = keys
	return m.invalidateErr
}

type cartStoreStub struct {
	lines   []domain.CartLineItem
	dropped []string
}

func (s *cartStoreStub) Snapshot(sessionID string) []domain.CartLineItem {
	return s.lines
}

func (s *cartStoreStub) Drop(sessionID string) {
	s.dropped = append(s.dropped, sessionID)
}

type orderFixture struct {
	uc     *OrderUseCase
	orders *orderRepoMock
	items  *itemRepoMock
	outbox *outboxRepoMock
	cache  *cacheRepoMock
	carts  *cartStoreStub
	tx     *txManagerStub
}

func newOrderFixture(lines []domain.CartLineItem) *orderFixture {
	f := &orderFixture{
		orders: &orderRepoMock{},
		items:  &itemRepoMock{},
		outbox: &outboxRepoMock{},
		cache:  &cacheRepoMock{},
		carts:  &cartStoreStub{lines: lines},
		tx:     &txManagerStub{},
	}
	f.uc = NewOrderUC(f.orders, f.items, f.outbox, f.carts, f.tx, f.cache, nopLogger{})
	return f
}

func cartLines() []domain.CartLineItem {
	return []domain.CartLineItem{
		{ProductID: 1, ProductName: "Pastel", Price: 1000, Quantity: 2},
		{ProductID: 2, ProductName: "Coxinha", Price: 550, Quantity: 1},
	}
}

func TestSubmitOrderSuccess(t *testing.T) {
	f := newOrderFixture(cartLines())

	res, err := f.uc.SubmitOrder(context.Background(), &SubmitOrderReq{
		SessionID:       "sess-1",
		CustomerName:    "Maria",
		PaymentMethod:   "pix",
		SubmissionToken: "tok-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), res.OrderID)
	assert.Equal(t, int64(2550), res.TotalAmount)
	assert.False(t, res.Resubmitted)

	require.NotNil(t, f.orders.lastCreated)
	assert.Equal(t, domain.OrderStatusCompleted, f.orders.lastCreated.Status)
	assert.Equal(t, domain.PaymentPix, f.orders.lastCreated.PaymentMethod)
	assert.Equal(t, "tok-1", f.orders.lastCreated.SubmissionToken)
	assert.Equal(t, "Maria", f.orders.lastCreated.CustomerName)

	// Позиции замораживаются с именем и ценой на момент продажи
	assert.Equal(t, int64(77), f.items.lastOrderID)
	require.Len(t, f.items.lastItems, 2)
	assert.Equal(t, int64(2000), f.items.lastItems[0].Subtotal)
	assert.Equal(t, int64(550), f.items.lastItems[1].Subtotal)

	// Событие продажи уходит в outbox той же транзакцией
	require.NotNil(t, f.outbox.lastEvent)
	assert.Equal(t, EventOrderCreated, f.outbox.lastEvent.EventType)
	assert.Equal(t, int64(77), f.outbox.lastEvent.OrderID)

	var payload OrderCreatedPayload
	require.NoError(t, json.Unmarshal(f.outbox.lastEvent.Payload, &payload))
	assert.Equal(t, int64(2550), payload.TotalAmount)
	assert.Len(t, payload.Items, 2)

	// Корзина очищается, кэш отчётов сбрасывается
	assert.Equal(t, []string{"sess-1"}, f.carts.dropped)
	assert.Equal(t, 1, f.cache.invalidateCalls)
	assert.ElementsMatch(t, AllReportKeys(), f.cache.invalidateKeys)
}

func TestSubmitOrderGeneratesTokenWhenMissing(t *testing.T) {
	f := newOrderFixture(cartLines())

	_, err := f.uc.SubmitOrder(context.Background(), &SubmitOrderReq{
		SessionID:     "sess-1",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	require.NotNil(t, f.orders.lastCreated)
	assert.NotEmpty(t, f.orders.lastCreated.SubmissionToken)
}

func TestSubmitOrderPaymentMethodRequired(t *testing.T) {
	f := newOrderFixture(cartLines())

	_, err := f.uc.SubmitOrder(context.Background(), &SubmitOrderReq{
		SessionID:     "sess-1",
		PaymentMethod: "   ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrPaymentMethodRequired)

	// Ни одного обращения к базе, корзина не тронута
	assert.Equal(t, 0, f.tx.calls)
	assert.Equal(t, 0, f.orders.createCalls)
	assert.Empty(t, f.carts.dropped)
}

func TestSubmitOrderInvalidPaymentMethod(t *testing.T) {
	f := newOrderFixture(cartLines())

	_, err := f.uc.SubmitOrder(context.Background(), &SubmitOrderReq{
		SessionID:     "sess-1",
		PaymentMethod: "bitcoin",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrInvalidPaymentMethod)
	assert.Equal(t, 0, f.tx.calls)
	assert.Empty(t, f.carts.dropped)
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(nil)

	_, err := f.uc.SubmitOrder(context.Background(), &SubmitOrderReq{
		SessionID:     "sess-1",
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrEmptyCart)
	assert.Equal(t, 0, f.tx.calls)
	assert.Equal(t, 0, f.orders.createCalls)
}

func TestSubmitOrderItemInsertFailureKeepsCart(t *testing.T) {
	f := newOrderFixture(cartLines())
	f.items.err = errors.New("insert failed")

	_, err := f.uc.SubmitOrder(context.Background(), &SubmitOrderReq{
		SessionID:     "sess-1",
		PaymentMethod: "debit",
	})
	require.Error(t, err)

	// Корзина остаётся нетронутой, кэш отчётов не сбрасывается
	assert.Empty(t, f.carts.dropped)
	assert.Equal(t, 0, f.cache.invalidateCalls)
	assert.Equal(t, 0, f.outbox.calls)
}

func TestSubmitOrderResubmissionReturnsExistingOrder(t *testing.T) {
	f := newOrderFixture(cartLines())
	f.orders.existingByToken = &domain.Order{
		ID:              55,
		TotalAmount:     2550,
		Status:          domain.OrderStatusCompleted,
		PaymentMethod:   domain.PaymentPix,
		SubmissionToken: "tok-1",
	}

	res, err := f.uc.SubmitOrder(context.Background(), &SubmitOrderReq{
		SessionID:       "sess-1",
		PaymentMethod:   "pix",
		SubmissionToken: "tok-1",
	})
	require.NoError(t, err)

	assert.True(t, res.Resubmitted)
	assert.Equal(t, int64(55), res.OrderID)
	assert.Equal(t, int64(2550), res.TotalAmount)

	// Повтор не создаёт ни продажи, ни позиций, ни событий
	assert.Equal(t, 0, f.orders.createCalls)
	assert.Equal(t, 0, f.items.calls)
	assert.Equal(t, 0, f.outbox.calls)

	// Кэш отчётов не трогаем: новых данных нет, но корзина очищается
	assert.Equal(t, 0, f.cache.invalidateCalls)
	assert.Equal(t, []string{"sess-1"}, f.carts.dropped)
}

func TestSubmitOrderInvalidationFailureDoesNotFailSubmit(t *testing.T) {
	f := newOrderFixture(cartLines())
	f.cache.invalidateErr = errors.New("redis down")

	res, err := f.uc.SubmitOrder(context.Background(), &SubmitOrderReq{
		SessionID:     "sess-1",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2550), res.TotalAmount)
	assert.Equal(t, []string{"sess-1"}, f.carts.dropped)
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newOrderFixture(nil)

	err := f.uc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusReq{
		OrderID: 77,
		Status:  "cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), f.orders.lastStatusOrder)
	assert.Equal(t, domain.OrderStatusCancelled, f.orders.lastStatus)

	require.NotNil(t, f.outbox.lastEvent)
	assert.Equal(t, EventOrderStatusChanged, f.outbox.lastEvent.EventType)

	var payload OrderStatusChangedPayload
	require.NoError(t, json.Unmarshal(f.outbox.lastEvent.Payload, &payload))
	assert.Equal(t, "cancelled", payload.NewStatus)

	assert.Equal(t, 1, f.cache.invalidateCalls)
}

func TestUpdateOrderStatusInvalid(t *testing.T) {
	f := newOrderFixture(nil)

	err := f.uc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusReq{
		OrderID: 77,
		Status:  "shipped",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrInvalidOrderStatus)
	assert.Equal(t, 0, f.tx.calls)
	assert.Equal(t, 0, f.orders.updateStatusCalls)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	f := newOrderFixture(nil)
	f.orders.updateStatusErr = e.ErrOrderNotFound

	err := f.uc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusReq{
		OrderID: 404,
		Status:  "completed",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
	assert.Equal(t, 0, f.cache.invalidateCalls)
}
