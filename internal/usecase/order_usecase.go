package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
	"github.com/google/uuid"
)

// OrderUseCase превращает корзину сессии в сохранённую продажу.
// Заголовок, позиции и outbox-событие пишутся одной транзакцией: либо
// продажа видна целиком, либо не видна вовсе.
type OrderUseCase struct {
	orderRepo  OrderRepository
	itemRepo   OrderItemRepository
	outboxRepo OutboxRepository
	carts      CartStore
	txManager  TxManager
	cacheRepo  CacheRepository
	logger     logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	outboxRepo OutboxRepository,
	carts CartStore,
	txManager TxManager,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:  orderRepo,
		itemRepo:   itemRepo,
		outboxRepo: outboxRepo,
		carts:      carts,
		txManager:  txManager,
		cacheRepo:  cacheRepo,
		logger:     logger,
	}
}

// SubmitOrder оформляет продажу из корзины сессии.
// Валидация проходит до любого обращения к базе: при пустой корзине или
// некорректном способе оплаты ни одна запись не создаётся и корзина не меняется.
// Повторная отправка с тем же токеном возвращает уже созданную продажу.
func (o *OrderUseCase) SubmitOrder(ctx context.Context, req *SubmitOrderReq) (*SubmitOrderRes, error) {
	const op = "OrderUseCase.SubmitOrder"

	// Валидация данных
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return nil, e.Wrap(op, e.ErrPaymentMethodRequired)
	}

	payment, ok := domain.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidPaymentMethod)
	}

	lines := o.carts.Snapshot(req.SessionID)
	if len(lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	// Снимок позиций и сумма фиксируются в момент оформления
	items := make([]domain.OrderItem, 0, len(lines))
	var total int64
	for _, line := range lines {
		item := domain.NewOrderItem(line)
		total += item.Subtotal
		items = append(items, item)
	}

	token := req.SubmissionToken
	if token == "" {
		token = uuid.NewString()
	}

	var (
		order       *domain.Order
		resubmitted bool
	)

	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := o.orderRepo.GetBySubmissionToken(ctx, token)
		if err != nil {
			return err
		}
		if existing != nil {
			// Повтор после потерянного ответа: продажа уже есть, ничего не пишем
			order = existing
			resubmitted = true
			return nil
		}

		order, err = o.orderRepo.Create(ctx, domain.NewOrder(
			req.CustomerName, total, domain.OrderStatusCompleted, payment, token,
		))
		if err != nil {
			return err
		}

		if err := o.itemRepo.CreateBatch(ctx, order.ID, items); err != nil {
			return err
		}

		payload, err := json.Marshal(NewOrderCreatedPayload(order, items))
		if err != nil {
			return err
		}

		_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(EventOrderCreated, order.ID, payload))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Сброс кэша отчётов только после появления новых данных
	if !resubmitted {
		if err := o.cacheRepo.InvalidateReports(ctx, AllReportKeys()...); err != nil {
			o.logger.Warnf("Failed to invalidate report caches: %v", e.Wrap(op, err))
		}
	}

	o.carts.Drop(req.SessionID)

	return NewSubmitOrderRes(order.ID, order.TotalAmount, resubmitted), nil
}

// UpdateOrderStatus меняет статус продажи. Ограничений на переходы нет:
// любой статус может смениться любым. При неудаче сохранённый статус
// остаётся прежним.
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) error {
	const op = "OrderUseCase.UpdateOrderStatus"

	status, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		return e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		if err := o.orderRepo.UpdateStatus(ctx, req.OrderID, status); err != nil {
			return err
		}

		payload, err := json.Marshal(NewOrderStatusChangedPayload(req.OrderID, status))
		if err != nil {
			return err
		}

		_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(EventOrderStatusChanged, req.OrderID, payload))
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := o.cacheRepo.InvalidateReports(ctx, AllReportKeys()...); err != nil {
		o.logger.Warnf("Failed to invalidate report caches: %v", e.Wrap(op, err))
	}

	return nil
}
