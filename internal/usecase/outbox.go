package usecase

import (
	"time"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
	"github.com/google/uuid"
)

// OutboxStatus — статус события в транзакционном outbox.
type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

// OutboxEventType — тип доменного события продажи.
type OutboxEventType string

const (
	EventOrderCreated       OutboxEventType = "order.created"
	EventOrderStatusChanged OutboxEventType = "order.status_changed"
)

// OutboxEvent — запись outbox, публикуемая воркером в Kafka после коммита.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

func NewOutboxEvent(eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

// OrderCreatedPayload — тело события о новой продаже для внешних потребителей
// (фискальный эмиттер, дашборды).
type OrderCreatedPayload struct {
	OrderID       int64              `json:"order_id"`
	CustomerName  string             `json:"customer_name,omitempty"`
	TotalAmount   int64              `json:"total_amount"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Items         []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"`
	Quantity     int64  `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
}

// OrderStatusChangedPayload — тело события о смене статуса продажи.
type OrderStatusChangedPayload struct {
	OrderID   int64  `json:"order_id"`
	NewStatus string `json:"new_status"`
}

func NewOrderCreatedPayload(order *domain.Order, items []domain.OrderItem) *OrderCreatedPayload {
	itemPayloads := make([]OrderItemPayload, 0, len(items))
	for _, item := range items {
		itemPayloads = append(itemPayloads, OrderItemPayload{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
		})
	}

	return &OrderCreatedPayload{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		Items:         itemPayloads,
	}
}

func NewOrderStatusChangedPayload(orderID int64, status domain.OrderStatus) *OrderStatusChangedPayload {
	return &OrderStatusChangedPayload{
		OrderID:   orderID,
		NewStatus: string(status),
	}
}
