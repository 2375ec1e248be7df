package domain

import "time"

// OrderStatus — статус продажи.
// Переходы между статусами не ограничены: любой статус может смениться любым.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus возвращает статус и признак его корректности.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// PaymentMethod — способ оплаты продажи.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
)

// ParsePaymentMethod возвращает способ оплаты и признак его корректности.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCredit, PaymentDebit, PaymentPix:
		return PaymentMethod(s), true
	default:
		return "", false
	}
}

// Order описывает заголовок продажи.
// TotalAmount всегда равен сумме Subtotal позиций продажи.
type Order struct {
	ID              int64
	CustomerName    string // Необязательное имя покупателя, пустая строка = не указано
	TotalAmount     int64  // Сумма в сентаво
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	SubmissionToken string // Клиентский токен идемпотентности оформления
	CreatedAt       time.Time
}

func NewOrder(customerName string, total int64, status OrderStatus, payment PaymentMethod, token string) *Order {
	return &Order{
		CustomerName:    customerName,
		TotalAmount:     total,
		Status:          status,
		PaymentMethod:   payment,
		SubmissionToken: token,
	}
}

// OrderItem — замороженная копия проданной позиции.
// Хранит имя и цену товара на момент продажи, чтобы последующие правки
// каталога не меняли историю.
type OrderItem struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	ProductName  string
	ProductPrice int64
	Quantity     int64
	Subtotal     int64
}

// NewOrderItem создаёт позицию продажи из позиции корзины.
func NewOrderItem(line CartLineItem) OrderItem {
	return OrderItem{
		ProductID:    line.ProductID,
		ProductName:  line.ProductName,
		ProductPrice: line.Price,
		Quantity:     line.Quantity,
		Subtotal:     line.Subtotal(),
	}
}
