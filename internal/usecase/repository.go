package usecase

import (
	"context"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// GetBySubmissionToken возвращает (nil, nil), если продажи с таким токеном нет.
	GetBySubmissionToken(ctx context.Context, token string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
}

type OrderItemRepository interface {
	CreateBatch(ctx context.Context, orderID int64, items []domain.OrderItem) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ReportRepository interface {
	SalesByDay(ctx context.Context) ([]SalesByDayRow, error)
	SalesByCategory(ctx context.Context) ([]SalesByCategoryRow, error)
	SalesByProduct(ctx context.Context) ([]SalesByProductRow, error)
	SoldTickets(ctx context.Context, limit int) ([]TicketRes, error)
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
	// GetReport возвращает (nil, nil) при промахе кэша.
	GetReport(ctx context.Context, key string) ([]byte, error)
	SetReport(ctx context.Context, key string, data []byte) error
	InvalidateReports(ctx context.Context, keys ...string) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

// TxManager выполняет функцию внутри транзакции базы данных.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CartStore даёт процессу оформления продажи доступ к корзине сессии.
type CartStore interface {
	Snapshot(sessionID string) []domain.CartLineItem
	Drop(sessionID string)
}
