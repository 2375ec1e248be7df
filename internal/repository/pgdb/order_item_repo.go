package pgdb

import (
	"context"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/DRSN-tech/pdv-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderItemRepo реализует репозиторий позиций продажи поверх PostgreSQL.
type OrderItemRepo struct {
	pool *pgxpool.Pool
}

func NewOrderItemRepo(pool *pgxpool.Pool) *OrderItemRepo {
	return &OrderItemRepo{pool: pool}
}

// CreateBatch сохраняет все позиции продажи одним батчем внутри текущей транзакции.
func (o *OrderItemRepo) CreateBatch(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO order_items (order_id, product_id, product_name, product_price, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query,
			orderID,
			item.ProductID,
			item.ProductName,
			item.ProductPrice,
			item.Quantity,
			item.Subtotal,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}
