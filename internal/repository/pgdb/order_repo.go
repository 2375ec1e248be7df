package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/DRSN-tech/pdv-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий продаж поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create сохраняет заголовок продажи внутри текущей транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (customer_name, total_amount, status, payment_method, submission_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	created := *order
	if err := tx.QueryRow(ctx, query,
		order.CustomerName,
		order.TotalAmount,
		order.Status,
		order.PaymentMethod,
		order.SubmissionToken,
	).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

// GetBySubmissionToken ищет продажу по токену идемпотентности.
// Возвращает (nil, nil), если продажи с таким токеном нет.
func (o *OrderRepo) GetBySubmissionToken(ctx context.Context, token string) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, customer_name, total_amount, status, payment_method, submission_token, created_at
		FROM orders
		WHERE submission_token = $1;
	`

	var order domain.Order
	err = tx.QueryRow(ctx, query, token).Scan(
		&order.ID,
		&order.CustomerName,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentMethod,
		&order.SubmissionToken,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &order, nil
}

// UpdateStatus меняет статус продажи внутри текущей транзакции.
func (o *OrderRepo) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2;
	`

	result, err := tx.Exec(ctx, query, status, orderID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}
