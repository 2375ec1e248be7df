package tr

import (
	"context"

	"github.com/DRSN-tech/pdv-backend/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

// Manager управляет жизненным циклом транзакций PostgreSQL.
// Открытая транзакция кладётся в контекст и достаётся репозиториями через TxFromCtx.
type Manager struct {
	pool transaction.Transactional
}

func NewManager(pool transaction.Transactional) *Manager {
	return &Manager{pool: pool}
}

// Do выполняет fn внутри транзакции.
// При ошибке fn или коммита активная транзакция откатывается.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	const op = "tr.Manager.Do"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.pool)
	if err != nil {
		return e.Wrap(op, err)
	}

	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()

	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = fn(ctx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
