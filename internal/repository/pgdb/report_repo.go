package pgdb

import (
	"context"

	"github.com/DRSN-tech/pdv-backend/internal/usecase"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ReportRepo считает агрегаты продаж поверх PostgreSQL.
// В отчёты попадают только завершённые продажи.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesByDay возвращает количество продаж и выручку по дням, новые дни первыми.
func (r *ReportRepo) SalesByDay(ctx context.Context) ([]usecase.SalesByDayRow, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status = 'completed'
		GROUP BY day
		ORDER BY day DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.SalesByDayRow, 0)
	for rows.Next() {
		var row usecase.SalesByDayRow
		if err := rows.Scan(&row.Day, &row.Orders, &row.Total); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// SalesByCategory возвращает проданное количество и выручку по категориям.
func (r *ReportRepo) SalesByCategory(ctx context.Context) ([]usecase.SalesByCategoryRow, error) {
	query := `
		SELECT cat.name, COALESCE(SUM(it.quantity), 0), COALESCE(SUM(it.subtotal), 0)
		FROM order_items it
		JOIN orders o ON it.order_id = o.id
		JOIN products pr ON it.product_id = pr.id
		JOIN categories cat ON pr.category_id = cat.id
		WHERE o.status = 'completed'
		GROUP BY cat.name
		ORDER BY SUM(it.subtotal) DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.SalesByCategoryRow, 0)
	for rows.Next() {
		var row usecase.SalesByCategoryRow
		if err := rows.Scan(&row.CategoryName, &row.Quantity, &row.Total); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// SalesByProduct возвращает проданное количество и выручку по товарам.
// Имя берётся из замороженной копии в позиции продажи.
func (r *ReportRepo) SalesByProduct(ctx context.Context) ([]usecase.SalesByProductRow, error) {
	query := `
		SELECT it.product_id, MAX(it.product_name), COALESCE(SUM(it.quantity), 0), COALESCE(SUM(it.subtotal), 0)
		FROM order_items it
		JOIN orders o ON it.order_id = o.id
		WHERE o.status = 'completed'
		GROUP BY it.product_id
		ORDER BY SUM(it.subtotal) DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.SalesByProductRow, 0)
	for rows.Next() {
		var row usecase.SalesByProductRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity, &row.Total); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// SoldTickets возвращает последние завершённые продажи с позициями, новые первыми.
func (r *ReportRepo) SoldTickets(ctx context.Context, limit int) ([]usecase.TicketRes, error) {
	ordersQuery := `
		SELECT id, customer_name, total_amount, status, payment_method, created_at
		FROM orders
		WHERE status = 'completed'
		ORDER BY created_at DESC
		LIMIT $1;
	`

	rows, err := r.pool.Query(ctx, ordersQuery, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	tickets := make([]usecase.TicketRes, 0)
	orderIDs := make([]int64, 0)
	for rows.Next() {
		var ticket usecase.TicketRes
		if err := rows.Scan(
			&ticket.OrderID, &ticket.CustomerName, &ticket.TotalAmount,
			&ticket.Status, &ticket.PaymentMethod, &ticket.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		ticket.Items = make([]usecase.TicketItemRes, 0)
		tickets = append(tickets, ticket)
		orderIDs = append(orderIDs, ticket.OrderID)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	rows.Close()

	if len(tickets) == 0 {
		return tickets, nil
	}

	itemsQuery := `
		SELECT order_id, product_id, product_name, product_price, quantity, subtotal
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id;
	`

	itemRows, err := r.pool.Query(ctx, itemsQuery, orderIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer itemRows.Close()

	ticketIdx := make(map[int64]int, len(tickets))
	for i, ticket := range tickets {
		ticketIdx[ticket.OrderID] = i
	}

	for itemRows.Next() {
		var orderID int64
		var item usecase.TicketItemRes
		if err := itemRows.Scan(
			&orderID, &item.ProductID, &item.ProductName,
			&item.Price, &item.Quantity, &item.Subtotal,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if i, ok := ticketIdx[orderID]; ok {
			tickets[i].Items = append(tickets[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return tickets, nil
}
