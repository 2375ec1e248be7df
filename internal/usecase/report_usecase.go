package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
)

// Логические ключи кэшируемых отчётов. Любая запись продажи
// инвалидирует все четыре.
const (
	ReportKeySoldTickets  = "sold-tickets"
	ReportKeySalesData    = "sales-data"
	ReportKeyCategoryData = "category-data"
	ReportKeyProductData  = "product-data"
)

// AllReportKeys возвращает полный набор логических ключей отчётов.
func AllReportKeys() []string {
	return []string{
		ReportKeySoldTickets,
		ReportKeySalesData,
		ReportKeyCategoryData,
		ReportKeyProductData,
	}
}

const soldTicketsLimit = 100

// ReportUseCase отдаёт отчёты по продажам через кэш.
// Промах кэша уходит в PostgreSQL, результат докладывается в кэш фоном.
type ReportUseCase struct {
	reportRepo ReportRepository
	cacheRepo  CacheRepository
	logger     logger.Logger
}

func NewReportUC(reportRepo ReportRepository, cacheRepo CacheRepository, logger logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
	}
}

// SalesByDay возвращает суммы завершённых продаж по дням.
func (r *ReportUseCase) SalesByDay(ctx context.Context) ([]SalesByDayRow, error) {
	const op = "ReportUseCase.SalesByDay"

	var cached []SalesByDayRow
	if r.fromCache(ctx, ReportKeySalesData, &cached) {
		return cached, nil
	}

	rows, err := r.reportRepo.SalesByDay(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.cacheInBackground(ReportKeySalesData, rows)

	return rows, nil
}

// SalesByCategory возвращает суммы завершённых продаж по категориям.
func (r *ReportUseCase) SalesByCategory(ctx context.Context) ([]SalesByCategoryRow, error) {
	const op = "ReportUseCase.SalesByCategory"

	var cached []SalesByCategoryRow
	if r.fromCache(ctx, ReportKeyCategoryData, &cached) {
		return cached, nil
	}

	rows, err := r.reportRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.cacheInBackground(ReportKeyCategoryData, rows)

	return rows, nil
}

// SalesByProduct возвращает суммы завершённых продаж по товарам.
func (r *ReportUseCase) SalesByProduct(ctx context.Context) ([]SalesByProductRow, error) {
	const op = "ReportUseCase.SalesByProduct"

	var cached []SalesByProductRow
	if r.fromCache(ctx, ReportKeyProductData, &cached) {
		return cached, nil
	}

	rows, err := r.reportRepo.SalesByProduct(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.cacheInBackground(ReportKeyProductData, rows)

	return rows, nil
}

// SoldTickets возвращает последние проданные чеки с позициями.
func (r *ReportUseCase) SoldTickets(ctx context.Context) ([]TicketRes, error) {
	const op = "ReportUseCase.SoldTickets"

	var cached []TicketRes
	if r.fromCache(ctx, ReportKeySoldTickets, &cached) {
		return cached, nil
	}

	tickets, err := r.reportRepo.SoldTickets(ctx, soldTicketsLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.cacheInBackground(ReportKeySoldTickets, tickets)

	return tickets, nil
}

// fromCache пытается прочитать отчёт из кэша. Ошибки кэша считаются промахом.
func (r *ReportUseCase) fromCache(ctx context.Context, key string, dest any) bool {
	const op = "ReportUseCase.fromCache"

	data, err := r.cacheRepo.GetReport(ctx, key)
	if err != nil {
		r.logger.Warnf("Report cache read failed: %v", e.Wrap(op, err))
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warnf("Report cache unmarshal failed: %v", e.Wrap(op, err))
		return false
	}

	return true
}

// cacheInBackground докладывает свежий отчёт в кэш, не задерживая ответ.
func (r *ReportUseCase) cacheInBackground(key string, rows any) {
	const op = "ReportUseCase.cacheInBackground"

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		data, err := json.Marshal(rows)
		if err != nil {
			r.logger.Warnf("Report marshal failed: %v", e.Wrap(op, err))
			return
		}

		if err := r.cacheRepo.SetReport(bgCtx, key, data); err != nil {
			r.logger.Warnf("Failed to cache report in background: %v", e.Wrap(op, err))
		}
	}()
}
