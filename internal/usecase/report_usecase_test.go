package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportRepoStub struct {
	salesByDayCalls int
	rows            []SalesByDayRow
	err             error

	soldTicketsCalls int
	lastLimit        int
	tickets          []TicketRes
}

func (s *reportRepoStub) SalesByDay(ctx context.Context) ([]SalesByDayRow, error) {
	s.salesByDayCalls++
	return s.rows, s.err
}

func (s *reportRepoStub) SalesByCategory(ctx context.Context) ([]SalesByCategoryRow, error) {
	panic("not used")
}

func (s *reportRepoStub) SalesByProduct(ctx context.Context) ([]SalesByProductRow, error) {
	panic("not used")
}

func (s *reportRepoStub) SoldTickets(ctx context.Context, limit int) ([]TicketRes, error) {
	s.soldTicketsCalls++
	s.lastLimit = limit
	return s.tickets, s.err
}

// reportCacheStub сигналит в setDone после фоновой записи отчёта.
type reportCacheStub struct {
	data    []byte
	getErr  error
	setErr  error
	lastKey string
	lastSet []byte
	setDone chan struct{}
}

func newReportCacheStub() *reportCacheStub {
	return &reportCacheStub{setDone: make(chan struct{}, 4)}
}

func (s *reportCacheStub) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	panic("not used")
}
func (s *reportCacheStub) SetProducts(ctx context.Context, products []ProductInfo) error {
	panic("not used")
}
func (s *reportCacheStub) DeleteProducts(ctx context.Context, ids []int64) error { panic("not used") }

func (s *reportCacheStub) GetReport(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.data, nil
}

func (s *reportCacheStub) SetReport(ctx context.Context, key string, data []byte) error {
	s.lastKey = key
	s.lastSet = data
	s.setDone <- struct{}{}
	return s.setErr
}

func (s *reportCacheStub) InvalidateReports(ctx context.Context, keys ...string) error {
	panic("not used")
}

func waitForCacheWrite(t *testing.T, s *reportCacheStub) {
	t.Helper()
	select {
	case <-s.setDone:
	case <-time.After(time.Second):
		t.Fatal("background cache write did not happen")
	}
}

func salesRows() []SalesByDayRow {
	return []SalesByDayRow{
		{Day: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Orders: 3, Total: 4500},
		{Day: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Orders: 1, Total: 800},
	}
}

func TestSalesByDayCacheMissGoesToRepo(t *testing.T) {
	repo := &reportRepoStub{rows: salesRows()}
	cache := newReportCacheStub()
	uc := NewReportUC(repo, cache, nopLogger{})

	rows, err := uc.SalesByDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, salesRows(), rows)
	assert.Equal(t, 1, repo.salesByDayCalls)

	// Свежий отчёт докладывается в кэш фоном
	waitForCacheWrite(t, cache)
	assert.Equal(t, ReportKeySalesData, cache.lastKey)

	var cached []SalesByDayRow
	require.NoError(t, json.Unmarshal(cache.lastSet, &cached))
	assert.Equal(t, salesRows(), cached)
}

func TestSalesByDayCacheHitSkipsRepo(t *testing.T) {
	data, err := json.Marshal(salesRows())
	require.NoError(t, err)

	repo := &reportRepoStub{}
	cache := newReportCacheStub()
	cache.data = data
	uc := NewReportUC(repo, cache, nopLogger{})

	rows, err := uc.SalesByDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, salesRows(), rows)
	assert.Equal(t, 0, repo.salesByDayCalls)
}

func TestSalesByDayCacheErrorTreatedAsMiss(t *testing.T) {
	repo := &reportRepoStub{rows: salesRows()}
	cache := newReportCacheStub()
	cache.getErr = errors.New("redis down")
	uc := NewReportUC(repo, cache, nopLogger{})

	rows, err := uc.SalesByDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, salesRows(), rows)
	assert.Equal(t, 1, repo.salesByDayCalls)
}

func TestSalesByDayCorruptedCacheTreatedAsMiss(t *testing.T) {
	repo := &reportRepoStub{rows: salesRows()}
	cache := newReportCacheStub()
	cache.data = []byte("{not json")
	uc := NewReportUC(repo, cache, nopLogger{})

	rows, err := uc.SalesByDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, salesRows(), rows)
	assert.Equal(t, 1, repo.salesByDayCalls)
}

func TestSalesByDayRepoErrorPropagates(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &reportRepoStub{err: repoErr}
	cache := newReportCacheStub()
	uc := NewReportUC(repo, cache, nopLogger{})

	_, err := uc.SalesByDay(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestSoldTicketsUsesFixedLimit(t *testing.T) {
	repo := &reportRepoStub{tickets: []TicketRes{{OrderID: 1, TotalAmount: 550}}}
	cache := newReportCacheStub()
	uc := NewReportUC(repo, cache, nopLogger{})

	tickets, err := uc.SoldTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, soldTicketsLimit, repo.lastLimit)

	waitForCacheWrite(t, cache)
	assert.Equal(t, ReportKeySoldTickets, cache.lastKey)
}
