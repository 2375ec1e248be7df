package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogProductRepoStub struct {
	upsertCalls int
	noChanges   bool
	upsertErr   error
	lastUpsert  *domain.Product

	infoCalls int
	lastIDs   []int64
	infos     []ProductInfo
	infoErr   error
}

func (s *catalogProductRepoStub) Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error) {
	s.upsertCalls++
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}

	s.lastUpsert = product
	saved := *product
	saved.ID = 9
	return NewUpsertProductRes(&saved, s.noChanges), nil
}

func (s *catalogProductRepoStub) GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error) {
	s.infoCalls++
	s.lastIDs = ids
	return s.infos, s.infoErr
}

type categoryRepoStub struct {
	calls    int
	err      error
	lastName string
}

func (s *categoryRepoStub) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	s.lastName = category.Name
	saved := *category
	saved.ID = 4
	return &saved, nil
}

type imagesInfraStub struct {
	uploadCalls int
	uploadErr   error
	key         string
	cleanedUp   []string
	lastUpload  *UploadImageReq
}

func (s *imagesInfraStub) UploadImage(ctx context.Context, req *UploadImageReq) (string, error) {
	s.uploadCalls++
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.lastUpload = req
	return s.key, nil
}

func (s *imagesInfraStub) CleanupImage(key string) {
	s.cleanedUp = append(s.cleanedUp, key)
}

// catalogCacheStub сигналит в setDone после фоновой записи товаров.
type catalogCacheStub struct {
	products map[int64]ProductInfo
	getErr   error

	deleteCalls     int
	deletedIDs      []int64
	invalidateCalls int
	invalidateKeys  []string

	lastSet []ProductInfo
	setDone chan struct{}
}

func newCatalogCacheStub() *catalogCacheStub {
	return &catalogCacheStub{setDone: make(chan struct{}, 4)}
}

func (s *catalogCacheStub) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}

	found := make(map[int64]ProductInfo)
	for _, id := range ids {
		if info, ok := s.products[id]; ok {
			found[id] = info
		}
	}
	return found, nil
}

func (s *catalogCacheStub) SetProducts(ctx context.Context, products []ProductInfo) error {
	s.lastSet = products
	s.setDone <- struct{}{}
	return nil
}

func (s *catalogCacheStub) DeleteProducts(ctx context.Context, ids []int64) error {
	s.deleteCalls++
	s.deletedIDs = ids
	return nil
}

func (s *catalogCacheStub) GetReport(ctx context.Context, key string) ([]byte, error) {
	panic("not used")
}
func (s *catalogCacheStub) SetReport(ctx context.Context, key string, data []byte) error {
	panic("not used")
}

func (s *catalogCacheStub) InvalidateReports(ctx context.Context, keys ...string) error {
	s.invalidateCalls++
	s.invalidateKeys = keys
	return nil
}

type catalogFixture struct {
	uc       *ProductUseCase
	products *catalogProductRepoStub
	cats     *categoryRepoStub
	images   *imagesInfraStub
	cache    *catalogCacheStub
	tx       *txManagerStub
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		products: &catalogProductRepoStub{},
		cats:     &categoryRepoStub{},
		images:   &imagesInfraStub{key: "coxinha/img-abc.png"},
		cache:    newCatalogCacheStub(),
		tx:       &txManagerStub{},
	}
	f.uc = NewProductUC(f.products, f.cats, f.tx, f.images, f.cache, nopLogger{})
	return f
}

func TestRegisterNewProduct(t *testing.T) {
	f := newCatalogFixture()

	res, err := f.uc.RegisterNewProduct(context.Background(), NewAddNewProductReq("Coxinha", "Salgados", 550, nil))
	require.NoError(t, err)

	assert.Equal(t, int64(9), res.ProductID)
	assert.False(t, res.NoChanges)

	assert.Equal(t, "Salgados", f.cats.lastName)
	require.NotNil(t, f.products.lastUpsert)
	assert.Equal(t, "Coxinha", f.products.lastUpsert.Name)
	assert.Equal(t, int64(550), f.products.lastUpsert.Price)
	assert.Equal(t, int64(4), f.products.lastUpsert.CategoryID)
	assert.Nil(t, f.products.lastUpsert.ImageKey)

	// Без изображения хранилище объектов не трогаем
	assert.Equal(t, 0, f.images.uploadCalls)

	assert.Equal(t, []int64{9}, f.cache.deletedIDs)
	assert.Equal(t, 1, f.cache.invalidateCalls)
	assert.ElementsMatch(t, []string{ReportKeyCategoryData, ReportKeyProductData}, f.cache.invalidateKeys)
}

func TestRegisterNewProductNoChangesSkipsReportInvalidation(t *testing.T) {
	f := newCatalogFixture()
	f.products.noChanges = true

	res, err := f.uc.RegisterNewProduct(context.Background(), NewAddNewProductReq("Coxinha", "Salgados", 550, nil))
	require.NoError(t, err)

	assert.True(t, res.NoChanges)
	assert.Equal(t, 0, f.cache.invalidateCalls)
}

func TestRegisterNewProductValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *AddNewProductReq
		want error
	}{
		{"empty name", NewAddNewProductReq("  ", "Salgados", 550, nil), e.ErrProductNameRequired},
		{"empty category", NewAddNewProductReq("Coxinha", "", 550, nil), e.ErrCategoryNameRequired},
		{"zero price", NewAddNewProductReq("Coxinha", "Salgados", 0, nil), e.ErrPriceMustBePositive},
		{"negative price", NewAddNewProductReq("Coxinha", "Salgados", -100, nil), e.ErrPriceMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatalogFixture()

			_, err := f.uc.RegisterNewProduct(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			// Валидация отсекает запрос до любых побочных эффектов
			assert.Equal(t, 0, f.tx.calls)
			assert.Equal(t, 0, f.images.uploadCalls)
		})
	}
}

func TestRegisterNewProductWithImage(t *testing.T) {
	f := newCatalogFixture()
	image := NewProductImage([]byte("png-bytes"), "image/png", 9, "coxinha.png")

	_, err := f.uc.RegisterNewProduct(context.Background(), NewAddNewProductReq("Coxinha", "Salgados", 550, image))
	require.NoError(t, err)

	assert.Equal(t, 1, f.images.uploadCalls)
	require.NotNil(t, f.products.lastUpsert.ImageKey)
	assert.Equal(t, "coxinha/img-abc.png", *f.products.lastUpsert.ImageKey)
	assert.Empty(t, f.images.cleanedUp)
}

func TestRegisterNewProductCleansUpImageOnTxFailure(t *testing.T) {
	f := newCatalogFixture()
	f.products.upsertErr = errors.New("insert failed")
	image := NewProductImage([]byte("png-bytes"), "image/png", 9, "coxinha.png")

	_, err := f.uc.RegisterNewProduct(context.Background(), NewAddNewProductReq("Coxinha", "Salgados", 550, image))
	require.Error(t, err)

	// Осиротевший объект зачищается после отката
	assert.Equal(t, []string{"coxinha/img-abc.png"}, f.images.cleanedUp)
	assert.Equal(t, 0, f.cache.deleteCalls)
	assert.Equal(t, 0, f.cache.invalidateCalls)
}

func TestRegisterNewProductUploadFailureStopsBeforeTx(t *testing.T) {
	f := newCatalogFixture()
	f.images.uploadErr = e.ErrFileTooLarge
	image := NewProductImage(make([]byte, 32), "image/png", 32, "huge.png")

	_, err := f.uc.RegisterNewProduct(context.Background(), NewAddNewProductReq("Coxinha", "Salgados", 550, image))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrFileTooLarge)
	assert.Equal(t, 0, f.tx.calls)
}

func TestGetProductsInfoRequiresIDs(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.GetProductsInfo(context.Background(), NewGetProductsReq(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNoProducts)
}

func TestGetProductsInfoMergesCacheAndDB(t *testing.T) {
	f := newCatalogFixture()
	f.cache.products = map[int64]ProductInfo{
		1: NewProductInfo(1, "Coxinha", "Salgados", 550, ""),
	}
	f.products.infos = []ProductInfo{
		NewProductInfo(2, "Pastel", "Salgados", 800, ""),
	}

	res, err := f.uc.GetProductsInfo(context.Background(), NewGetProductsReq([]int64{1, 2, 3}))
	require.NoError(t, err)

	// Порядок ответа повторяет порядок запрошенных идентификаторов
	require.Len(t, res.Products, 2)
	assert.Equal(t, int64(1), res.Products[0].ID)
	assert.Equal(t, int64(2), res.Products[1].ID)
	assert.Equal(t, []int64{3}, res.NotFoundProducts)

	// В базу уходят только промахи кэша
	assert.Equal(t, []int64{2, 3}, f.products.lastIDs)

	// Найденное в базе докладывается в кэш фоном
	select {
	case <-f.cache.setDone:
	case <-time.After(time.Second):
		t.Fatal("background cache write did not happen")
	}
	assert.Equal(t, f.products.infos, f.cache.lastSet)
}

func TestGetProductsInfoCacheErrorFallsBackToDB(t *testing.T) {
	f := newCatalogFixture()
	f.cache.getErr = errors.New("redis down")
	f.products.infos = []ProductInfo{
		NewProductInfo(1, "Coxinha", "Salgados", 550, ""),
		NewProductInfo(2, "Pastel", "Salgados", 800, ""),
	}

	res, err := f.uc.GetProductsInfo(context.Background(), NewGetProductsReq([]int64{1, 2}))
	require.NoError(t, err)

	require.Len(t, res.Products, 2)
	assert.Equal(t, []int64{1, 2}, f.products.lastIDs)
}

func TestGetProductsInfoFullCacheHitSkipsDB(t *testing.T) {
	f := newCatalogFixture()
	f.cache.products = map[int64]ProductInfo{
		1: NewProductInfo(1, "Coxinha", "Salgados", 550, ""),
	}

	res, err := f.uc.GetProductsInfo(context.Background(), NewGetProductsReq([]int64{1}))
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	assert.Equal(t, 0, f.products.infoCalls)
}
