package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
)

// ProductUseCase реализует бизнес-логику управления товарами кассы.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	txManager    TxManager
	imagesInfra  ImagesInfra
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	txManager TxManager,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		imagesInfra:  imagesInfra,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// RegisterNewProduct обрабатывает добавление товара с категорией и
// необязательным изображением. Изображение грузится в MinIO до транзакции;
// при откате загруженный объект зачищается.
func (p *ProductUseCase) RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*RegisterProductRes, error) {
	const op = "ProductUseCase.RegisterNewProduct"

	// Валидация данных
	if err := p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var imageKey string
	if req.Image != nil {
		key, err := p.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, *req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		imageKey = key
	}

	var res *UpsertProductRes

	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		// идемпотентное создание категории
		category, err := p.categoryRepo.Create(ctx, domain.NewCategory(req.CategoryName))
		if err != nil {
			return err
		}

		// идемпотентное создание товара
		var keyPtr *string
		if imageKey != "" {
			keyPtr = &imageKey
		}
		res, err = p.productRepo.Upsert(ctx, domain.NewProduct(req.Name, req.Price, category.ID, keyPtr))
		return err
	})
	if err != nil {
		// Зачистка осиротевшего изображения после отката транзакции
		if imageKey != "" {
			p.logger.Warnf(
				"Cleaning up orphaned image after transaction failure. product_name: %s, error: %v",
				req.Name,
				e.Wrap(op, err),
			)

			p.imagesInfra.CleanupImage(imageKey)
		}

		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша старых данных товара
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{res.Product.ID}); err != nil {
		p.logger.Warnf("Failed to delete products from cache: %v", e.Wrap(op, err))
	}

	// Смена имени или категории товара меняет срезы отчётов
	if !res.NoChanges {
		if err := p.cacheRepo.InvalidateReports(ctx, ReportKeyCategoryData, ReportKeyProductData); err != nil {
			p.logger.Warnf("Failed to invalidate report caches: %v", e.Wrap(op, err))
		}
	}

	return &RegisterProductRes{ProductID: res.Product.ID, NoChanges: res.NoChanges}, nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам.
func (p *ProductUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "ProductUseCase.GetProductsInfo"

	// Валидация
	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	// Поиск товаров в кэше
	cacheProductsMap, err := p.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		p.logger.Warnf("Product cache read failed: %v", e.Wrap(op, err))
		cacheProductsMap = nil
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, productID := range req.IDs {
			if _, ok := cacheProductsMap[productID]; !ok {
				nonCacheable = append(nonCacheable, productID)
			}
		}
	}

	// Получение товаров из БД
	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = p.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление товаров в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := p.cacheRepo.SetProducts(bgCtx, productsInfoFromDB); err != nil {
				p.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsInfoFromDB))
	for _, productInfo := range productsInfoFromDB {
		dbProductsMap[productInfo.ID] = productInfo
	}

	// Формирование результата в порядке запрошенных идентификаторов
	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// validateProduct проверяет корректность входных данных запроса на добавление товара.
func (p *ProductUseCase) validateProduct(req *AddNewProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.CategoryName) == "" {
		return e.ErrCategoryNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	return nil
}
