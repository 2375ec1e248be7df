package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/pdv-backend/internal/usecase"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// registerNewProduct
//
//	@Summary		Регистрация нового товара
//	@Description	Создаёт или обновляет товар каталога с необязательным изображением
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string					true	"Название товара"
//	@Param			category	formData	string					true	"Категория"
//	@Param			price		formData	number					true	"Цена"
//	@Param			image		formData	file					false	"Изображение товара"
//	@Success		201			{object}	map[string]interface{}	"Успешное создание"
//	@Success		200			{object}	map[string]interface{}	"Товар не изменился"
//	@Failure		400			{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
		maxFileSize         = 15 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	prMeta, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"], maxFileSize)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.RegisterNewProduct(r.Context(), usecase.NewAddNewProductReq(prMeta.Name, prMeta.CategoryName, prMeta.Price, image))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if res.NoChanges {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"product_id": res.ProductID,
			"changed":    false,
		})
	} else {
		WriteSuccess(w, http.StatusCreated, map[string]interface{}{
			"product_id": res.ProductID,
			"changed":    true,
		})
	}
}

// getProductsInfo
//
//	@Summary		Информация о товарах
//	@Description	Возвращает данные товаров по списку идентификаторов (?ids=1,2,3)
//	@Tags			products
//	@Produce		json
//	@Param			ids	query		string	true	"Идентификаторы товаров через запятую"
//	@Success		200	{object}	usecase.GetProductsRes
//	@Failure		400	{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [get]
func (p *ProductHandler) getProductsInfo(w http.ResponseWriter, r *http.Request) {
	idsParam := strings.TrimSpace(r.URL.Query().Get("ids"))
	if idsParam == "" {
		WriteError(w, e.ErrNoProducts)
		return
	}

	parts := strings.Split(idsParam, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	res, err := p.productUsecase.GetProductsInfo(r.Context(), usecase.NewGetProductsReq(ids))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
