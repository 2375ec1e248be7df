package http

import (
	"net/http"

	"github.com/DRSN-tech/pdv-backend/internal/usecase"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addToCartReq struct {
	ProductID int64 `json:"product_id"`
}

// getCart
//
//	@Summary		Текущая корзина сессии
//	@Description	Возвращает позиции и сумму корзины кассовой сессии
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"Идентификатор кассовой сессии"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse	"Нет идентификатора сессии"
//	@Router			/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.GetCart(r.Context(), session)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// addToCart
//
//	@Summary		Добавление товара в корзину
//	@Description	Кладёт снимок товара в корзину, повтор увеличивает количество
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string		true	"Идентификатор кассовой сессии"
//	@Param			body			body		addToCartReq	true	"Идентификатор товара"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404				{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (c *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req addToCartReq
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.AddToCart(r.Context(), session, req.ProductID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// removeFromCart
//
//	@Summary		Удаление позиции из корзины
//	@Description	Убирает позицию товара целиком независимо от количества
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"Идентификатор кассовой сессии"
//	@Param			productID		path		int		true	"Идентификатор товара"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/cart/items/{productID} [delete]
func (c *CartHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := pathID(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.RemoveFromCart(r.Context(), session, productID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// increaseQuantity
//
//	@Summary		Увеличение количества позиции
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"Идентификатор кассовой сессии"
//	@Param			productID		path		int		true	"Идентификатор товара"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/cart/items/{productID}/increase [post]
func (c *CartHandler) increaseQuantity(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := pathID(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.IncreaseQuantity(r.Context(), session, productID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// decreaseQuantity
//
//	@Summary		Уменьшение количества позиции
//	@Description	Позиция с количеством 1 удаляется из корзины целиком
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"Идентификатор кассовой сессии"
//	@Param			productID		path		int		true	"Идентификатор товара"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/cart/items/{productID}/decrease [post]
func (c *CartHandler) decreaseQuantity(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := pathID(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.DecreaseQuantity(r.Context(), session, productID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// clearCart
//
//	@Summary		Очистка корзины
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"Идентификатор кассовой сессии"
//	@Success		200				{object}	usecase.CartRes
//	@Failure		400				{object}	ErrorResponse	"Нет идентификатора сессии"
//	@Router			/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.ClearCart(r.Context(), session)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
