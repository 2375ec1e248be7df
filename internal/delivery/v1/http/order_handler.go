package http

import (
	"net/http"

	"github.com/DRSN-tech/pdv-backend/internal/usecase"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type submitOrderReq struct {
	CustomerName    string `json:"customer_name"`
	PaymentMethod   string `json:"payment_method"`
	SubmissionToken string `json:"submission_token"`
}

type updateOrderStatusReq struct {
	Status string `json:"status"`
}

// submitOrder
//
//	@Summary		Оформление продажи
//	@Description	Превращает корзину сессии в сохранённую продажу. Повтор с тем же submission_token возвращает уже созданную продажу.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			true	"Идентификатор кассовой сессии"
//	@Param			body			body		submitOrderReq	true	"Данные оформления"
//	@Success		201				{object}	usecase.SubmitOrderRes
//	@Failure		400				{object}	ErrorResponse	"Пустая корзина или некорректный способ оплаты"
//	@Router			/orders [post]
func (o *OrderHandler) submitOrder(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req submitOrderReq
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := o.orderUsecase.SubmitOrder(r.Context(), &usecase.SubmitOrderReq{
		SessionID:       session,
		CustomerName:    req.CustomerName,
		PaymentMethod:   req.PaymentMethod,
		SubmissionToken: req.SubmissionToken,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	status := http.StatusCreated
	if res.Resubmitted {
		status = http.StatusOK
	}

	WriteSuccess(w, status, res)
}

// updateOrderStatus
//
//	@Summary		Смена статуса продажи
//	@Description	Меняет статус продажи, переходы между статусами не ограничены
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int						true	"Идентификатор продажи"
//	@Param			body	body		updateOrderStatusReq	true	"Новый статус"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Некорректный статус"
//	@Failure		404		{object}	ErrorResponse	"Продажа не найдена"
//	@Router			/orders/{orderID}/status [patch]
func (o *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateOrderStatusReq
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := o.orderUsecase.UpdateOrderStatus(r.Context(), &usecase.UpdateOrderStatusReq{
		OrderID: orderID,
		Status:  req.Status,
	}); err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"status":   req.Status,
	})
}
