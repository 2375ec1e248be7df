package http

import (
	"net/http"

	"github.com/DRSN-tech/pdv-backend/internal/usecase"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, logger: logger}
}

// salesByDay
//
//	@Summary	Продажи по дням
//	@Tags		reports
//	@Produce	json
//	@Success	200	{array}		usecase.SalesByDayRow
//	@Failure	500	{object}	ErrorResponse
//	@Router		/reports/sales-by-day [get]
func (h *ReportHandler) salesByDay(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportUsecase.SalesByDay(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, rows)
}

// salesByCategory
//
//	@Summary	Продажи по категориям
//	@Tags		reports
//	@Produce	json
//	@Success	200	{array}		usecase.SalesByCategoryRow
//	@Failure	500	{object}	ErrorResponse
//	@Router		/reports/sales-by-category [get]
func (h *ReportHandler) salesByCategory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportUsecase.SalesByCategory(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, rows)
}

// salesByProduct
//
//	@Summary	Продажи по товарам
//	@Tags		reports
//	@Produce	json
//	@Success	200	{array}		usecase.SalesByProductRow
//	@Failure	500	{object}	ErrorResponse
//	@Router		/reports/sales-by-product [get]
func (h *ReportHandler) salesByProduct(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportUsecase.SalesByProduct(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, rows)
}

// soldTickets
//
//	@Summary	Последние проданные чеки
//	@Tags		reports
//	@Produce	json
//	@Success	200	{array}		usecase.TicketRes
//	@Failure	500	{object}	ErrorResponse
//	@Router		/reports/sold-tickets [get]
func (h *ReportHandler) soldTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.reportUsecase.SoldTickets(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, tickets)
}
