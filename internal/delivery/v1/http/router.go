package http

import (
	_ "github.com/DRSN-tech/pdv-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/pdv-backend/internal/usecase"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(cartUC usecase.CartUC, orderUC usecase.OrderUC, productUC usecase.ProductUC, reportUC usecase.ReportUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
		registerProductRoutes(v1, NewProductHandler(productUC, r.logger))
		registerReportRoutes(v1, NewReportHandler(reportUC, r.logger))
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", h.getCart)
		cart.Delete("/", h.clearCart)
		cart.Post("/items", h.addToCart)
		cart.Delete("/items/{productID}", h.removeFromCart)
		cart.Post("/items/{productID}/increase", h.increaseQuantity)
		cart.Post("/items/{productID}/decrease", h.decreaseQuantity)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(orders chi.Router) {
		orders.Post("/", h.submitOrder)
		orders.Patch("/{orderID}/status", h.updateOrderStatus)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.registerNewProduct)
		pr.Get("/", h.getProductsInfo)
	})
}

func registerReportRoutes(router chi.Router, h *ReportHandler) {
	router.Route("/reports", func(reports chi.Router) {
		reports.Get("/sales-by-day", h.salesByDay)
		reports.Get("/sales-by-category", h.salesByCategory)
		reports.Get("/sales-by-product", h.salesByProduct)
		reports.Get("/sold-tickets", h.soldTickets)
	})
}
