package usecase

import "context"

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartRes, error)
	AddToCart(ctx context.Context, sessionID string, productID int64) (*CartRes, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID int64) (*CartRes, error)
	IncreaseQuantity(ctx context.Context, sessionID string, productID int64) (*CartRes, error)
	DecreaseQuantity(ctx context.Context, sessionID string, productID int64) (*CartRes, error)
	ClearCart(ctx context.Context, sessionID string) (*CartRes, error)
}

type OrderUC interface {
	SubmitOrder(ctx context.Context, req *SubmitOrderReq) (*SubmitOrderRes, error)
	UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) error
}

type ProductUC interface {
	RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*RegisterProductRes, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}

type ReportUC interface {
	SalesByDay(ctx context.Context) ([]SalesByDayRow, error)
	SalesByCategory(ctx context.Context) ([]SalesByCategoryRow, error)
	SalesByProduct(ctx context.Context) ([]SalesByProductRow, error)
	SoldTickets(ctx context.Context) ([]TicketRes, error)
}
