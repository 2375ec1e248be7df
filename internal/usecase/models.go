package usecase

import (
	"time"

	"github.com/DRSN-tech/pdv-backend/internal/domain"
)

// PRODUCT USECASE

// AddNewProductReq — запрос на добавление нового товара.
type AddNewProductReq struct {
	Name         string
	CategoryName string
	Price        int64
	Image        *ProductImage // Необязательное изображение товара
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// RegisterProductRes — результат регистрации товара.
type RegisterProductRes struct {
	ProductID int64
	NoChanges bool
}

// GetProductsReq запрос информации о товарах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных товаров.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID           int64
	Name         string
	CategoryName string
	Price        int64
	ImageKey     string // пустая строка, если изображения нет
}

// CART USECASE

// NotificationKind — вид пользовательского уведомления о действии с корзиной.
type NotificationKind string

const (
	NotificationAdded       NotificationKind = "added"
	NotificationIncremented NotificationKind = "incremented"
	NotificationRemoved     NotificationKind = "removed"
	NotificationCleared     NotificationKind = "cleared"
)

// Notification — видимое пользователю уведомление, возвращаемое вместе с корзиной.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// CartItemRes — позиция корзины в ответе API.
type CartItemRes struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

// CartRes — состояние корзины после операции.
type CartRes struct {
	Items        []CartItemRes `json:"items"`
	Total        int64         `json:"total"`
	Notification *Notification `json:"notification,omitempty"`
}

// ORDER USECASE

// SubmitOrderReq — запрос на оформление продажи из корзины сессии.
type SubmitOrderReq struct {
	SessionID       string
	CustomerName    string
	PaymentMethod   string
	SubmissionToken string // клиентский токен идемпотентности, может быть пустым
}

// SubmitOrderRes — результат оформления продажи.
type SubmitOrderRes struct {
	OrderID     int64 `json:"order_id"`
	TotalAmount int64 `json:"total_amount"`
	Resubmitted bool  `json:"resubmitted"` // true, если токен уже был использован
}

// UpdateOrderStatusReq — запрос на смену статуса продажи.
type UpdateOrderStatusReq struct {
	OrderID int64
	Status  string
}

// REPORT USECASE

// SalesByDayRow — продажи за один день.
type SalesByDayRow struct {
	Day    time.Time `json:"day"`
	Orders int64     `json:"orders"`
	Total  int64     `json:"total"`
}

// SalesByCategoryRow — продажи по категории товаров.
type SalesByCategoryRow struct {
	CategoryName string `json:"category_name"`
	Quantity     int64  `json:"quantity"`
	Total        int64  `json:"total"`
}

// SalesByProductRow — продажи по конкретному товару.
type SalesByProductRow struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	Total       int64  `json:"total"`
}

/// TicketRes — проданный чек: заголовок продажи с позициями.
type TicketRes struct {
	OrderID       int64           `json:"order_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	TotalAmount   int64           `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []TicketItemRes `json:"items"`
}

type TicketItemRes struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

// INFRASTRUCTURE

// UploadImageReq — запрос на загрузку изображения товара.
type UploadImageReq struct {
	Name  string
	Image ProductImage
}

// WriteRawMessageReq — запрос на публикацию готового payload в брокер.
type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// REPOSITORIES

// UpsertProductRes — результат идемпотентного создания/обновления товара.
type UpsertProductRes struct {
	Product   *domain.Product
	NoChanges bool
}

// MAPPERS

func NewAddNewProductReq(name string, category string, price int64, image *ProductImage) *AddNewProductReq {
	return &AddNewProductReq{
		Name:         name,
		CategoryName: category,
		Price:        price,
		Image:        image,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewProductInfo(id int64, name string, category string, price int64, imageKey string) ProductInfo {
	return ProductInfo{
		ID:           id,
		Name:         name,
		CategoryName: category,
		Price:        price,
		ImageKey:     imageKey,
	}
}

func NewUpsertProductRes(product *domain.Product, noChanges bool) *UpsertProductRes {
	return &UpsertProductRes{
		Product:   product,
		NoChanges: noChanges,
	}
}

func NewNotification(kind NotificationKind, message string) *Notification {
	return &Notification{
		Kind:    kind,
		Message: message,
	}
}

func NewSubmitOrderRes(orderID int64, total int64, resubmitted bool) *SubmitOrderRes {
	return &SubmitOrderRes{
		OrderID:     orderID,
		TotalAmount: total,
		Resubmitted: resubmitted,
	}
}

func NewUploadImageReq(name string, image ProductImage) *UploadImageReq {
	return &UploadImageReq{
		Name:  name,
		Image: image,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
