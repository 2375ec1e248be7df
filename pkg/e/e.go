package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки корзины и оформления продажи
	ErrSessionRequired       = fmt.Errorf("session id is required")
	ErrEmptyCart             = fmt.Errorf("cart is empty")
	ErrPaymentMethodRequired = fmt.Errorf("payment method is required")
	ErrInvalidPaymentMethod  = fmt.Errorf("invalid payment method")
	ErrInvalidOrderStatus    = fmt.Errorf("invalid order status")
	ErrOrderNotFound         = fmt.Errorf("order not found")

	// 400 Bad Request
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrProductNotFound      = fmt.Errorf("product not found")
	ErrNoProducts           = fmt.Errorf("no products requested")
	ErrCategoryNameRequired = fmt.Errorf("category name is required")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidBody          = fmt.Errorf("invalid request body")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
