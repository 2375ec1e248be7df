package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID         int64
	Name       string
	Price      int64 // Цена хранится в сентаво
	CategoryID int64
	ImageKey   *string // Ключ изображения в S3, nil если изображения нет
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewProduct(name string, price int64, categoryID int64, imageKey *string) *Product {
	return &Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		ImageKey:   imageKey,
	}
}
