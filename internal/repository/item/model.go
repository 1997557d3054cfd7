package repository

import (
	"time"

	"catalogcore/internal/model"
)

type ItemEntity struct {
	ID          string          `bson:"_id"`
	Name        string          `bson:"name"`
	Description string          `bson:"description,omitempty"`
	Supplier    string          `bson:"supplier,omitempty"`
	BrandID     string          `bson:"brand_id,omitempty"`
	Media       []MediaEntity   `bson:"media,omitempty"`
	Variants    []VariantEntity `bson:"variants"`
	CreatedAt   time.Time       `bson:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at"`
}

type VariantEntity struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	ImportPrice float64   `bson:"import_price"`
	Price       float64   `bson:"price"`
	StockQty    int64     `bson:"stock_qty"`
	CreatedAt   time.Time `bson:"created_at"`
}

type MediaEntity struct {
	ID    string          `bson:"id"`
	URL   string          `bson:"url"`
	Type  model.MediaType `bson:"type"`
	Order int             `bson:"order"`
}
