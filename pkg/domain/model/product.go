package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductNameTaken = errors.New("product with this name already exists")
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Price       float64
	Description string
	Quantity    int
	Unit        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReportRow is the computed-value projection of a product. It carries no ID.
type ReportRow struct {
	Name       string
	Quantity   int
	TotalValue float64
}

// ProductRepository persists products. Name uniqueness is enforced by the
// storage layer: Create and Update return ErrProductNameTaken on a conflict
// instead of relying on a separate lookup.
type ProductRepository interface {
	NextID() (uuid.UUID, error)
	Create(product *Product) error
	Update(product *Product) error
	Delete(id uuid.UUID) error
	Find(id uuid.UUID) (*Product, error)
	FindAll() ([]Product, error)
	Report() ([]ReportRow, error)
}
