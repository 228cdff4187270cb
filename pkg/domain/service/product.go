package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"inventoryservice/pkg/domain/model"
)

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

const (
	SortByName     = "name"
	SortByPrice    = "price"
	SortByQuantity = "quantity"
)

type ProductService interface {
	ListProducts() ([]model.Product, error)
	SortedProducts(sortBy string) ([]model.Product, error)
	ProductsCheaperThan(maxPrice float64) ([]model.Product, error)
	CreateProduct(name string, price float64, description string, quantity int, unit string) (*model.Product, error)
	UpdateProduct(id uuid.UUID, name string, price float64, description string, quantity int, unit string) error
	DeleteProduct(id uuid.UUID) error
	ValueReport() ([]model.ReportRow, error)
}

func NewProductService(repo model.ProductRepository, dispatcher EventDispatcher) ProductService {
	return &productService{repo: repo, dispatcher: dispatcher}
}

type productService struct {
	repo       model.ProductRepository
	dispatcher EventDispatcher
}

func (s *productService) ListProducts() ([]model.Product, error) {
	return s.repo.FindAll()
}

// SortedProducts orders the catalogue by name, price or quantity. An
// unrecognised key leaves the fetch order unchanged.
func (s *productService) SortedProducts(sortBy string) ([]model.Product, error) {
	products, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case SortByName:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case SortByPrice:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortByQuantity:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Quantity < products[j].Quantity })
	}

	return products, nil
}

// ProductsCheaperThan keeps products with price <= maxPrice. A NaN bound never
// compares true, so an unparsable bound yields the empty set.
func (s *productService) ProductsCheaperThan(maxPrice float64) ([]model.Product, error) {
	products, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Price <= maxPrice {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *productService) CreateProduct(name string, price float64, description string, quantity int, unit string) (*model.Product, error) {
	productID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &model.Product{
		ID:          productID,
		Name:        name,
		Price:       price,
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.ProductCreated{ProductID: productID, Name: name})
	return product, nil
}

// UpdateProduct replaces every stored field of the product with the given id.
func (s *productService) UpdateProduct(id uuid.UUID, name string, price float64, description string, quantity int, unit string) error {
	product := &model.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Update(product); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductUpdated{ProductID: id})
	return nil
}

func (s *productService) DeleteProduct(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductDeleted{ProductID: id})
	return nil
}

func (s *productService) ValueReport() ([]model.ReportRow, error) {
	return s.repo.Report()
}
