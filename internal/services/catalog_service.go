package services

import (
	"github.com/shopspring/decimal"

	"pdv_backend/internal/models"
	"pdv_backend/internal/repository"
)

// ProductInput carries the writable product fields. Price is a pointer so a
// missing price can be told apart from zero.
type ProductInput struct {
	Name     string
	Price    *decimal.Decimal
	Category string
	Active   *bool
}

type AddOnInput struct {
	Name   string
	Price  *decimal.Decimal
	Active *bool
}

type CatalogService interface {
	ListProducts(activeOnly bool) ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(in ProductInput) (*models.Product, error)
	UpdateProduct(id uint, in ProductInput) (*models.Product, error)
	DeactivateProduct(id uint) (*models.Product, error)

	ListAddOns(activeOnly bool) ([]models.AddOn, error)
	GetAddOn(id uint) (*models.AddOn, error)
	CreateAddOn(in AddOnInput) (*models.AddOn, error)
	UpdateAddOn(id uint, in AddOnInput) (*models.AddOn, error)
	DeactivateAddOn(id uint) (*models.AddOn, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	addOnRepo   repository.AddOnRepository
}

func NewCatalogService(productRepo repository.ProductRepository, addOnRepo repository.AddOnRepository) CatalogService {
	return &catalogService{productRepo: productRepo, addOnRepo: addOnRepo}
}

func (s *catalogService) ListProducts(activeOnly bool) ([]models.Product, error) {
	return s.productRepo.GetAll(activeOnly)
}

func (s *catalogService) GetProduct(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *catalogService) CreateProduct(in ProductInput) (*models.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:     in.Name,
		Price:    *in.Price,
		Category: in.Category,
		Active:   true,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(id uint, in ProductInput) (*models.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Price = *in.Price
	product.Category = in.Category
	if in.Active != nil {
		product.Active = *in.Active
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) DeactivateProduct(id uint) (*models.Product, error) {
	return s.productRepo.Deactivate(id)
}

func (s *catalogService) ListAddOns(activeOnly bool) ([]models.AddOn, error) {
	return s.addOnRepo.GetAll(activeOnly)
}

func (s *catalogService) GetAddOn(id uint) (*models.AddOn, error) {
	return s.addOnRepo.GetByID(id)
}

func (s *catalogService) CreateAddOn(in AddOnInput) (*models.AddOn, error) {
	if err := validateAddOnInput(in); err != nil {
		return nil, err
	}
	addOn := &models.AddOn{
		Name:   in.Name,
		Price:  *in.Price,
		Active: true,
	}
	if err := s.addOnRepo.Create(addOn); err != nil {
		return nil, err
	}
	return addOn, nil
}

func (s *catalogService) UpdateAddOn(id uint, in AddOnInput) (*models.AddOn, error) {
	if err := validateAddOnInput(in); err != nil {
		return nil, err
	}
	addOn, err := s.addOnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	addOn.Name = in.Name
	addOn.Price = *in.Price
	if in.Active != nil {
		addOn.Active = *in.Active
	}
	if err := s.addOnRepo.Update(addOn); err != nil {
		return nil, err
	}
	return addOn, nil
}

func (s *catalogService) DeactivateAddOn(id uint) (*models.AddOn, error) {
	return s.addOnRepo.Deactivate(id)
}

func validateProductInput(in ProductInput) error {
	if in.Name == "" {
		return models.NewValidationError("name is required")
	}
	if in.Price == nil {
		return models.NewValidationError("price is required")
	}
	if !in.Price.IsPositive() {
		return models.NewValidationError("price must be greater than zero")
	}
	if in.Category == "" {
		return models.NewValidationError("category is required")
	}
	return nil
}

func validateAddOnInput(in AddOnInput) error {
	if in.Name == "" {
		return models.NewValidationError("name is required")
	}
	if in.Price == nil {
		return models.NewValidationError("price is required")
	}
	if in.Price.IsNegative() {
		return models.NewValidationError("price must not be negative")
	}
	return nil
}
