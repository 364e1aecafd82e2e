package repository

import (
	"errors"

	"gorm.io/gorm"

	"pdv_backend/internal/models"
)

type ProductRepository interface {
	GetAll(activeOnly bool) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Deactivate(id uint) (*models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetAll(activeOnly bool) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Order("category, name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Deactivate soft-deletes: the row is kept so existing orders still resolve
// the reference.
func (r *productRepository) Deactivate(id uint) (*models.Product, error) {
	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(product).Update("active", false).Error; err != nil {
		return nil, err
	}
	return product, nil
}
