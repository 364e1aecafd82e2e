package repository

import (
	"errors"

	"gorm.io/gorm"

	"pdv_backend/internal/models"
)

type AddOnRepository interface {
	GetAll(activeOnly bool) ([]models.AddOn, error)
	GetByID(id uint) (*models.AddOn, error)
	Create(addOn *models.AddOn) error
	Update(addOn *models.AddOn) error
	Deactivate(id uint) (*models.AddOn, error)
}

type addOnRepository struct {
	db *gorm.DB
}

func NewAddOnRepository(db *gorm.DB) AddOnRepository {
	return &addOnRepository{db: db}
}

func (r *addOnRepository) GetAll(activeOnly bool) ([]models.AddOn, error) {
	var addOns []models.AddOn
	query := r.db.Order("name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&addOns).Error
	return addOns, err
}

func (r *addOnRepository) GetByID(id uint) (*models.AddOn, error) {
	var addOn models.AddOn
	err := r.db.First(&addOn, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAddOnNotFound
		}
		return nil, err
	}
	return &addOn, nil
}

func (r *addOnRepository) Create(addOn *models.AddOn) error {
	return r.db.Create(addOn).Error
}

func (r *addOnRepository) Update(addOn *models.AddOn) error {
	return r.db.Save(addOn).Error
}

func (r *addOnRepository) Deactivate(id uint) (*models.AddOn, error) {
	addOn, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(addOn).Update("active", false).Error; err != nil {
		return nil, err
	}
	return addOn, nil
}
