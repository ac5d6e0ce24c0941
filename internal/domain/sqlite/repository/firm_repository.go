package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/JLemieux66/PE/internal/domain/entity"
)

type DefaultFirmRepository struct {
	db *gorm.DB
}

func NewFirmRepository(db *gorm.DB) *DefaultFirmRepository {
	return &DefaultFirmRepository{db: db}
}

func (r *DefaultFirmRepository) FindAll() ([]*entity.Firm, error) {
	var firms []*entity.Firm
	err := r.db.Order("name").Find(&firms).Error
	if err != nil {
		return nil, err
	}
	return firms, nil
}

// FindByName matches by substring, first hit wins. The dashboard links to
// firms by display name, not id.
func (r *DefaultFirmRepository) FindByName(name string) (*entity.Firm, error) {
	var firm entity.Firm
	err := r.db.
		Where("name LIKE ?", "%"+name+"%").
		First(&firm).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &firm, nil
}

func (r *DefaultFirmRepository) FindByExactName(name string) (*entity.Firm, error) {
	var firm entity.Firm
	err := r.db.
		Where("name = ?", name).
		First(&firm).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &firm, nil
}

func (r *DefaultFirmRepository) Save(firm *entity.Firm) error {
	return r.db.Save(firm).Error
}

func (r *DefaultFirmRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Firm{}).Count(&count).Error
	return count, err
}
