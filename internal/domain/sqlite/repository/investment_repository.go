package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/JLemieux66/PE/internal/domain/entity"
)

// InvestmentFilter mirrors CompanyFilter for the junction listing, plus the
// exit-type filter the dashboard exposes.
type InvestmentFilter struct {
	FirmName string
	Status   entity.Status
	ExitType string
	Industry string
	Search   string

	Limit  int
	Offset int
}

type DefaultInvestmentRepository struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) *DefaultInvestmentRepository {
	return &DefaultInvestmentRepository{db: db}
}

func (r *DefaultInvestmentRepository) List(filter InvestmentFilter) ([]*entity.Investment, error) {
	q := r.db.
		Model(&entity.Investment{}).
		Joins("JOIN companies ON companies.id = investments.company_id").
		Joins("JOIN firms ON firms.id = investments.firm_id")

	if filter.FirmName != "" {
		q = q.Where("firms.name LIKE ?", "%"+filter.FirmName+"%")
	}
	if filter.Status != "" {
		q = q.Where("investments.status = ?", filter.Status)
	}
	if filter.ExitType != "" {
		q = q.Where("investments.exit_type LIKE ?", "%"+filter.ExitType+"%")
	}
	if filter.Industry != "" {
		q = q.Where("companies.industry_category LIKE ?", "%"+filter.Industry+"%")
	}
	if filter.Search != "" {
		q = q.Where("companies.name LIKE ?", "%"+filter.Search+"%")
	}

	var investments []*entity.Investment
	err := q.
		Order("companies.name").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Preload("Company").
		Preload("Firm").
		Find(&investments).Error
	if err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *DefaultInvestmentRepository) FindByCompanyAndFirm(companyID, firmID int) (*entity.Investment, error) {
	var investment entity.Investment
	err := r.db.
		Where("company_id = ? AND firm_id = ?", companyID, firmID).
		First(&investment).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &investment, nil
}

func (r *DefaultInvestmentRepository) Save(investment *entity.Investment) error {
	return r.db.Save(investment).Error
}

func (r *DefaultInvestmentRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Investment{}).Count(&count).Error
	return count, err
}

func (r *DefaultInvestmentRepository) CountByStatus(status entity.Status) (int64, error) {
	var count int64
	err := r.db.
		Model(&entity.Investment{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *DefaultInvestmentRepository) CountByFirmAndStatus(firmID int, status entity.Status) (int64, error) {
	var count int64
	err := r.db.
		Model(&entity.Investment{}).
		Where("firm_id = ? AND status = ?", firmID, status).
		Count(&count).Error
	return count, err
}

func (r *DefaultInvestmentRepository) CountByFirm(firmID int) (int64, error) {
	var count int64
	err := r.db.
		Model(&entity.Investment{}).
		Where("firm_id = ?", firmID).
		Count(&count).Error
	return count, err
}

// DistinctStatuses returns every normalized status present, sorted.
func (r *DefaultInvestmentRepository) DistinctStatuses() ([]string, error) {
	var values []string
	err := r.db.
		Model(&entity.Investment{}).
		Distinct().
		Where("status != ''").
		Order("status").
		Pluck("status", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
