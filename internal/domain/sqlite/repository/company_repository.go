package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/JLemieux66/PE/internal/domain/entity"
)

// CompanyFilter narrows company listings. Zero values mean "no filter";
// unrecognized combinations simply narrow results to an empty page.
type CompanyFilter struct {
	FirmName string        // substring match on the owning firm's name
	Status   entity.Status // equality on the normalized investment status
	Sector   string        // substring
	Industry string        // substring on the standardized category
	Search   string        // substring over name or description
	IsPublic *bool

	Limit  int
	Offset int
}

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (r *DefaultCompanyRepository) List(filter CompanyFilter) ([]*entity.Company, error) {
	q := r.filtered(filter).
		Distinct("companies.*").
		Order("companies.name")

	var companies []*entity.Company
	err := q.
		Offset(filter.Offset).
		Limit(filter.Limit).
		Preload("Investments.Firm").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *DefaultCompanyRepository) FindByID(id int) (*entity.Company, error) {
	var company entity.Company
	err := r.db.
		Preload("Investments.Firm").
		Preload("Tags").
		First(&company, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) FindByName(name string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.
		Where("name = ?", name).
		First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) Save(company *entity.Company) error {
	return r.db.Save(company).Error
}

// UpdateFields applies a partial update. Only the provided columns change.
func (r *DefaultCompanyRepository) UpdateFields(id int, fields map[string]any) error {
	return r.db.
		Model(&entity.Company{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *DefaultCompanyRepository) Delete(company *entity.Company) error {
	return r.db.Select("Investments", "Tags").Delete(company).Error
}

// FindMissingCrunchbase returns companies with neither revenue nor employee
// codes, the enrichment command's work queue.
func (r *DefaultCompanyRepository) FindMissingCrunchbase() ([]*entity.Company, error) {
	var companies []*entity.Company
	err := r.db.
		Where("revenue_range = '' AND employee_count = ''").
		Order("name").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *DefaultCompanyRepository) FindMissingSwarm() ([]*entity.Company, error) {
	var companies []*entity.Company
	err := r.db.
		Where("swarm_industry = ''").
		Order("name").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *DefaultCompanyRepository) DistinctSectors() ([]string, error) {
	return r.distinctColumn("sector")
}

func (r *DefaultCompanyRepository) DistinctIndustries() ([]string, error) {
	return r.distinctColumn("swarm_industry")
}

func (r *DefaultCompanyRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Company{}).Count(&count).Error
	return count, err
}

// CountEnriched counts companies carrying a LinkedIn URL, the proxy the
// dashboard uses for "has been enriched".
func (r *DefaultCompanyRepository) CountEnriched() (int64, error) {
	var count int64
	err := r.db.
		Model(&entity.Company{}).
		Where("linked_in_url != ''").
		Count(&count).Error
	return count, err
}

// CountCoInvested counts companies held by more than one firm.
func (r *DefaultCompanyRepository) CountCoInvested() (int64, error) {
	sub := r.db.
		Model(&entity.Investment{}).
		Select("company_id").
		Group("company_id").
		Having("COUNT(firm_id) > 1")

	var count int64
	err := r.db.Table("(?) AS multi", sub).Count(&count).Error
	return count, err
}

func (r *DefaultCompanyRepository) distinctColumn(column string) ([]string, error) {
	var values []string
	err := r.db.
		Model(&entity.Company{}).
		Distinct().
		Where(column+" != ''").
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *DefaultCompanyRepository) filtered(filter CompanyFilter) *gorm.DB {
	q := r.db.
		Model(&entity.Company{}).
		Joins("LEFT JOIN investments ON investments.company_id = companies.id").
		Joins("LEFT JOIN firms ON firms.id = investments.firm_id")

	if filter.FirmName != "" {
		q = q.Where("firms.name LIKE ?", "%"+filter.FirmName+"%")
	}
	if filter.Status != "" {
		q = q.Where("investments.status = ?", filter.Status)
	}
	if filter.Sector != "" {
		q = q.Where("companies.sector LIKE ?", "%"+filter.Sector+"%")
	}
	if filter.Industry != "" {
		q = q.Where("companies.industry_category LIKE ?", "%"+filter.Industry+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("companies.name LIKE ? OR companies.description LIKE ?", pattern, pattern)
	}
	if filter.IsPublic != nil {
		q = q.Where("companies.is_public = ?", *filter.IsPublic)
	}
	return q
}
