package entity

// CompanyTag attaches a free-form category/value pair to a company,
// e.g. ("business_model", "SaaS").
type CompanyTag struct {
	ID        int    `gorm:"primaryKey"`
	CompanyID int    `gorm:"not null;uniqueIndex:idx_tag_company_category_value;index"`
	Category  string `gorm:"not null;uniqueIndex:idx_tag_company_category_value;index"`
	Value     string `gorm:"not null;uniqueIndex:idx_tag_company_category_value;index"`

	CreatedAt int64 `gorm:"not null"`
}
