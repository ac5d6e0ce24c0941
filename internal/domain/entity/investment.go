package entity

// Investment is the junction row between a Company and a Firm. Raw scraped
// statuses are kept verbatim in RawStatus; Status holds the normalized value.
type Investment struct {
	ID        int `gorm:"primaryKey"`
	CompanyID int `gorm:"not null;uniqueIndex:idx_investment_company_firm;index"`
	FirmID    int `gorm:"not null;uniqueIndex:idx_investment_company_firm"`

	RawStatus string `gorm:"index"`
	Status    Status `gorm:"index"`

	InvestmentYear  string `gorm:"index"`
	InvestmentStage string

	ExitType string
	ExitInfo string
	ExitYear string

	// Scrape provenance
	SourceURL  string
	SectorPage string

	LastScraped int64 `gorm:"autoUpdateTime:false"`
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Company *Company `gorm:"foreignKey:CompanyID;references:ID"`
	Firm    *Firm    `gorm:"foreignKey:FirmID;references:ID"`
}
