package entity

// Firm is a private-equity investing entity. Portfolio counters are
// denormalized aggregates recomputed on import, not live counts.
type Firm struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`

	TotalCompanies        int
	ActivePortfolioCount  int
	ExitedPortfolioCount  int
	ExtractionTimeMinutes int

	LastScraped int64 `gorm:"autoUpdateTime:false"`

	// Relations
	Investments []*Investment `gorm:"foreignKey:FirmID;references:ID"`
}
