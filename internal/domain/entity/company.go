package entity

// Company is a portfolio company, deduplicated across firms. A company may
// be held by several firms at once (co-investment); the per-firm lifecycle
// lives on the Investment rows.
//
// RevenueRange and EmployeeCount store the raw Crunchbase codes
// (e.g. "r_00010000", "c_01001_05000"). Decoding to human-readable labels
// happens in the response mapping only, so storage never mixes codes and
// decoded strings.
type Company struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null;index"`
	Description string
	Website     string `gorm:"index"`
	LinkedInURL string

	Sector       string `gorm:"index"`
	Headquarters string

	// Parsed from Headquarters
	Country     string `gorm:"index"`
	StateRegion string
	City        string

	// Crunchbase enrichment (coded)
	RevenueRange  string `gorm:"index"`
	EmployeeCount string

	// Swarm enrichment
	SwarmIndustry           string `gorm:"index"`
	IndustryCategory        string `gorm:"index"`
	SizeClass               string
	TotalFundingUSD         int64
	LastRoundType           string
	LastRoundAmountUSD      int64
	MarketCap               int64
	IPODate                 string
	IPOYear                 string
	StockExchange           string
	OwnershipStatus         string
	OwnershipStatusDetailed string
	CustomerTypes           string
	Summary                 string

	// Independently settable flags, not reconciled against status.
	IsPublic   bool `gorm:"default:false;index"`
	IsAcquired bool `gorm:"default:false"`
	IsExited   bool `gorm:"default:false"`

	// Produced by an external batch model, never computed here.
	PredictedRevenue float64 `gorm:"index"`

	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Investments []*Investment `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:CASCADE;"`
	Tags        []*CompanyTag `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:CASCADE;"`
}
