package contract

// Page size constants for every listing endpoint. Out-of-range values are
// clamped, never rejected.
const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// CompanyResponse is a decoded company row. RevenueRange and EmployeeCount
// carry human-readable labels ("$10M - $50M"), never the raw provider codes.
type CompanyResponse struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	PEFirms  []string `json:"pe_firms"`
	Status   string   `json:"status"`
	ExitType string   `json:"exit_type,omitempty"`

	InvestmentYear string `json:"investment_year,omitempty"`
	Sector         string `json:"sector,omitempty"`
	Headquarters   string `json:"headquarters,omitempty"`
	Website        string `json:"website,omitempty"`
	LinkedInURL    string `json:"linkedin_url,omitempty"`
	Description    string `json:"description,omitempty"`

	RevenueRange     string  `json:"revenue_range"`
	EmployeeCount    string  `json:"employee_count"`
	SwarmIndustry    string  `json:"swarm_industry,omitempty"`
	IndustryCategory string  `json:"industry_category,omitempty"`
	SizeClass        string  `json:"size_class,omitempty"`
	PredictedRevenue float64 `json:"predicted_revenue,omitempty"`

	TotalFundingUSD    int64  `json:"total_funding_usd,omitempty"`
	LastRoundType      string `json:"last_round_type,omitempty"`
	LastRoundAmountUSD int64  `json:"last_round_amount_usd,omitempty"`
	MarketCap          int64  `json:"market_cap,omitempty"`
	IPODate            string `json:"ipo_date,omitempty"`
	IPOYear            string `json:"ipo_year,omitempty"`
	StockExchange      string `json:"stock_exchange,omitempty"`

	OwnershipStatus         string `json:"ownership_status,omitempty"`
	OwnershipStatusDetailed string `json:"ownership_status_detailed,omitempty"`
	CustomerTypes           string `json:"customer_types,omitempty"`
	Summary                 string `json:"summary,omitempty"`

	IsPublic   bool `json:"is_public"`
	IsAcquired bool `json:"is_acquired"`
	IsExited   bool `json:"is_exited"`

	Tags []TagResponse `json:"tags,omitempty"`
}

type TagResponse struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

// InvestmentResponse is one company/firm relationship row.
type InvestmentResponse struct {
	CompanyID   int    `json:"company_id"`
	CompanyName string `json:"company_name"`
	PEFirmName  string `json:"pe_firm_name"`

	Status    string `json:"status"`
	RawStatus string `json:"raw_status,omitempty"`
	ExitType  string `json:"exit_type,omitempty"`
	ExitInfo  string `json:"exit_info,omitempty"`
	ExitYear  string `json:"exit_year,omitempty"`

	InvestmentYear string `json:"investment_year,omitempty"`
	Sector         string `json:"sector,omitempty"`

	RevenueRange     string  `json:"revenue_range"`
	EmployeeCount    string  `json:"employee_count"`
	IndustryCategory string  `json:"industry_category,omitempty"`
	PredictedRevenue float64 `json:"predicted_revenue,omitempty"`

	Headquarters string `json:"headquarters,omitempty"`
	Website      string `json:"website,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
}
