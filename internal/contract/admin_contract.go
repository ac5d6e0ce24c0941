package contract

// UpdateCompanyRequest is a partial update: only non-nil fields are applied.
type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=500"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	Website     *string `json:"website" validate:"omitempty,max=500"`
	LinkedInURL *string `json:"linkedin_url" validate:"omitempty,max=500"`

	Sector       *string `json:"sector" validate:"omitempty,max=500"`
	Headquarters *string `json:"headquarters" validate:"omitempty,max=500"`

	RevenueRange  *string `json:"revenue_range" validate:"omitempty,max=50"`
	EmployeeCount *string `json:"employee_count" validate:"omitempty,max=50"`

	SwarmIndustry    *string `json:"swarm_industry" validate:"omitempty,max=255"`
	IndustryCategory *string `json:"industry_category" validate:"omitempty,max=100"`
	SizeClass        *string `json:"size_class" validate:"omitempty,max=50"`

	TotalFundingUSD    *int64  `json:"total_funding_usd" validate:"omitempty,min=0"`
	LastRoundType      *string `json:"last_round_type" validate:"omitempty,max=100"`
	LastRoundAmountUSD *int64  `json:"last_round_amount_usd" validate:"omitempty,min=0"`
	MarketCap          *int64  `json:"market_cap" validate:"omitempty,min=0"`

	IPODate       *string `json:"ipo_date" validate:"omitempty,max=50"`
	IPOYear       *string `json:"ipo_year" validate:"omitempty,max=10"`
	StockExchange *string `json:"stock_exchange" validate:"omitempty,max=50"`

	OwnershipStatus *string `json:"ownership_status" validate:"omitempty,max=100"`
	CustomerTypes   *string `json:"customer_types" validate:"omitempty,max=100"`
	Summary         *string `json:"summary" validate:"omitempty,max=10000"`

	IsPublic   *bool `json:"is_public"`
	IsAcquired *bool `json:"is_acquired"`
	IsExited   *bool `json:"is_exited"`

	PredictedRevenue *float64 `json:"predicted_revenue" validate:"omitempty,min=0"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}
