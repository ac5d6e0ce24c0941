package swarm

import "strings"

// CompanyFacts is the flattened enrichment payload for one company.
type CompanyFacts struct {
	Headquarters string
	FoundedYear  string
	Description  string
	Summary      string
	Website      string

	Industry  string
	Headcount int
	SizeClass string

	TotalFundingUSD    int64
	LastRoundType      string
	LastRoundAmountUSD int64

	MarketCap     int64
	IPODate       string
	IPOYear       string
	StockExchange string

	OwnershipStatus         string
	OwnershipStatusDetailed string
	CustomerTypes           string

	IsPublic   bool
	IsAcquired bool
	IsExited   bool
}

type searchResponse struct {
	IDs        []string `json:"ids"`
	TotalCount int      `json:"totalCount"`
}

type fetchResponse struct {
	Results []struct {
		CompanyInfo companyInfo `json:"company_info"`
	} `json:"results"`
}

type companyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Founded     string `json:"founded"`

	Size struct {
		Class string `json:"class"`
	} `json:"size"`

	Locations []struct {
		Name      string `json:"name"`
		IsPrimary bool   `json:"is_primary"`
	} `json:"locations"`

	Workforce struct {
		Headcount int `json:"headcount"`
	} `json:"workforce"`

	Funding struct {
		TotalFundingUSD int64 `json:"total_funding_usd"`
		LastRound       struct {
			Type      string `json:"last_round_type"`
			AmountUSD int64  `json:"last_round_amount_usd"`
		} `json:"last_round"`
	} `json:"funding"`

	BusinessData struct {
		OwnershipStatus         string   `json:"ownership_status"`
		OwnershipStatusDetailed string   `json:"ownership_status_detailed"`
		IsAcquired              bool     `json:"is_acquired"`
		IsExited                bool     `json:"is_exited"`
		CustomerTypes           []string `json:"customer_types"`
		StockExchange           string   `json:"stock_exchange"`
		FinancingProfile        struct {
			MarketCap int64  `json:"market_cap"`
			IPODate   string `json:"ipo_date"`
		} `json:"financing_profile"`
	} `json:"business_data"`
}

func (c *companyInfo) toFacts() *CompanyFacts {
	hq := ""
	if len(c.Locations) > 0 {
		hq = c.Locations[0].Name
		for _, loc := range c.Locations {
			if loc.IsPrimary {
				hq = loc.Name
				break
			}
		}
	}

	foundedYear := ""
	if len(c.Founded) >= 4 {
		foundedYear = c.Founded[:4]
	}

	ipoDate := c.BusinessData.FinancingProfile.IPODate
	ipoYear := ""
	if len(ipoDate) >= 4 {
		ipoYear = ipoDate[:4]
	}

	detailed := strings.ToLower(c.BusinessData.OwnershipStatusDetailed)
	isPublic := strings.Contains(detailed, "ipo") || strings.Contains(detailed, "public")

	return &CompanyFacts{
		Headquarters: hq,
		FoundedYear:  foundedYear,
		Description:  c.Description,
		Summary:      c.Summary,
		Website:      c.Website,

		Industry:  c.Industry,
		Headcount: c.Workforce.Headcount,
		SizeClass: c.Size.Class,

		TotalFundingUSD:    c.Funding.TotalFundingUSD,
		LastRoundType:      c.Funding.LastRound.Type,
		LastRoundAmountUSD: c.Funding.LastRound.AmountUSD,

		MarketCap:     c.BusinessData.FinancingProfile.MarketCap,
		IPODate:       ipoDate,
		IPOYear:       ipoYear,
		StockExchange: c.BusinessData.StockExchange,

		OwnershipStatus:         c.BusinessData.OwnershipStatus,
		OwnershipStatusDetailed: c.BusinessData.OwnershipStatusDetailed,
		CustomerTypes:           strings.Join(c.BusinessData.CustomerTypes, ", "),

		IsPublic:   isPublic,
		IsAcquired: c.BusinessData.IsAcquired,
		IsExited:   c.BusinessData.IsExited,
	}
}
