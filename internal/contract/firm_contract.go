package contract

type FirmResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	TotalInvestments int64  `json:"total_investments"`
	ActiveCount      int64  `json:"active_count"`
	ExitCount        int64  `json:"exit_count"`
	LastScraped      string `json:"last_scraped,omitempty"`
}

type StatsResponse struct {
	TotalCompanies    int64   `json:"total_companies"`
	TotalInvestments  int64   `json:"total_investments"`
	TotalPEFirms      int64   `json:"total_pe_firms"`
	ActiveInvestments int64   `json:"active_investments"`
	ExitedInvestments int64   `json:"exited_investments"`
	CoInvestments     int64   `json:"co_investments"`
	EnrichmentRate    float64 `json:"enrichment_rate"`
}

type SectorsResponse struct {
	Sectors []string `json:"sectors"`
}

type StatusesResponse struct {
	Statuses []string `json:"statuses"`
}

type IndustriesResponse struct {
	Industries []string `json:"industries"`
}
