package service

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
	"github.com/JLemieux66/PE/internal/infrastructure/crunchbase"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

type CompanyRepository interface {
	List(filter repository.CompanyFilter) ([]*entity.Company, error)
	FindByID(id int) (*entity.Company, error)
	DistinctSectors() ([]string, error)
	DistinctIndustries() ([]string, error)
	CountAll() (int64, error)
	CountEnriched() (int64, error)
	CountCoInvested() (int64, error)
}

type InvestmentRepository interface {
	List(filter repository.InvestmentFilter) ([]*entity.Investment, error)
	CountAll() (int64, error)
	CountByStatus(status entity.Status) (int64, error)
	DistinctStatuses() ([]string, error)
}

type DefaultCompanyService struct {
	CompanyRepo    CompanyRepository
	InvestmentRepo InvestmentRepository
}

func NewCompanyService(companyRepo CompanyRepository, investmentRepo InvestmentRepository) *DefaultCompanyService {
	return &DefaultCompanyService{
		CompanyRepo:    companyRepo,
		InvestmentRepo: investmentRepo,
	}
}

func (s *DefaultCompanyService) ListCompanies(filter repository.CompanyFilter) ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset)
	filter.Status = canonicalStatus(string(filter.Status))

	companies, err := s.CompanyRepo.List(filter)
	if err != nil {
		log.Errorf("failed to list companies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyResponse, len(companies))
	for i, company := range companies {
		resp[i] = toCompanyResponse(company, false, filter.Status)
	}
	return resp, nil
}

func (s *DefaultCompanyService) GetCompanyByID(id int) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.CompanyNotFound
	}
	return toCompanyResponse(company, true, ""), nil
}

func (s *DefaultCompanyService) ListInvestments(filter repository.InvestmentFilter) ([]*contract.InvestmentResponse, apierror.ErrorResponse) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset)
	filter.Status = canonicalStatus(string(filter.Status))

	investments, err := s.InvestmentRepo.List(filter)
	if err != nil {
		log.Errorf("failed to list investments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.InvestmentResponse, len(investments))
	for i, inv := range investments {
		resp[i] = toInvestmentResponse(inv)
	}
	return resp, nil
}

// ExportCSV streams the filtered company listing as CSV, the server-side
// counterpart of the dashboard's export button. Pagination is widened to the
// maximum page so a default export covers the whole table in a single call.
func (s *DefaultCompanyService) ExportCSV(filter repository.CompanyFilter, w io.Writer) apierror.ErrorResponse {
	if filter.Limit <= 0 {
		filter.Limit = contract.MaxPageSize
	}
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset)
	filter.Status = canonicalStatus(string(filter.Status))

	companies, err := s.CompanyRepo.List(filter)
	if err != nil {
		log.Errorf("failed to export companies: %v", err)
		return apierror.InternalServerError
	}

	writer := csv.NewWriter(w)
	header := []string{
		"id", "name", "pe_firms", "status", "sector", "industry_category",
		"headquarters", "website", "revenue_range", "employee_count",
		"market_cap", "total_funding_usd", "predicted_revenue",
		"is_public", "stock_exchange",
	}
	if err := writer.Write(header); err != nil {
		log.Errorf("failed to write CSV header: %v", err)
		return apierror.InternalServerError
	}

	for _, company := range companies {
		row := toCompanyResponse(company, false, filter.Status)
		record := []string{
			strconv.Itoa(row.ID),
			row.Name,
			strings.Join(row.PEFirms, "; "),
			row.Status,
			row.Sector,
			row.IndustryCategory,
			row.Headquarters,
			row.Website,
			row.RevenueRange,
			row.EmployeeCount,
			strconv.FormatInt(row.MarketCap, 10),
			strconv.FormatInt(row.TotalFundingUSD, 10),
			strconv.FormatFloat(row.PredictedRevenue, 'f', -1, 64),
			strconv.FormatBool(row.IsPublic),
			row.StockExchange,
		}
		if err := writer.Write(record); err != nil {
			log.Errorf("failed to write CSV row: %v", err)
			return apierror.InternalServerError
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("failed to flush CSV: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// clampPage coerces pagination values into range instead of rejecting them.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = contract.DefaultPageSize
	}
	if limit > contract.MaxPageSize {
		limit = contract.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// canonicalStatus maps a raw status query onto the canonical enum when it
// matches one; anything else passes through verbatim and simply narrows the
// result set to empty.
func canonicalStatus(raw string) entity.Status {
	for _, s := range []entity.Status{entity.StatusActive, entity.StatusExit, entity.StatusUnknown} {
		if strings.EqualFold(raw, string(s)) {
			return s
		}
	}
	return entity.Status(raw)
}

// primaryInvestment picks the investment the flat response fields come from.
// A status-filtered listing must display the matching investment: a
// co-invested company can be Active under one firm and Exit under another,
// and the preloaded rows are not narrowed by the SQL filter.
func primaryInvestment(c *entity.Company, wantStatus entity.Status) *entity.Investment {
	if len(c.Investments) == 0 {
		return nil
	}
	if wantStatus != "" {
		for _, inv := range c.Investments {
			if inv.Status == wantStatus {
				return inv
			}
		}
	}
	return c.Investments[0]
}

func toCompanyResponse(c *entity.Company, includeTags bool, wantStatus entity.Status) *contract.CompanyResponse {
	firms := make([]string, 0, len(c.Investments))
	for _, inv := range c.Investments {
		if inv.Firm != nil {
			firms = append(firms, inv.Firm.Name)
		}
	}

	status := string(entity.StatusUnknown)
	var exitType, investmentYear, sector string
	if primary := primaryInvestment(c, wantStatus); primary != nil {
		if primary.Status != "" {
			status = string(primary.Status)
		}
		exitType = primary.ExitType
		investmentYear = primary.InvestmentYear
		sector = primary.SectorPage
	}
	if sector == "" {
		sector = c.Sector
	}

	resp := &contract.CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		PEFirms:  firms,
		Status:   status,
		ExitType: exitType,

		InvestmentYear: investmentYear,
		Sector:         sector,
		Headquarters:   formatHeadquarters(c),
		Website:        c.Website,
		LinkedInURL:    c.LinkedInURL,
		Description:    c.Description,

		RevenueRange:     crunchbase.DecodeRevenueRange(c.RevenueRange),
		EmployeeCount:    crunchbase.DecodeEmployeeCount(c.EmployeeCount),
		SwarmIndustry:    c.SwarmIndustry,
		IndustryCategory: c.IndustryCategory,
		SizeClass:        c.SizeClass,
		PredictedRevenue: c.PredictedRevenue,

		TotalFundingUSD:    c.TotalFundingUSD,
		LastRoundType:      c.LastRoundType,
		LastRoundAmountUSD: c.LastRoundAmountUSD,
		MarketCap:          c.MarketCap,
		IPODate:            c.IPODate,
		IPOYear:            strings.TrimSpace(c.IPOYear),
		StockExchange:      c.StockExchange,

		OwnershipStatus:         c.OwnershipStatus,
		OwnershipStatusDetailed: c.OwnershipStatusDetailed,
		CustomerTypes:           c.CustomerTypes,
		Summary:                 c.Summary,

		IsPublic:   c.IsPublic,
		IsAcquired: c.IsAcquired,
		IsExited:   c.IsExited,
	}

	if includeTags {
		for _, tag := range c.Tags {
			resp.Tags = append(resp.Tags, contract.TagResponse{
				Category: tag.Category,
				Value:    tag.Value,
			})
		}
	}
	return resp
}

func toInvestmentResponse(inv *entity.Investment) *contract.InvestmentResponse {
	resp := &contract.InvestmentResponse{
		CompanyID: inv.CompanyID,

		Status:    string(inv.Status),
		RawStatus: inv.RawStatus,
		ExitType:  inv.ExitType,
		ExitInfo:  inv.ExitInfo,
		ExitYear:  inv.ExitYear,

		InvestmentYear: inv.InvestmentYear,
		Sector:         inv.SectorPage,
	}

	if inv.Firm != nil {
		resp.PEFirmName = inv.Firm.Name
	}

	if c := inv.Company; c != nil {
		resp.CompanyName = c.Name
		resp.RevenueRange = crunchbase.DecodeRevenueRange(c.RevenueRange)
		resp.EmployeeCount = crunchbase.DecodeEmployeeCount(c.EmployeeCount)
		resp.IndustryCategory = c.IndustryCategory
		resp.PredictedRevenue = c.PredictedRevenue
		resp.Headquarters = formatHeadquarters(c)
		resp.Website = c.Website
		resp.LinkedInURL = c.LinkedInURL
	}
	return resp
}

// formatHeadquarters prefers the parsed geographic fields and falls back to
// the raw scraped string.
func formatHeadquarters(c *entity.Company) string {
	var parts []string
	for _, p := range []string{c.City, c.StateRegion, c.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return c.Headquarters
}
