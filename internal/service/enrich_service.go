package service

import (
	"context"
	"errors"

	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/infrastructure/crunchbase"
	"github.com/JLemieux66/PE/internal/infrastructure/swarm"
	"github.com/JLemieux66/PE/internal/utils"
)

type CrunchbaseClient interface {
	Search(ctx context.Context, companyName string) (string, error)
	Details(ctx context.Context, permalink string) (*crunchbase.CompanyDetails, error)
}

type SwarmClient interface {
	Search(ctx context.Context, companyName string) (string, error)
	Fetch(ctx context.Context, companyID string) (*swarm.CompanyFacts, error)
}

type EnrichCompanyRepository interface {
	FindMissingCrunchbase() ([]*entity.Company, error)
	FindMissingSwarm() ([]*entity.Company, error)
	Save(company *entity.Company) error
}

// EnrichReport summarizes one offline enrichment pass.
type EnrichReport struct {
	Processed int
	Enriched  int
	NotFound  int
	Failed    int
}

// EnrichService drives the offline provider passes. A failure on one record
// is logged and the pass moves to the next record; there is no retry.
type EnrichService struct {
	Crunchbase  CrunchbaseClient
	Swarm       SwarmClient
	CompanyRepo EnrichCompanyRepository
}

func NewEnrichService(cb CrunchbaseClient, sw SwarmClient, companyRepo EnrichCompanyRepository) *EnrichService {
	return &EnrichService{
		Crunchbase:  cb,
		Swarm:       sw,
		CompanyRepo: companyRepo,
	}
}

// EnrichCrunchbase fills revenue/employee codes (and headquarters or
// description, when absent) for companies that have neither code yet.
func (s *EnrichService) EnrichCrunchbase(ctx context.Context) (*EnrichReport, error) {
	companies, err := s.CompanyRepo.FindMissingCrunchbase()
	if err != nil {
		return nil, err
	}

	report := &EnrichReport{}
	for _, company := range companies {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Processed++

		permalink, err := s.Crunchbase.Search(ctx, company.Name)
		if errors.Is(err, crunchbase.ErrNotFound) {
			log.Debugf("crunchbase: %s not found", company.Name)
			report.NotFound++
			continue
		}
		if err != nil {
			log.Errorf("crunchbase: search %s: %v", company.Name, err)
			report.Failed++
			continue
		}

		details, err := s.Crunchbase.Details(ctx, permalink)
		if err != nil {
			log.Errorf("crunchbase: details %s: %v", company.Name, err)
			report.Failed++
			continue
		}

		applyCrunchbase(company, details)
		if err := s.CompanyRepo.Save(company); err != nil {
			log.Errorf("crunchbase: save %s: %v", company.Name, err)
			report.Failed++
			continue
		}

		log.Infof("crunchbase: enriched %s (revenue=%s employees=%s)",
			company.Name, company.RevenueRange, company.EmployeeCount)
		report.Enriched++
	}
	return report, nil
}

// EnrichSwarm fills industry, funding, market cap, IPO and ownership fields
// for companies with no Swarm industry yet.
func (s *EnrichService) EnrichSwarm(ctx context.Context) (*EnrichReport, error) {
	companies, err := s.CompanyRepo.FindMissingSwarm()
	if err != nil {
		return nil, err
	}

	report := &EnrichReport{}
	for _, company := range companies {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Processed++

		id, err := s.Swarm.Search(ctx, company.Name)
		if errors.Is(err, swarm.ErrNotFound) {
			log.Debugf("swarm: %s not found", company.Name)
			report.NotFound++
			continue
		}
		if err != nil {
			log.Errorf("swarm: search %s: %v", company.Name, err)
			report.Failed++
			continue
		}

		facts, err := s.Swarm.Fetch(ctx, id)
		if err != nil {
			log.Errorf("swarm: fetch %s: %v", company.Name, err)
			report.Failed++
			continue
		}

		applySwarm(company, facts)
		if err := s.CompanyRepo.Save(company); err != nil {
			log.Errorf("swarm: save %s: %v", company.Name, err)
			report.Failed++
			continue
		}

		log.Infof("swarm: enriched %s (industry=%s headcount=%d)",
			company.Name, company.SwarmIndustry, facts.Headcount)
		report.Enriched++
	}
	return report, nil
}

func applyCrunchbase(company *entity.Company, details *crunchbase.CompanyDetails) {
	company.RevenueRange = details.RevenueRange
	company.EmployeeCount = details.EmployeeCount

	// Provider data never overwrites fields the scrapers already filled.
	if company.Headquarters == "" && details.Headquarters != "" {
		company.Headquarters = details.Headquarters
		company.City, company.StateRegion, company.Country = utils.ParseLocation(details.Headquarters)
	}
	if company.Description == "" {
		company.Description = details.Description
	}

	company.UpdatedAt = utils.NowUTC()
}

func applySwarm(company *entity.Company, facts *swarm.CompanyFacts) {
	company.SwarmIndustry = facts.Industry
	company.IndustryCategory = swarm.CategorizeIndustry(facts.Industry)
	company.SizeClass = facts.SizeClass

	company.TotalFundingUSD = facts.TotalFundingUSD
	company.LastRoundType = facts.LastRoundType
	company.LastRoundAmountUSD = facts.LastRoundAmountUSD

	company.MarketCap = facts.MarketCap
	company.IPODate = facts.IPODate
	company.IPOYear = facts.IPOYear
	company.StockExchange = facts.StockExchange

	company.OwnershipStatus = facts.OwnershipStatus
	company.OwnershipStatusDetailed = facts.OwnershipStatusDetailed
	company.CustomerTypes = facts.CustomerTypes

	company.IsPublic = facts.IsPublic
	company.IsAcquired = facts.IsAcquired
	company.IsExited = facts.IsExited

	if company.Summary == "" {
		company.Summary = facts.Summary
	}
	if company.Website == "" {
		company.Website = facts.Website
	}
	if company.Headquarters == "" && facts.Headquarters != "" {
		company.Headquarters = facts.Headquarters
		company.City, company.StateRegion, company.Country = utils.ParseLocation(facts.Headquarters)
	}

	company.UpdatedAt = utils.NowUTC()
}
